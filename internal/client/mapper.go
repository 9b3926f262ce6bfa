package client

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pribylovaa/go-traffic-news/internal/models"
)

// envelope — верхний уровень ответа GraphQL.
// Указатели отличают «поле отсутствует/null» от нулевого значения.
type envelope struct {
	Data *struct {
		TrafficNews *struct {
			Size  *int              `json:"size"`
			Items []json.RawMessage `json:"items"`
		} `json:"trafficNews"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// rawItem — элемент data.trafficNews.items.
type rawItem struct {
	ID         *int64       `json:"id"`
	Type       *string      `json:"type"`
	Details    *string      `json:"details"`
	Street     *string      `json:"street"`
	TimeLoss   *int         `json:"timeLoss"`
	StreetSign *rawSign     `json:"streetSign"`
	Headline   *rawHeadline `json:"headline"`
}

// rawSign — блок streetSign, целиком опционален.
type rawSign struct {
	StreetNumber *string `json:"streetNumber"`
	Country      *string `json:"country"`
}

// rawHeadline — объединение TrafficNewsDirectionHeadline | TrafficNewsNonDirectionHeadline.
// __typename не используется: форма определяется по набору полей.
type rawHeadline struct {
	Text *string `json:"text"`
	From *string `json:"from"`
	To   *string `json:"to"`
}

// ExtractPage достаёт data.trafficNews.{size,items} из тела ответа.
//
// Ошибки (*MappingError, errors.Is(err, ErrMapping)):
//   - тело не JSON-объект;
//   - нет data/trafficNews/size или items отсутствует/null;
//   - data или data.trafficNews == null при непустом errors — в Reason
//     первое сообщение апстрима.
func ExtractPage(body []byte) (total int, items []json.RawMessage, err error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return 0, nil, invalid("$", err)
	}

	if env.Data == nil || env.Data.TrafficNews == nil {
		if len(env.Errors) > 0 {
			return 0, nil, &MappingError{Path: "errors", Reason: "upstream: " + env.Errors[0].Message}
		}
		if env.Data == nil {
			return 0, nil, missing("data")
		}
	}

	tn := env.Data.TrafficNews
	switch {
	case tn == nil:
		return 0, nil, missing("data.trafficNews")
	case tn.Size == nil:
		return 0, nil, missing("data.trafficNews.size")
	case tn.Items == nil:
		return 0, nil, missing("data.trafficNews.items")
	case *tn.Size < 0:
		return 0, nil, invalid("data.trafficNews.size", fmt.Errorf("negative size %d", *tn.Size))
	}

	return *tn.Size, tn.Items, nil
}

// ParseItem собирает models.News из одного элемента items.
//
// Особенности:
//   - id, type, street, details обязательны, иначе *MappingError;
//   - streetSign == null/отсутствует -> StreetNumber и Country = nil;
//   - headline: text -> текстовый вариант, from+to -> направление,
//     иначе (null, пустой объект, только from) — заголовка нет, это не ошибка.
func ParseItem(raw json.RawMessage) (models.News, error) {
	var it rawItem
	if err := json.Unmarshal(raw, &it); err != nil {
		return models.News{}, invalid("item", err)
	}

	if err := requireFields(it); err != nil {
		return models.News{}, err
	}

	news := models.News{
		ID:       *it.ID,
		Type:     *it.Type,
		Street:   *it.Street,
		Details:  *it.Details,
		TimeLoss: it.TimeLoss,
		Headline: parseHeadline(it.Headline),
	}

	if it.StreetSign != nil {
		news.StreetNumber = it.StreetSign.StreetNumber
		news.Country = it.StreetSign.Country
	}

	return news, nil
}

func requireFields(it rawItem) error {
	var errs []error
	if it.ID == nil {
		errs = append(errs, missing("item.id"))
	}
	if it.Type == nil {
		errs = append(errs, missing("item.type"))
	}
	if it.Street == nil {
		errs = append(errs, missing("item.street"))
	}
	if it.Details == nil {
		errs = append(errs, missing("item.details"))
	}
	return errors.Join(errs...)
}

func parseHeadline(h *rawHeadline) *models.Headline {
	if h == nil {
		return nil
	}

	var hl models.Headline
	switch {
	case h.Text != nil:
		hl = models.TextHeadline(*h.Text)
	case h.From != nil && h.To != nil:
		hl = models.DirectionHeadline(*h.From, *h.To)
	default:
		return nil
	}

	return &hl
}
