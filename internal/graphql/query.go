// graphql собирает документ запроса trafficNews и считает для него
// анти-кеш заголовок x-graphql-query-hash.
package graphql

import (
	"encoding/json"
	"fmt"

	"github.com/pribylovaa/go-traffic-news/internal/models"
)

// OperationName — имя операции в документе запроса.
const OperationName = "TrafficNews"

// TrafficNewsQuery — текст GraphQL-документа, одинаковый для всех запросов.
// Воспроизводится дословно: апстрим сверяет хеш тела с ожидаемым.
const TrafficNewsQuery = `query TrafficNews($filter: TrafficNewsFilterInput!) {
  trafficNews(filter: $filter) {
    ...TrafficNewsItems
    __typename
  }
}

fragment TrafficNewsItems on TrafficNews {
  size
  items {
    ...TrafficNewsItem
    __typename
  }
  __typename
}

fragment TrafficNewsItem on TrafficNewsItem {
  id
  type
  details
  street
  timeLoss
  streetSign {
    streetNumber
    country
    __typename
  }
  headline {
    __typename
    ...TrafficNewsDirectionHeadline
    ...TrafficNewsNonDirectionHeadline
  }
  __typename
}

fragment TrafficNewsDirectionHeadline on TrafficNewsDirectionHeadline {
  from
  to
  __typename
}

fragment TrafficNewsNonDirectionHeadline on TrafficNewsNonDirectionHeadline {
  text
  __typename
}
`

// Document — тело POST-запроса. Порядок полей фиксирован:
// operationName, variables, query.
type Document struct {
	OperationName string    `json:"operationName"`
	Variables     Variables `json:"variables"`
	Query         string    `json:"query"`
}

// Variables — блок variables документа.
type Variables struct {
	Filter Filter `json:"filter"`
}

// Filter — variables.filter.
type Filter struct {
	Country CountryFilter `json:"country"`
}

// CountryFilter — variables.filter.country, поля 1:1 из models.NewsRequest.
type CountryFilter struct {
	Country               string `json:"country"`
	FederalState          string `json:"federalState"`
	Street                string `json:"street"`
	ShowConstructionSites bool   `json:"showConstructionSites"`
	ShowTrafficNews       bool   `json:"showTrafficNews"`
	PageNumber            int    `json:"pageNumber"`
}

// BuildQuery собирает документ для одной страницы.
// Чистая функция: значения не валидируются, их судит апстрим.
func BuildQuery(req models.NewsRequest) Document {
	return Document{
		OperationName: OperationName,
		Variables: Variables{
			Filter: Filter{
				Country: CountryFilter{
					Country:               req.Country,
					FederalState:          req.FederalState,
					Street:                req.Street,
					ShowConstructionSites: req.ConstructionSites,
					ShowTrafficNews:       req.TrafficNews,
					PageNumber:            req.PageNumber,
				},
			},
		},
		Query: TrafficNewsQuery,
	}
}

// Marshal — единственная точка сериализации документа.
// Хеш заголовка считается именно от этих байт.
func (d Document) Marshal() ([]byte, error) {
	const op = "graphql.Document.Marshal"

	b, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}
