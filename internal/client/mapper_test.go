package client

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/pribylovaa/go-traffic-news/internal/models"
	"github.com/stretchr/testify/require"
)

const fullItem = `{
  "id": 4711,
  "type": "STAU",
  "details": "2 km Stau",
  "street": "A10",
  "timeLoss": 15,
  "streetSign": {"streetNumber": "10", "country": "D", "__typename": "StreetSign"},
  "headline": {"__typename": "TrafficNewsDirectionHeadline", "from": "Berlin", "to": "Hamburg"},
  "__typename": "TrafficNewsItem"
}`

// TestParseItem_AllFields — все поля переносятся без потерь.
func TestParseItem_AllFields(t *testing.T) {
	t.Parallel()

	n, err := ParseItem(json.RawMessage(fullItem))
	require.NoError(t, err)

	require.EqualValues(t, 4711, n.ID)
	require.Equal(t, "STAU", n.Type)
	require.Equal(t, "2 km Stau", n.Details)
	require.Equal(t, "A10", n.Street)
	require.NotNil(t, n.StreetNumber)
	require.Equal(t, "10", *n.StreetNumber)
	require.NotNil(t, n.Country)
	require.Equal(t, "D", *n.Country)
	require.NotNil(t, n.TimeLoss)
	require.Equal(t, 15, *n.TimeLoss)
	require.NotNil(t, n.Headline)
	require.Equal(t, models.DirectionHeadline("Berlin", "Hamburg"), *n.Headline)
}

// TestParseItem_NoStreetSign — нет streetSign -> номер и страна отсутствуют, ошибки нет.
func TestParseItem_NoStreetSign(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		`{"id":1,"type":"T","street":"B96","details":"d"}`,
		`{"id":1,"type":"T","street":"B96","details":"d","streetSign":null}`,
	} {
		n, err := ParseItem(json.RawMessage(raw))
		require.NoError(t, err, raw)
		require.Nil(t, n.StreetNumber)
		require.Nil(t, n.Country)
		require.Nil(t, n.TimeLoss)
	}
}

// TestParseItem_Headline — выбор варианта объединения по набору полей.
func TestParseItem_Headline(t *testing.T) {
	t.Parallel()

	text := models.TextHeadline("X")
	dir := models.DirectionHeadline("A", "B")

	cases := []struct {
		name     string
		headline string
		want     *models.Headline
	}{
		{"text", `{"text":"X"}`, &text},
		{"direction", `{"from":"A","to":"B"}`, &dir},
		{"null", `null`, nil},
		{"empty", `{}`, nil},
		{"only from", `{"from":"A"}`, nil},
		{"typename only", `{"__typename":"TrafficNewsNonDirectionHeadline"}`, nil},
	}
	for _, c := range cases {
		raw := `{"id":1,"type":"T","street":"S","details":"d","headline":` + c.headline + `}`
		n, err := ParseItem(json.RawMessage(raw))
		require.NoError(t, err, c.name)
		require.Equal(t, c.want, n.Headline, c.name)
	}

	n, err := ParseItem(json.RawMessage(`{"id":1,"type":"T","street":"S","details":"d"}`))
	require.NoError(t, err)
	require.Nil(t, n.Headline)
}

// TestParseItem_MissingRequired — каждое обязательное поле проверяется отдельно.
func TestParseItem_MissingRequired(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"item.id":      `{"type":"T","street":"S","details":"d"}`,
		"item.type":    `{"id":1,"street":"S","details":"d"}`,
		"item.street":  `{"id":1,"type":"T","details":"d"}`,
		"item.details": `{"id":1,"type":"T","street":"S"}`,
	}
	for path, raw := range cases {
		_, err := ParseItem(json.RawMessage(raw))
		require.ErrorIs(t, err, ErrMapping, path)

		var me *MappingError
		require.True(t, errors.As(err, &me), path)
		require.Equal(t, path, me.Path)
	}
}

// TestParseItem_WrongTypes — id строкой или не-объект — ошибка маппинга.
func TestParseItem_WrongTypes(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{`{"id":"1","type":"T","street":"S","details":"d"}`, `[]`, `"x"`} {
		_, err := ParseItem(json.RawMessage(raw))
		require.ErrorIs(t, err, ErrMapping, raw)
	}
}

// TestExtractPage_OK — size и items в исходном порядке.
func TestExtractPage_OK(t *testing.T) {
	t.Parallel()

	body := `{"data":{"trafficNews":{"size":3,"items":[{"id":1},{"id":2}],"__typename":"TrafficNews"}}}`
	total, items, err := ExtractPage([]byte(body))
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Len(t, items, 2)
	require.JSONEq(t, `{"id":1}`, string(items[0]))
	require.JSONEq(t, `{"id":2}`, string(items[1]))
}

// TestExtractPage_EmptyItems — пустой список допустим.
func TestExtractPage_EmptyItems(t *testing.T) {
	t.Parallel()

	total, items, err := ExtractPage([]byte(`{"data":{"trafficNews":{"size":0,"items":[]}}}`))
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, items)
}

// TestExtractPage_BadShape — любое отсутствие узла пути — *MappingError.
func TestExtractPage_BadShape(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"not json":         `<html>`,
		"array":            `[]`,
		"no data":          `{}`,
		"null data":        `{"data":null}`,
		"no trafficNews":   `{"data":{}}`,
		"null trafficNews": `{"data":{"trafficNews":null}}`,
		"no size":          `{"data":{"trafficNews":{"items":[]}}}`,
		"no items":         `{"data":{"trafficNews":{"size":1}}}`,
		"null items":       `{"data":{"trafficNews":{"size":1,"items":null}}}`,
		"negative size":    `{"data":{"trafficNews":{"size":-1,"items":[]}}}`,
		"size wrong type":  `{"data":{"trafficNews":{"size":"3","items":[]}}}`,
		"graphql error":    `{"errors":[{"message":"invalid federalState"}],"data":null}`,
	}
	for name, body := range cases {
		_, _, err := ExtractPage([]byte(body))
		require.ErrorIs(t, err, ErrMapping, name)
	}

	_, _, err := ExtractPage([]byte(`{"errors":[{"message":"invalid federalState"}]}`))
	require.ErrorContains(t, err, "invalid federalState")
}

// TestExtractPage_PartialFailure — trafficNews == null рядом с errors: сообщение апстрима не теряется.
func TestExtractPage_PartialFailure(t *testing.T) {
	t.Parallel()

	_, _, err := ExtractPage([]byte(`{"data":{"trafficNews":null},"errors":[{"message":"resolver timeout"}]}`))
	require.ErrorIs(t, err, ErrMapping)
	require.ErrorContains(t, err, "resolver timeout")

	var me *MappingError
	require.True(t, errors.As(err, &me))
	require.Equal(t, "errors", me.Path)
}
