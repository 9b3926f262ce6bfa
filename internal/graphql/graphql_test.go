package graphql

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/pribylovaa/go-traffic-news/internal/models"
	"github.com/stretchr/testify/require"
)

// decoded — то, что видит апстрим после json.Unmarshal тела.
type decoded struct {
	OperationName string `json:"operationName"`
	Variables     struct {
		Filter struct {
			Country map[string]any `json:"country"`
		} `json:"filter"`
	} `json:"variables"`
	Query string `json:"query"`
}

func mustMarshal(t *testing.T, req models.NewsRequest) []byte {
	t.Helper()
	b, err := BuildQuery(req).Marshal()
	require.NoError(t, err)
	return b
}

// TestBuildQuery_FieldsMapOneToOne — variables.filter.country повторяет фильтр 1:1.
func TestBuildQuery_FieldsMapOneToOne(t *testing.T) {
	t.Parallel()

	for _, st := range models.States() {
		req := models.NewsRequest{
			Country:           "D",
			FederalState:      string(st),
			Street:            "A10",
			ConstructionSites: true,
			TrafficNews:       false,
			PageNumber:        7,
		}

		var doc decoded
		require.NoError(t, json.Unmarshal(mustMarshal(t, req), &doc))

		require.Equal(t, OperationName, doc.OperationName)
		require.Equal(t, TrafficNewsQuery, doc.Query)
		require.Equal(t, map[string]any{
			"country":               "D",
			"federalState":          string(st),
			"street":                "A10",
			"showConstructionSites": true,
			"showTrafficNews":       false,
			"pageNumber":            float64(7),
		}, doc.Variables.Filter.Country)
	}
}

// TestBuildQuery_PassThrough — невалидные значения не фильтруются.
func TestBuildQuery_PassThrough(t *testing.T) {
	t.Parallel()

	doc := BuildQuery(models.NewsRequest{FederalState: "ZZ", Street: `"quoted"<b>`, PageNumber: -1})
	require.Equal(t, "ZZ", doc.Variables.Filter.Country.FederalState)
	require.Equal(t, `"quoted"<b>`, doc.Variables.Filter.Country.Street)
	require.Equal(t, -1, doc.Variables.Filter.Country.PageNumber)
}

// TestDocument_Marshal_FieldOrder — порядок верхнеуровневых полей стабилен.
func TestDocument_Marshal_FieldOrder(t *testing.T) {
	t.Parallel()

	s := string(mustMarshal(t, models.DefaultRequest("BB")))
	iOp := strings.Index(s, `"operationName"`)
	iVars := strings.Index(s, `"variables"`)
	iQuery := strings.Index(s, `"query"`)
	require.True(t, iOp >= 0 && iOp < iVars && iVars < iQuery, s)
}

// TestHeaderHash_KnownVectors — MD5 от сырых байт.
func TestHeaderHash_KnownVectors(t *testing.T) {
	t.Parallel()

	require.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", HeaderHash(nil))
	require.Equal(t, "9d3d9048db16a7eee539e93e3618cbe7", HeaderHash([]byte("BB")))
	require.Equal(t, "d3dcf429c679f9af82eb9a3b31c4df44", HeaderHash([]byte("BE")))
}

// TestHeaderHash_Deterministic — одинаковые байты дают одинаковый 32-символьный hex.
func TestHeaderHash_Deterministic(t *testing.T) {
	t.Parallel()

	re := regexp.MustCompile(`^[0-9a-f]{32}$`)
	payload := mustMarshal(t, models.DefaultRequest("NW"))

	h1 := HeaderHash(payload)
	h2 := HeaderHash(append([]byte(nil), payload...))
	require.Equal(t, h1, h2)
	require.Regexp(t, re, h1)
}

// TestHeaderHash_DistinctPerState — хеш запроса одной земли отличается от всех остальных.
func TestHeaderHash_DistinctPerState(t *testing.T) {
	t.Parallel()

	hashes := map[string]models.State{}
	for _, st := range models.States() {
		h := HeaderHash(mustMarshal(t, models.DefaultRequest(string(st))))
		prev, dup := hashes[h]
		require.False(t, dup, "%s collides with %s", st, prev)
		hashes[h] = st
	}
	require.Len(t, hashes, 16)
}

// TestHeaderHash_DistinctPerFilterField — изменение любого поля фильтра меняет хеш.
func TestHeaderHash_DistinctPerFilterField(t *testing.T) {
	t.Parallel()

	base := models.DefaultRequest("BB")
	variants := []models.NewsRequest{base}

	v := base
	v.Country = "A"
	variants = append(variants, v)

	v = base
	v.Street = "A10"
	variants = append(variants, v)

	v = base
	v.ConstructionSites = true
	variants = append(variants, v)

	v = base
	v.TrafficNews = false
	variants = append(variants, v)

	variants = append(variants, base.WithPage(2))

	seen := map[string]int{}
	for i, req := range variants {
		h := HeaderHash(mustMarshal(t, req))
		prev, dup := seen[h]
		require.False(t, dup, "variant %d collides with %d", i, prev)
		seen[h] = i
	}
}
