package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pribylovaa/go-traffic-news/internal/models"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func full() models.News {
	h := models.DirectionHeadline("Berlin", "Hamburg")
	return models.News{
		ID:           1,
		Type:         "STAU",
		Country:      ptr("D"),
		Street:       "A",
		StreetNumber: ptr("24"),
		Headline:     &h,
		TimeLoss:     ptr(20),
		Details:      "5 km Stau",
	}
}

// TestText_AllFields — порядок строк и подписи.
func TestText_AllFields(t *testing.T) {
	t.Parallel()

	want := strings.Join([]string{
		"Typ: STAU",
		"Land: D",
		"Straße: A 24",
		"Überschrift: Berlin → Hamburg",
		"Zeitverlust: 20 min",
		"Details: 5 km Stau",
		"",
	}, "\n")
	require.Equal(t, want, Text(full()))
}

// TestText_OptionalOmitted — нет страны/номера/заголовка/задержки -> строк нет.
func TestText_OptionalOmitted(t *testing.T) {
	t.Parallel()

	n := models.News{ID: 2, Type: "BAUSTELLE", Street: "B96", Details: "Sperrung"}
	require.Equal(t, "Typ: BAUSTELLE\nStraße: B96\nDetails: Sperrung\n", Text(n))

	require.NotContains(t, Text(n), "Überschrift")
}

// TestText_TextHeadline — текстовый вариант заголовка.
func TestText_TextHeadline(t *testing.T) {
	t.Parallel()

	h := models.TextHeadline("Unfall")
	n := models.News{Type: "T", Street: "S", Details: "d", Headline: &h}
	require.Contains(t, Text(n), "Überschrift: Unfall\n")
}

// TestPrinter_BlocksSeparated — блоки разделены пустой строкой, без цвета.
func TestPrinter_BlocksSeparated(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewPrinter(&buf, Options{ColorMode: ColorNever})

	a := models.News{Type: "A", Street: "S1", Details: "d1"}
	b := models.News{Type: "B", Street: "S2", Details: "d2"}
	require.NoError(t, p.Print(a))
	require.NoError(t, p.Print(b))

	require.Equal(t, Text(a)+"\n"+Text(b), buf.String())
	require.Equal(t, 2, p.Count())
}

// TestPrinter_Colors — ColorAlways добавляет ANSI-последовательности в строку типа.
func TestPrinter_Colors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewPrinter(&buf, Options{ColorMode: ColorAlways})
	require.NoError(t, p.Print(models.News{Type: "STAU", Street: "S", Details: "d"}))

	require.Contains(t, buf.String(), "\x1b[")
	require.Contains(t, buf.String(), "Details: d\n")
}

// TestPrinter_JSONLines — одна строка JSON на сообщение.
func TestPrinter_JSONLines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewPrinter(&buf, Options{JSON: true, ColorMode: ColorNever})
	require.NoError(t, p.Print(full()))
	require.NoError(t, p.Print(models.News{ID: 2, Type: "T", Street: "S", Details: "d"}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &got))
	require.Equal(t, map[string]any{"from": "Berlin", "to": "Hamburg"}, got["headline"])
	require.Equal(t, "24", got["street_number"])

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	_, hasHeadline := second["headline"]
	require.False(t, hasHeadline)
	_, hasCountry := second["country"]
	require.False(t, hasCountry)
}

// TestParseColorMode — допустимые значения и ошибка.
func TestParseColorMode(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]ColorMode{"": ColorAuto, "auto": ColorAuto, "always": ColorAlways, "never": ColorNever} {
		got, err := ParseColorMode(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := ParseColorMode("rainbow")
	require.Error(t, err)
}
