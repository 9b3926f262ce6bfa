// render превращает models.News в человекочитаемый текст для терминала.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pribylovaa/go-traffic-news/internal/models"
)

// Подписи полей блока.
const (
	labelType     = "Typ"
	labelCountry  = "Land"
	labelStreet   = "Straße"
	labelHeadline = "Überschrift"
	labelTimeLoss = "Zeitverlust"
	labelDetails  = "Details"
)

// Text рендерит одно сообщение: по полю на строку, отсутствующие
// опциональные поля (страна, заголовок, задержка) пропускаются.
func Text(n models.News) string {
	var b strings.Builder
	writeBlock(&b, n, fmt.Sprintf)
	return b.String()
}

func writeBlock(b *strings.Builder, n models.News, typeLine func(format string, a ...any) string) {
	b.WriteString(typeLine("%s: %s", labelType, n.Type))
	b.WriteByte('\n')

	if n.Country != nil && *n.Country != "" {
		fmt.Fprintf(b, "%s: %s\n", labelCountry, *n.Country)
	}

	street := n.Street
	if n.StreetNumber != nil && *n.StreetNumber != "" {
		street += " " + *n.StreetNumber
	}
	fmt.Fprintf(b, "%s: %s\n", labelStreet, street)

	if n.Headline != nil {
		if h := n.Headline.String(); h != "" {
			fmt.Fprintf(b, "%s: %s\n", labelHeadline, h)
		}
	}

	if n.TimeLoss != nil {
		fmt.Fprintf(b, "%s: %d min\n", labelTimeLoss, *n.TimeLoss)
	}

	fmt.Fprintf(b, "%s: %s\n", labelDetails, n.Details)
}

// ColorMode — режим раскраски вывода.
type ColorMode int

const (
	// ColorAuto — по окружению (NO_COLOR, TERM=dumb, TTY).
	ColorAuto ColorMode = iota
	// ColorAlways — всегда.
	ColorAlways
	// ColorNever — никогда.
	ColorNever
)

// ParseColorMode разбирает значение флага --color.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q: must be auto, always, or never", s)
	}
}

// ResolveColors решает, раскрашивать ли вывод.
func ResolveColors(mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false
		}
		if os.Getenv("TERM") == "dumb" {
			return false
		}
		return !color.NoColor
	}
}

// Options — параметры Printer.
type Options struct {
	ColorMode ColorMode
	// JSON — вместо текстовых блоков писать по одному JSON-объекту на строку.
	JSON bool
}

// Printer пишет сообщения в out: текстовые блоки через пустую строку или JSON lines.
type Printer struct {
	out       io.Writer
	useColors bool
	json      bool
	typeColor *color.Color
	written   int
}

// NewPrinter создаёт Printer поверх out.
func NewPrinter(out io.Writer, opts Options) *Printer {
	p := &Printer{
		out:       out,
		useColors: ResolveColors(opts.ColorMode),
		json:      opts.JSON,
		typeColor: color.New(color.FgYellow, color.Bold),
	}
	if p.useColors {
		p.typeColor.EnableColor()
	} else {
		p.typeColor.DisableColor()
	}
	return p
}

// Print выводит одно сообщение.
func (p *Printer) Print(n models.News) error {
	if p.json {
		p.written++
		return json.NewEncoder(p.out).Encode(n)
	}

	var b strings.Builder
	if p.written > 0 {
		b.WriteByte('\n')
	}
	writeBlock(&b, n, p.typeColor.Sprintf)
	p.written++

	_, err := io.WriteString(p.out, b.String())
	return err
}

// Count — сколько сообщений уже выведено.
func (p *Printer) Count() int { return p.written }
