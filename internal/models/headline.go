package models

import "encoding/json"

// HeadlineKind — дискриминатор объединения Headline.
type HeadlineKind int

const (
	// HeadlineText — свободный текст.
	HeadlineText HeadlineKind = iota + 1
	// HeadlineDirection — пара «откуда → куда».
	HeadlineDirection
)

// Headline — заголовок сообщения: либо текст, либо направление.
// Другие формы не существуют; конструировать через TextHeadline/DirectionHeadline.
type Headline struct {
	kind HeadlineKind
	text string
	from string
	to   string
}

// TextHeadline создаёт текстовый заголовок.
func TextHeadline(text string) Headline {
	return Headline{kind: HeadlineText, text: text}
}

// DirectionHeadline создаёт заголовок-направление.
func DirectionHeadline(from, to string) Headline {
	return Headline{kind: HeadlineDirection, from: from, to: to}
}

// Kind возвращает вариант объединения.
func (h Headline) Kind() HeadlineKind { return h.kind }

// Text возвращает текст и true только для HeadlineText.
func (h Headline) Text() (string, bool) {
	return h.text, h.kind == HeadlineText
}

// Direction возвращает пару from/to и true только для HeadlineDirection.
func (h Headline) Direction() (from, to string, ok bool) {
	return h.from, h.to, h.kind == HeadlineDirection
}

// String — человекочитаемое представление заголовка.
func (h Headline) String() string {
	switch h.kind {
	case HeadlineText:
		return h.text
	case HeadlineDirection:
		return h.from + " → " + h.to
	default:
		return ""
	}
}

// MarshalJSON сохраняет форму апстрима: {"text"} или {"from","to"}.
func (h Headline) MarshalJSON() ([]byte, error) {
	switch h.kind {
	case HeadlineText:
		return json.Marshal(struct {
			Text string `json:"text"`
		}{h.text})
	case HeadlineDirection:
		return json.Marshal(struct {
			From string `json:"from"`
			To   string `json:"to"`
		}{h.from, h.to})
	default:
		return []byte("null"), nil
	}
}
