package client

import (
	"errors"
	"fmt"
)

var (
	// ErrHTTPStatus — апстрим ответил не-2xx.
	ErrHTTPStatus = errors.New("upstream http status")
	// ErrMapping — тело ответа не соответствует ожидаемой форме (нарушение контракта апстрима).
	ErrMapping = errors.New("unexpected response shape")
)

// HTTPError — не-2xx ответ апстрима.
// Body — начало тела ответа (не более bodySnippetLen байт) для диагностики.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("upstream status=%d", e.StatusCode)
	}
	return fmt.Sprintf("upstream status=%d: %s", e.StatusCode, e.Body)
}

// Unwrap позволяет проверять errors.Is(err, ErrHTTPStatus).
func (e *HTTPError) Unwrap() error { return ErrHTTPStatus }

// MappingError — отсутствует обязательное поле или узел ответа.
// Path — JSON-путь в нотации через точку, например "data.trafficNews.size".
type MappingError struct {
	Path   string
	Reason string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("mapping %s: %s", e.Path, e.Reason)
}

// Unwrap позволяет проверять errors.Is(err, ErrMapping).
func (e *MappingError) Unwrap() error { return ErrMapping }

func missing(path string) *MappingError {
	return &MappingError{Path: path, Reason: "missing"}
}

func invalid(path string, err error) *MappingError {
	return &MappingError{Path: path, Reason: err.Error()}
}
