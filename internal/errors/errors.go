// errors стандартизирует ответы об ошибках HTTP-слоя traffic-news.
// На вход он принимает ошибку клиента/драйвера пагинации, а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей апстрима.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pribylovaa/go-traffic-news/internal/client"
	"github.com/pribylovaa/go-traffic-news/internal/models"
	"github.com/pribylovaa/go-traffic-news/internal/service"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// ErrInvalidArgument — некорректный параметр запроса (номер страницы, булев флаг).
var ErrInvalidArgument = errors.New("invalid argument")

// APIError — единый формат ошибки.
// Code — короткий стабильный код для машиночитаемой обработки.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть.
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует ошибку в HTTP-статус и унифицированный ответ.
//
// Поведение:
//   - err == nil — программная ошибка вызова: 500/internal;
//   - неизвестная земля, битый параметр -> 400;
//   - не-2xx апстрима, битая форма ответа, недостижимый size -> 502;
//   - дедлайн -> 504, отмена клиентом -> 499;
//   - прочее -> 500/internal.
func ToHTTP(err error) (int, ErrorResponse) {
	status, code, msg := classify(err)
	return status, ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func classify(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, "internal", "internal error"
	case errors.Is(err, models.ErrUnknownState):
		return http.StatusBadRequest, "unknown_state", "unknown federal state"
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument", "invalid argument"
	case errors.Is(err, client.ErrHTTPStatus):
		return http.StatusBadGateway, "upstream_status", "upstream returned an error"
	case errors.Is(err, client.ErrMapping):
		return http.StatusBadGateway, "upstream_contract", "unexpected upstream response"
	case errors.Is(err, service.ErrMaxPages), errors.Is(err, service.ErrStalled):
		return http.StatusBadGateway, "upstream_incomplete", "upstream result set incomplete"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, "canceled", "canceled"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}
