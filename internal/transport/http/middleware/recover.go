package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	apierrors "github.com/pribylovaa/go-traffic-news/internal/errors"
	logctx "github.com/pribylovaa/go-traffic-news/pkg/log"
)

// errPanic — ошибка-заглушка для ответа на panic, маппится в 500/internal.
var errPanic = errors.New("panic")

// Recover перехватывает panic и пишет 500/internal, если ответ ещё не начат.
// Детали паники не утекают на клиент.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logctx.From(r.Context()).
					LogAttrs(r.Context(), slog.LevelError, "panic",
						slog.String("path", r.URL.Path),
						slog.Any("reason", rec),
						slog.Bool("headers_sent", sw.status != 0),
					)

				if sw.status == 0 {
					apierrors.WriteError(sw, r, errPanic)
				}
			}()

			next.ServeHTTP(sw, r)
		})
	}
}
