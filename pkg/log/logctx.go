// log переносит request-scoped логгер и идентификатор прогона через context.
package log

import (
	"context"
	"log/slog"
)

type (
	loggerKey struct{}
	runIDKey  struct{}
)

// Into кладёт логгер в контекст.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// From достаёт логгер из контекста (или возвращает slog.Default()).
func From(ctx context.Context) *slog.Logger {
	if v := ctx.Value(loggerKey{}); v != nil {
		if l, ok := v.(*slog.Logger); ok && l != nil {
			return l
		}
	}

	return slog.Default()
}

// WithRunID кладёт идентификатор прогона в контекст и добавляет его
// атрибутом run_id к логгеру из контекста.
//
// Идентификатор уходит апстриму в заголовке x-request-id и связывает
// записи лога всех страниц одного прогона пагинации.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}

	ctx = context.WithValue(ctx, runIDKey{}, id)

	return Into(ctx, From(ctx).With(slog.String("run_id", id)))
}

// RunID возвращает идентификатор прогона или "" если его нет.
func RunID(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}
