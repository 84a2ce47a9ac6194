// Package log связывает request-scoped *slog.Logger с context.Context,
// чтобы обработчики и сервисы писали в один логгер с общими атрибутами
// (request_id и т.п.) без явной прокидки через сигнатуры.
package log

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

// Into возвращает контекст-потомок с привязанным логгером.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// From извлекает логгер, положенный Into. Если в контексте ничего нет
// (или лежит мусор), возвращается slog.Default().
func From(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || l == nil {
		return slog.Default()
	}

	return l
}
