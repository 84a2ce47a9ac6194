package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pribylovaa/go-edu-platform/internal/httperr"
	logctx "github.com/pribylovaa/go-edu-platform/internal/pkg/log"
)

// Recover превращает panic обработчика в единообразный ответ 500/internal.
// Причина паники попадает только в лог, клиенту не отдаётся.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				logctx.From(r.Context()).LogAttrs(r.Context(), slog.LevelError, "panic",
					slog.String("path", r.URL.Path),
					slog.Any("reason", rec),
				)
				httperr.WriteError(w, r, fmt.Errorf("internal"))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
