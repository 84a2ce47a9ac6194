package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/pribylovaa/go-edu-platform/internal/httperr"
	"github.com/pribylovaa/go-edu-platform/internal/models"
	"github.com/pribylovaa/go-edu-platform/internal/service"
)

type userCtxKey struct{}

// UserFromContext достаёт пользователя, положенного Protect.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userCtxKey{}).(*models.User)
	return user, ok
}

// Protect — авторизация по Bearer access-токену.
//
// Последовательность отказов:
//   - нет заголовка / не Bearer-схема — 401 unauthenticated;
//   - подпись/срок не прошли проверку — 401 invalid_token;
//   - пользователь удалён — 401 user_gone;
//   - пароль менялся после выпуска токена — 401 stale_password.
//
// При успехе кладёт живую запись пользователя в контекст запроса.
func Protect(svc *service.Service) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				httperr.WriteError(w, r, fmt.Errorf("protect: %w", service.ErrNotAuthenticated))
				return
			}

			user, err := svc.AuthenticateAccess(r.Context(), token)
			if err != nil {
				httperr.WriteError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), userCtxKey{}, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RestrictTo пускает дальше только пользователей с одной из перечисленных
// ролей. Вешается строго после Protect.
func RestrictTo(roles ...models.Role) Middleware {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				httperr.WriteError(w, r, fmt.Errorf("restrict: %w", service.ErrNotAuthenticated))
				return
			}

			if _, ok := allowed[user.Role]; !ok {
				httperr.WriteError(w, r, fmt.Errorf("restrict: %w", service.ErrForbidden))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(value string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(value, prefix) {
		return "", false
	}

	token := strings.TrimSpace(value[len(prefix):])
	if token == "" {
		return "", false
	}

	return token, true
}
