package handlers

import (
	"net/http"
	"time"
)

// RefreshCookieName — имя httpOnly-cookie с refresh-токеном.
const RefreshCookieName = "refreshToken"

// refreshCookiePath — cookie уходит только на endpoint обновления,
// на остальные запросы браузер её не шлёт.
const refreshCookiePath = "/auth/refresh"

// CookieManager выставляет и гасит refresh-cookie.
//
// Окружение определяет пару secure/sameSite:
//   - prod (HTTPS, фронт может жить на другом origin): Secure + SameSite=None;
//   - local/dev (http://localhost): SameSite=Lax без Secure.
type CookieManager struct {
	Secure bool
	MaxAge time.Duration
}

// SetRefresh кладёт refresh-токен в httpOnly-cookie.
func (c CookieManager) SetRefresh(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    token,
		Path:     refreshCookiePath,
		MaxAge:   int(c.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: c.sameSite(),
	})
}

// ClearRefresh гасит cookie. Набор атрибутов обязан совпадать с SetRefresh,
// иначе браузер её не удалит.
func (c CookieManager) ClearRefresh(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    "",
		Path:     refreshCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: c.sameSite(),
	})
}

func (c CookieManager) sameSite() http.SameSite {
	if c.Secure {
		return http.SameSiteNoneMode
	}

	return http.SameSiteLaxMode
}
