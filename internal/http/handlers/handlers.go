package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pribylovaa/go-edu-platform/internal/service"
)

// Handlers агрегирует зависимости HTTP-слоя: бизнес-логику и менеджер
// refresh-cookie.
type Handlers struct {
	svc     *service.Service
	cookies CookieManager
}

func New(svc *service.Service, cookies CookieManager) *Handlers {
	return &Handlers{svc: svc, cookies: cookies}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через httperr.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// errInvalidArgument — вспомогалка: локальная ошибка парсинга -> 400.
func errInvalidArgument() error {
	return service.ErrMissingFields
}
