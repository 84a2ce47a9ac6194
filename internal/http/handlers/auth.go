package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pribylovaa/go-edu-platform/internal/httperr"
	"github.com/pribylovaa/go-edu-platform/internal/http/middleware"
	"github.com/pribylovaa/go-edu-platform/internal/service"
)

// forgotPasswordMessage — единый ответ forgot-флоу: одинаков для
// существующего и несуществующего email.
const forgotPasswordMessage = "if that email exists, a reset link was sent"

// Register — POST /auth/register.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var in RegisterRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	user, pair, err := h.svc.RegisterUser(r.Context(), in.Name, in.Email, in.Password, in.Role)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	h.cookies.SetRefresh(w, pair.RefreshToken)
	writeJSON(w, http.StatusCreated, authToResponse(user, pair))
}

// Login — POST /auth/login.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var in LoginRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	user, pair, err := h.svc.LoginUser(r.Context(), in.Email, in.Password)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	h.cookies.SetRefresh(w, pair.RefreshToken)
	writeJSON(w, http.StatusOK, authToResponse(user, pair))
}

// Refresh — POST /auth/refresh. Refresh-токен принимается только из
// httpOnly-cookie; в теле ответа возвращается только access-токен,
// новый refresh уезжает в ротированную cookie.
func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(RefreshCookieName)
	if err != nil || cookie.Value == "" {
		httperr.WriteError(w, r, service.ErrNotAuthenticated)
		return
	}

	pair, err := h.svc.RefreshTokens(r.Context(), cookie.Value)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	h.cookies.SetRefresh(w, pair.RefreshToken)
	writeJSON(w, http.StatusOK, RefreshResponse{
		AccessToken:     pair.AccessToken,
		AccessExpiresAt: pair.AccessExpiresAt.Unix(),
	})
}

// Logout — POST /auth/logout. Идемпотентен: отсутствие токена — не ошибка.
// Refresh-токен берётся из тела запроса, иначе из cookie. Cookie привязана
// к Path=/auth/refresh, так что браузер на /auth/logout её не отправляет;
// браузерным клиентам нужно передавать токен в теле.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	var in LogoutRequest
	_ = json.NewDecoder(r.Body).Decode(&in)

	token := in.RefreshToken
	if token == "" {
		if cookie, err := r.Cookie(RefreshCookieName); err == nil {
			token = cookie.Value
		}
	}
	if token != "" {
		h.svc.Logout(r.Context(), token)
	}

	h.cookies.ClearRefresh(w)
	writeJSON(w, http.StatusOK, MessageResponse{Message: "logged out"})
}

// Me — GET /auth/me. Пользователь уже положен в контекст Protect.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		httperr.WriteError(w, r, service.ErrNotAuthenticated)
		return
	}

	writeJSON(w, http.StatusOK, userToResponse(user))
}

// UpdatePassword — PATCH /auth/update-password.
func (h *Handlers) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		httperr.WriteError(w, r, service.ErrNotAuthenticated)
		return
	}

	var in UpdatePasswordRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	updated, pair, err := h.svc.UpdatePassword(r.Context(), user.ID, in.CurrentPassword, in.NewPassword)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	h.cookies.SetRefresh(w, pair.RefreshToken)
	writeJSON(w, http.StatusOK, authToResponse(updated, pair))
}

// ForgotPassword — POST /auth/forgot-password.
func (h *Handlers) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var in ForgotPasswordRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := h.svc.ForgotPassword(r.Context(), in.Email); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: forgotPasswordMessage})
}

// ResetPassword — POST /auth/reset-password.
func (h *Handlers) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var in ResetPasswordRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	user, pair, err := h.svc.ResetPassword(r.Context(), in.Token, in.Email, in.NewPassword)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	h.cookies.SetRefresh(w, pair.RefreshToken)
	writeJSON(w, http.StatusOK, authToResponse(user, pair))
}
