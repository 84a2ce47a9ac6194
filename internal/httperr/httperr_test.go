package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-edu-platform/internal/service"
)

func TestToHTTP_BaseMapping(t *testing.T) {
	tcs := []struct {
		name       string
		in         error
		wantStatus int
		wantCode   string
	}{
		{"missing_fields", service.ErrMissingFields, http.StatusBadRequest, "invalid_argument"},
		{"invalid_email", service.ErrInvalidEmail, http.StatusBadRequest, "invalid_argument"},
		{"invalid_role", service.ErrInvalidRole, http.StatusBadRequest, "invalid_argument"},
		{"weak_password", service.ErrWeakPassword, http.StatusBadRequest, "invalid_argument"},
		{"reset_token", service.ErrResetTokenInvalid, http.StatusBadRequest, "reset_token_invalid"},
		{"unauthenticated", service.ErrNotAuthenticated, http.StatusUnauthorized, "unauthenticated"},
		{"invalid_credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
		{"stale_password", service.ErrStalePassword, http.StatusUnauthorized, "stale_password"},
		{"user_gone", service.ErrUserGone, http.StatusUnauthorized, "user_gone"},
		{"invalid_token", service.ErrInvalidToken, http.StatusUnauthorized, "invalid_token"},
		{"token_expired", service.ErrTokenExpired, http.StatusUnauthorized, "invalid_token"},
		{"token_revoked", service.ErrTokenRevoked, http.StatusUnauthorized, "invalid_token"},
		{"forbidden", service.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"not_found", service.ErrNotFound, http.StatusNotFound, "not_found"},
		{"email_taken", service.ErrEmailTaken, http.StatusConflict, "already_exists"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			gotStatus, resp := ToHTTP(tc.in)
			require.Equal(t, tc.wantStatus, gotStatus)
			require.Equal(t, tc.wantCode, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestToHTTP_WrappedError_StillMapped(t *testing.T) {
	// Сервис оборачивает sentinel-ошибки через %w — маппинг по errors.Is.
	err := fmt.Errorf("service.auth.LoginUser: %w", service.ErrInvalidCredentials)

	gotStatus, resp := ToHTTP(err)
	require.Equal(t, http.StatusUnauthorized, gotStatus)
	require.Equal(t, "invalid_credentials", resp.Error.Code)
}

func TestToHTTP_NilError_Returns500Internal(t *testing.T) {
	gotStatus, resp := ToHTTP(nil)
	require.Equal(t, http.StatusInternalServerError, gotStatus)
	require.Equal(t, "internal", resp.Error.Code)
	require.Equal(t, "internal error", resp.Error.Message)
}

func TestWriteError_PropagatesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("X-Request-Id", "req-42")
	rec := httptest.NewRecorder()

	WriteError(rec, req, service.ErrForbidden)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "forbidden", resp.Error.Code)
	require.Equal(t, "req-42", resp.Error.RequestID)
}

func TestWriteError_NoRequestID_OmitsField(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()

	WriteError(rec, req, service.ErrNotFound)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.NotContains(t, rec.Body.String(), "request_id")
}

func TestToHTTP_UniformMessages_NoDetailLeak(t *testing.T) {
	// Наружу не различаются "просрочен"/"подделан" и "нет юзера"/"не тот пароль".
	_, expired := ToHTTP(service.ErrTokenExpired)
	_, forged := ToHTTP(service.ErrInvalidToken)
	require.Equal(t, expired.Error, forged.Error)
}
