package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pribylovaa/go-edu-platform/internal/httperr"
)

// Invite — POST /auth/invite (admin). Пароль генерируется и уходит письмом,
// в ответе его нет.
func (h *Handlers) Invite(w http.ResponseWriter, r *http.Request) {
	var in InviteRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	user, err := h.svc.InviteUser(r.Context(), in.Name, in.Email, in.Role)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, userToResponse(user))
}

// StudentsVerified — GET /auth/students-verified.
func (h *Handlers) StudentsVerified(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.StudentsByAccess(r.Context(), true)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, usersToResponse(users))
}

// StudentsNotVerified — GET /auth/students-not-verified.
func (h *Handlers) StudentsNotVerified(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.StudentsByAccess(r.Context(), false)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, usersToResponse(users))
}

// Teachers — GET /auth/teachers.
func (h *Handlers) Teachers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.Teachers(r.Context())
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, usersToResponse(users))
}

// ValidateUser — PATCH /auth/validate-user/{id}: подтверждение доступа
// пользователя администратором.
func (h *Handlers) ValidateUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	user, err := h.svc.ValidateUserAccess(r.Context(), id)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userToResponse(user))
}
