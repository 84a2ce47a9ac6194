package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pribylovaa/go-edu-platform/internal/httperr"
)

// CreateCourse — POST /courses.
func (h *Handlers) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var in CourseRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	course, err := h.svc.CreateCourse(r.Context(), in.toInput())
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, courseToResponse(course))
}

// ListCourses — GET /courses.
func (h *Handlers) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.svc.Courses(r.Context())
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, coursesToResponse(courses))
}

// GetCourse — GET /courses/{id}.
func (h *Handlers) GetCourse(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	course, err := h.svc.CourseByID(r.Context(), id)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, courseToResponse(course))
}

// UpdateCourse — PATCH /courses/{id}: непустые поля тела замещают текущие.
func (h *Handlers) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	var in CourseRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	course, err := h.svc.UpdateCourse(r.Context(), id, in.toInput())
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, courseToResponse(course))
}

// DeleteCourse — DELETE /courses/{id}.
func (h *Handlers) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := h.svc.DeleteCourse(r.Context(), id); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "course deleted"})
}

// CreateLiveCourse — POST /livecourses.
func (h *Handlers) CreateLiveCourse(w http.ResponseWriter, r *http.Request) {
	var in LiveCourseRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	course, err := h.svc.CreateLiveCourse(r.Context(), in.toInput())
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, liveCourseToResponse(course))
}

// ListLiveCourses — GET /livecourses.
func (h *Handlers) ListLiveCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.svc.LiveCourses(r.Context())
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, liveCoursesToResponse(courses))
}

// GetLiveCourse — GET /livecourses/{id}.
func (h *Handlers) GetLiveCourse(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	course, err := h.svc.LiveCourseByID(r.Context(), id)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, liveCourseToResponse(course))
}

// UpdateLiveCourse — PATCH /livecourses/{id}.
func (h *Handlers) UpdateLiveCourse(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	var in LiveCourseRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	course, err := h.svc.UpdateLiveCourse(r.Context(), id, in.toInput())
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, liveCourseToResponse(course))
}

// DeleteLiveCourse — DELETE /livecourses/{id}.
func (h *Handlers) DeleteLiveCourse(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := h.svc.DeleteLiveCourse(r.Context(), id); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "live course deleted"})
}
