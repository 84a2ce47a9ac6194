package handlers

import (
	"net/http"

	"github.com/pribylovaa/go-edu-platform/internal/httperr"
)

// CreateCandidate — POST /candidates: публичный приём заявки кандидата.
func (h *Handlers) CreateCandidate(w http.ResponseWriter, r *http.Request) {
	var in CandidateRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	candidate, err := h.svc.RegisterCandidate(r.Context(), in.toInput())
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, candidateToResponse(candidate))
}
