package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gatherly/server/internal/api/problem"
	"github.com/gatherly/server/internal/domain/events"
	"github.com/gatherly/server/internal/domain/sessions"
	"github.com/gatherly/server/internal/validation"
)

// envelope is the success response shape: a human-readable message plus the
// entity or collection under a named key.
type envelope map[string]any

// validate covers the thin id-only inputs decoded directly by handlers;
// richer payloads are validated by their services.
var validate = validation.New()

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, env string, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		problem.Write(w, r, http.StatusBadRequest, problem.TypeValidation, "Invalid request body", err, env)
		return false
	}
	return true
}

// respondError maps domain errors onto the problem taxonomy. Anything
// unrecognized is an internal failure: logged, and surfaced as a 500.
func respondError(w http.ResponseWriter, r *http.Request, err error, env string) {
	var verr validation.Error
	switch {
	case errors.As(err, &verr):
		problem.Write(w, r, http.StatusBadRequest, problem.TypeValidation, "Invalid request", err, env,
			problem.WithErrors(verr.FieldErrors()))
	case errors.Is(err, events.ErrNotFound), errors.Is(err, sessions.ErrNotFound):
		problem.Write(w, r, http.StatusNotFound, problem.TypeNotFound, "Not found", err, env)
	case errors.Is(err, events.ErrForbidden):
		problem.Write(w, r, http.StatusForbidden, problem.TypeForbidden, "Forbidden", err, env)
	case errors.Is(err, events.ErrAlreadyRegistered):
		problem.Write(w, r, http.StatusConflict, problem.TypeConflict, "Conflict", err, env,
			problem.WithDetail("Already registered"))
	default:
		problem.Write(w, r, http.StatusInternalServerError, problem.TypeServerError, "Server error", err, env)
	}
}

func pathParam(r *http.Request, key string) string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(r.PathValue(key))
}
