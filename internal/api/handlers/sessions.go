package handlers

import (
	"net/http"

	"github.com/gatherly/server/internal/api/middleware"
	"github.com/gatherly/server/internal/domain/sessions"
	"github.com/gatherly/server/internal/validation"
)

type SessionsHandler struct {
	Service *sessions.Service
	Env     string
}

func NewSessionsHandler(service *sessions.Service, env string) *SessionsHandler {
	return &SessionsHandler{Service: service, Env: env}
}

// Book handles POST /api/v1/sessions/book.
func (h *SessionsHandler) Book(w http.ResponseWriter, r *http.Request) {
	var input sessions.BookSessionInput
	if !decodeJSON(w, r, h.Env, &input) {
		return
	}

	session, err := h.Service.Book(r.Context(), middleware.UserID(r.Context()), input)
	if err != nil {
		respondError(w, r, err, h.Env)
		return
	}

	writeJSON(w, http.StatusCreated, envelope{"message": "session booked", "session": session})
}

// Cancel handles POST /api/v1/sessions/cancel.
func (h *SessionsHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	var input sessions.SessionIDInput
	if !decodeJSON(w, r, h.Env, &input) {
		return
	}
	if err := validation.Struct(validate, input); err != nil {
		respondError(w, r, err, h.Env)
		return
	}

	if err := h.Service.Cancel(r.Context(), middleware.UserID(r.Context()), input.SessionID); err != nil {
		respondError(w, r, err, h.Env)
		return
	}

	writeJSON(w, http.StatusOK, envelope{"message": "session cancelled"})
}

// List handles GET /api/v1/sessions. It returns only the caller's sessions.
func (h *SessionsHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Service.List(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		respondError(w, r, err, h.Env)
		return
	}
	if list == nil {
		list = []sessions.Session{}
	}

	writeJSON(w, http.StatusOK, envelope{"message": "sessions fetched", "sessions": list})
}

// Get handles GET /api/v1/sessions/{id}.
func (h *SessionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.Service.GetByULID(r.Context(), pathParam(r, "id"))
	if err != nil {
		respondError(w, r, err, h.Env)
		return
	}

	writeJSON(w, http.StatusOK, envelope{"message": "session fetched", "session": session})
}
