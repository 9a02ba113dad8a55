package handlers

import (
	"net/http"

	"github.com/gatherly/server/internal/api/middleware"
	"github.com/gatherly/server/internal/domain/events"
	"github.com/gatherly/server/internal/validation"
)

type EventsHandler struct {
	Service *events.Service
	Env     string
}

func NewEventsHandler(service *events.Service, env string) *EventsHandler {
	return &EventsHandler{Service: service, Env: env}
}

// Create handles POST /api/v1/events.
func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input events.CreateEventInput
	if !decodeJSON(w, r, h.Env, &input) {
		return
	}

	event, err := h.Service.Create(r.Context(), middleware.UserID(r.Context()), input)
	if err != nil {
		respondError(w, r, err, h.Env)
		return
	}

	writeJSON(w, http.StatusCreated, envelope{
		"message": "event created",
		"event":   event,
	})
}

// List handles GET /api/v1/events. An empty store yields an empty list, not
// an error.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.Service.List(r.Context())
	if err != nil {
		respondError(w, r, err, h.Env)
		return
	}
	if all == nil {
		all = []events.Event{}
	}

	writeJSON(w, http.StatusOK, envelope{
		"message": "events fetched",
		"events":  all,
	})
}

// Get handles GET /api/v1/events/{id}.
func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	event, err := h.Service.GetByULID(r.Context(), pathParam(r, "id"))
	if err != nil {
		respondError(w, r, err, h.Env)
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		"message": "event fetched",
		"event":   event,
	})
}

// Update handles PUT /api/v1/events. The target event id travels in the
// body; only the fields present are merged.
func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input events.UpdateEventInput
	if !decodeJSON(w, r, h.Env, &input) {
		return
	}

	event, err := h.Service.Update(r.Context(), middleware.UserID(r.Context()), input)
	if err != nil {
		respondError(w, r, err, h.Env)
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		"message": "event updated",
		"event":   event,
	})
}

// Delete handles DELETE /api/v1/events. Deletion is scoped to the owning
// organizer.
func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeEventID(w, r, h.Env)
	if !ok {
		return
	}

	if err := h.Service.Delete(r.Context(), middleware.UserID(r.Context()), input.EventID); err != nil {
		respondError(w, r, err, h.Env)
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		"message": "event deleted",
	})
}

// Register handles POST /api/v1/events/register.
func (h *EventsHandler) Register(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeEventID(w, r, h.Env)
	if !ok {
		return
	}

	participant, err := h.Service.Register(r.Context(), middleware.UserID(r.Context()), input.EventID)
	if err != nil {
		respondError(w, r, err, h.Env)
		return
	}

	writeJSON(w, http.StatusCreated, envelope{
		"message":     "registered successfully",
		"participant": participant,
	})
}

// Unregister handles POST /api/v1/events/unregister. Cancelling a
// registration that does not exist succeeds.
func (h *EventsHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeEventID(w, r, h.Env)
	if !ok {
		return
	}

	if err := h.Service.Unregister(r.Context(), middleware.UserID(r.Context()), input.EventID); err != nil {
		respondError(w, r, err, h.Env)
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		"message": "registration cancelled",
	})
}

// Participants handles POST /api/v1/events/participants.
func (h *EventsHandler) Participants(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeEventID(w, r, h.Env)
	if !ok {
		return
	}

	all, err := h.Service.Participants(r.Context(), input.EventID)
	if err != nil {
		respondError(w, r, err, h.Env)
		return
	}
	if all == nil {
		all = []events.Participant{}
	}

	writeJSON(w, http.StatusOK, envelope{
		"message":      "participants fetched",
		"participants": all,
	})
}

func decodeEventID(w http.ResponseWriter, r *http.Request, env string) (events.EventIDInput, bool) {
	var input events.EventIDInput
	if !decodeJSON(w, r, env, &input) {
		return input, false
	}
	if err := validation.Struct(validate, input); err != nil {
		respondError(w, r, err, env)
		return input, false
	}
	return input, true
}
