package handlers

import (
	"context"
	"net/http"
	"time"
)

// Pinger reports whether the backing store is reachable. *pgxpool.Pool
// satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	DB      Pinger
	Version string
}

func NewHealthHandler(db Pinger, version string) *HealthHandler {
	return &HealthHandler{DB: db, Version: version}
}

// Healthz reports process liveness. It never touches dependencies.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{
		"status":  "ok",
		"version": h.Version,
	})
}

// Readyz reports readiness to serve traffic. It fails when the database
// cannot be reached.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.DB != nil {
		if err := h.DB.Ping(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, envelope{
				"status": "unavailable",
				"error":  "database unreachable",
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, envelope{
		"status": "ready",
	})
}
