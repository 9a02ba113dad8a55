package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(_ context.Context) error { return s.err }

func TestHealthzAlwaysOK(t *testing.T) {
	h := NewHealthHandler(stubPinger{err: errors.New("down")}, "1.2.3")
	res := httptest.NewRecorder()

	h.Healthz(res, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, res.Code)
	require.Contains(t, res.Body.String(), "1.2.3")
}

func TestReadyzDatabaseDown(t *testing.T) {
	h := NewHealthHandler(stubPinger{err: errors.New("down")}, "1.2.3")
	res := httptest.NewRecorder()

	h.Readyz(res, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusServiceUnavailable, res.Code)
}

func TestReadyzDatabaseUp(t *testing.T) {
	h := NewHealthHandler(stubPinger{}, "1.2.3")
	res := httptest.NewRecorder()

	h.Readyz(res, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusOK, res.Code)
	require.Contains(t, res.Body.String(), "ready")
}
