package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestSizeLimitRejectsDeclaredOversize(t *testing.T) {
	handler := RequestSizeLimit(16)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for an oversized body")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader(strings.Repeat("x", 64)))
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, res.Code)
}

func TestRequestSizeLimitCapsStreamedBody(t *testing.T) {
	var readErr error
	handler := RequestSizeLimit(16)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader(strings.Repeat("x", 64)))
	req.ContentLength = -1 // chunked upload, length unknown up front
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	require.Error(t, readErr)
}

func TestRequestSizeLimitPassesSmallBody(t *testing.T) {
	handler := RequestSizeLimit(1024)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.Equal(t, `{"title":"ok"}`, string(body))
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader(`{"title":"ok"}`))
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)
}
