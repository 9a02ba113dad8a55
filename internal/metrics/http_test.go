package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestHTTPMiddlewareCountsRequests(t *testing.T) {
	before := testutil.CollectAndCount(HTTPRequestsTotal)

	handler := HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/metrics-test-path", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	require.Equal(t, http.StatusTeapot, res.Code)
	require.Greater(t, testutil.CollectAndCount(HTTPRequestsTotal), before)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/metrics-test-path", "418"))
	require.Equal(t, 1.0, count)
}

func TestHTTPMiddlewareDefaultsStatusTo200(t *testing.T) {
	handler := HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/metrics-implicit-status", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/metrics-implicit-status", "200"))
	require.Equal(t, 1.0, count)
}
