package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gatherly/server/internal/auth"
)

func newAuthedHandler(t *testing.T) (http.Handler, *auth.JWTManager, *string) {
	t.Helper()
	manager := auth.NewJWTManager("test-secret", time.Hour, "gatherly-test")

	var seenUserID string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID = UserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	return JWTAuth(manager, "test")(inner), manager, &seenUserID
}

func TestJWTAuthInjectsUserID(t *testing.T) {
	handler, manager, seenUserID := newAuthedHandler(t)

	token, err := manager.Generate("user-7")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	require.Equal(t, http.StatusNoContent, res.Code)
	require.Equal(t, "user-7", *seenUserID)
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	handler, _, _ := newAuthedHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	require.Equal(t, http.StatusUnauthorized, res.Code)
	require.Equal(t, "application/problem+json", res.Header().Get("Content-Type"))
}

func TestJWTAuthRejectsGarbageToken(t *testing.T) {
	handler, _, _ := newAuthedHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	require.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestUserIDEmptyWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.Empty(t, UserID(req.Context()))
}
