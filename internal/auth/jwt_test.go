package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestManager() *JWTManager {
	return NewJWTManager("test-secret", time.Hour, "gatherly-test")
}

func TestGenerateAndValidateRoundTrip(t *testing.T) {
	manager := newTestManager()

	token, err := manager.Generate("user-42")
	require.NoError(t, err)

	claims, err := manager.Validate(token)
	require.NoError(t, err)
	require.Equal(t, "user-42", claims.UserID())
	require.Equal(t, "gatherly-test", claims.Issuer)
}

func TestGenerateRequiresSubject(t *testing.T) {
	manager := newTestManager()
	_, err := manager.Generate("")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsEmptyToken(t *testing.T) {
	manager := newTestManager()
	_, err := manager.Validate("  ")
	require.ErrorIs(t, err, ErrMissingToken)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := newTestManager().Generate("user-42")
	require.NoError(t, err)

	other := NewJWTManager("different-secret", time.Hour, "gatherly-test")
	_, err = other.Validate(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute, "gatherly-test")
	token, err := manager.Generate("user-42")
	require.NoError(t, err)

	_, err = manager.Validate(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenFromHeader(t *testing.T) {
	token, err := TokenFromHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	require.Equal(t, "abc.def.ghi", token)

	_, err = TokenFromHeader("")
	require.ErrorIs(t, err, ErrMissingToken)

	_, err = TokenFromHeader("Basic dXNlcjpwYXNz")
	require.ErrorIs(t, err, ErrMissingToken)

	token, err = TokenFromHeader("bearer abc")
	require.NoError(t, err)
	require.Equal(t, "abc", token)
}
