package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret-only-the-backend-knows"))
	require.NoError(t, err)

	return token
}

func TestJWTInspector_ReadsClaimsWithoutSecret(t *testing.T) {
	exp := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	token := signTestToken(t, jwt.MapClaims{
		"sub":       "u1",
		"role":      "seller",
		"seller_id": "s1",
		"exp":       exp.Unix(),
	})

	claims, err := NewJWTInspector().Inspect(token)

	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "seller", claims.Role)
	assert.Equal(t, "s1", claims.SellerID)
	assert.True(t, exp.Equal(claims.ExpiresAt))
	assert.False(t, claims.Expired(exp.Add(-time.Second)))
	assert.True(t, claims.Expired(exp))
}

func TestJWTInspector_IDClaimAndNoExpiry(t *testing.T) {
	token := signTestToken(t, jwt.MapClaims{"id": "u2"})

	claims, err := NewJWTInspector().Inspect(token)

	require.NoError(t, err)
	assert.Equal(t, "u2", claims.Subject)
	assert.True(t, claims.ExpiresAt.IsZero())
	assert.False(t, claims.Expired(time.Now()))
}

func TestJWTInspector_InvalidToken(t *testing.T) {
	_, err := NewJWTInspector().Inspect("opaque-session-token")
	assert.Error(t, err)
}
