package auth

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signHS256(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestJWTVerifier_Verify(t *testing.T) {
	ctx := context.Background()
	v := NewJWTVerifier("secret")

	t.Run("valid token resolves the subject", func(t *testing.T) {
		token := signHS256(t, "secret", jwt.MapClaims{"sub": "user-1"})
		userID, err := v.Verify(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", userID)
	})

	t.Run("wrong secret yields empty identity", func(t *testing.T) {
		token := signHS256(t, "other", jwt.MapClaims{"sub": "user-1"})
		userID, err := v.Verify(ctx, token)
		require.NoError(t, err)
		assert.Empty(t, userID)
	})

	t.Run("missing subject yields empty identity", func(t *testing.T) {
		token := signHS256(t, "secret", jwt.MapClaims{})
		userID, err := v.Verify(ctx, token)
		require.NoError(t, err)
		assert.Empty(t, userID)
	})

	t.Run("garbage token yields empty identity", func(t *testing.T) {
		userID, err := v.Verify(ctx, "not-a-jwt")
		require.NoError(t, err)
		assert.Empty(t, userID)
	})
}
