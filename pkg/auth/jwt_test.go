package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/millionaire-api/internal/domain/entity"
)

func TestJWTService_GenerateAndParse(t *testing.T) {
	svc, err := NewJWTService("secret", 1)
	require.NoError(t, err)

	token, err := svc.GenerateToken(&entity.User{ID: 7, Email: "a@b.c", IsAdmin: true})
	require.NoError(t, err)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "a@b.c", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "7", claims.Subject)
}

func TestJWTService_ParseErrors(t *testing.T) {
	svc, err := NewJWTService("secret", 1)
	require.NoError(t, err)

	t.Run("мусор", func(t *testing.T) {
		_, err := svc.ParseToken("not-a-token")
		assert.ErrorIs(t, err, ErrTokenMalformed)
	})

	t.Run("чужой секрет", func(t *testing.T) {
		other, err := NewJWTService("other", 1)
		require.NoError(t, err)
		token, err := other.GenerateToken(&entity.User{ID: 1})
		require.NoError(t, err)

		_, err = svc.ParseToken(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("истёкший", func(t *testing.T) {
		expired, err := NewJWTService("secret", 1)
		require.NoError(t, err)
		expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := expired.GenerateToken(&entity.User{ID: 1})
		require.NoError(t, err)

		_, err = svc.ParseToken(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("алгоритм none", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, &JWTCustomClaims{UserID: 1})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ParseToken(signed)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService("", 1)
	assert.Error(t, err)
}
