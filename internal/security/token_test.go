package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager(testSecret, "identity", "servicelog")

	token, err := m.GenerateAccessToken(42, "driver@example.com", time.Hour)
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int32(42), claims.UserID)
	assert.Equal(t, TokenTypeAccess, claims.Type)
	assert.Equal(t, "driver@example.com", claims.Email)
}

func TestTokenManager_Rejects(t *testing.T) {
	m := NewTokenManager(testSecret, "identity", "servicelog")

	t.Run("Expired", func(t *testing.T) {
		token, err := m.GenerateAccessToken(42, "", -time.Minute)
		require.NoError(t, err)
		_, err = m.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewTokenManager("ffffffffffffffffffffffffffffffff", "identity", "servicelog")
		token, err := other.GenerateAccessToken(42, "", time.Hour)
		require.NoError(t, err)
		_, err = m.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("WrongAudience", func(t *testing.T) {
		other := NewTokenManager(testSecret, "identity", "billing")
		token, err := other.GenerateAccessToken(42, "", time.Hour)
		require.NoError(t, err)
		_, err = m.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("NoneAlgorithm", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, UserClaims{UserID: 42, Type: TokenTypeAccess})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = m.ValidateToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := m.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestTokenManager_SubjectFallback(t *testing.T) {
	m := NewTokenManager(testSecret, "", "")
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, UserClaims{
		Type: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "17",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	claims, err := m.ValidateToken(signed)
	require.NoError(t, err)
	assert.Equal(t, int32(17), claims.UserID)
}
