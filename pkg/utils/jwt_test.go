package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundtrip(t *testing.T) {
	InitJWT("test-secret", 30*time.Minute)

	token, err := GenerateJWT("user-1", "jane@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseJWTRejectsTamperedToken(t *testing.T) {
	InitJWT("test-secret", 30*time.Minute)

	token, err := GenerateJWT("user-1", "jane@example.com")
	require.NoError(t, err)

	_, err = ParseJWT(token + "x")
	assert.Error(t, err)

	_, err = ParseJWT("not-a-token")
	assert.Error(t, err)
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	InitJWT("first-secret", 30*time.Minute)
	token, err := GenerateJWT("user-1", "jane@example.com")
	require.NoError(t, err)

	InitJWT("second-secret", 30*time.Minute)
	_, err = ParseJWT(token)
	assert.Error(t, err)
}

func TestParseJWTRejectsExpiredToken(t *testing.T) {
	InitJWT("test-secret", -time.Minute)
	require.Equal(t, -time.Minute, TokenTTL())

	token, err := GenerateJWT("user-1", "jane@example.com")
	require.NoError(t, err)

	_, err = ParseJWT(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", string(hash))

	assert.True(t, CheckPassword("hunter22", string(hash)))
	assert.False(t, CheckPassword("wrong", string(hash)))
}
