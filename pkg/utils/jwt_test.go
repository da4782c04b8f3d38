package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(testSecret, "user-1", "admin", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(testSecret, "user-1", "admin", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := GenerateJWT(testSecret, "user-1", "admin", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(testSecret, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseJWT_Garbage(t *testing.T) {
	_, err := ParseJWT(testSecret, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
