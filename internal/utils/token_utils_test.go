package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	secret := "test-secret-key-that-is-long-enough"
	userID := "user-123"

	token, err := GenerateJWT(userID, secret, time.Hour, "cafeledger-test")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAndValidateJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.Subject)
	assert.Equal(t, "cafeledger-test", claims.Issuer)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT("user-123", "correct-secret", time.Hour, "cafeledger-test")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "wrong-secret")
	assert.Error(t, err)
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := GenerateJWT("user-123", "test-secret", -time.Minute, "cafeledger-test")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "test-secret")
	assert.Error(t, err)
}

func TestHashToken(t *testing.T) {
	first := HashToken("reset-token-abc")
	second := HashToken("reset-token-abc")
	other := HashToken("reset-token-xyz")

	assert.Equal(t, first, second, "hashing must be deterministic")
	assert.NotEqual(t, first, other)
	assert.NotContains(t, first, "reset-token", "digest must not leak the token")
	assert.Len(t, first, 64)
}

func TestHashPasswordAndCheck(t *testing.T) {
	hash, err := HashPassword("Espresso1")
	require.NoError(t, err)
	assert.NotEqual(t, "Espresso1", hash)

	assert.True(t, CheckPasswordHash("Espresso1", hash))
	assert.False(t, CheckPasswordHash("Espresso2", hash))
}
