package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestTokenRoundtrip(t *testing.T) {
	token, err := GenerateToken(testSecret, "652f8a000000000000000000", "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "652f8a000000000000000000", id)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, "652f8a000000000000000000", "alice")
	require.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken(testSecret, "not-a-token")
	assert.Error(t, err)

	_, err = ParseToken(testSecret, "")
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "652f8a000000000000000000",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseToken(testSecret, signed)
	assert.Error(t, err)
}

func TestParseTokenRejectsMissingID(t *testing.T) {
	noID := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := noID.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseToken(testSecret, signed)
	assert.Error(t, err)
}

func TestTokenCarriesThirtyDayExpiry(t *testing.T) {
	signed, err := GenerateToken(testSecret, "652f8a000000000000000000", "alice")
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)

	exp, err := parsed.Claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(TokenLifetime), exp.Time, time.Minute)
}
