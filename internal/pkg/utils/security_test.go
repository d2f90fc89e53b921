package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionJWT(t *testing.T) {
	secret := "test-secret"

	t.Run("Round trip keeps the session id", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-123", secret, time.Now().Add(time.Hour))
		require.NoError(t, err)

		sessionID, err := ParseJWT(token, secret)
		require.NoError(t, err)
		assert.Equal(t, "session-123", sessionID)
	})

	t.Run("Wrong secret is rejected", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-123", secret, time.Now().Add(time.Hour))
		require.NoError(t, err)

		_, err = ParseJWT(token, "other-secret")
		assert.Error(t, err)
	})

	t.Run("Expired token is rejected", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-123", secret, time.Now().Add(-time.Minute))
		require.NoError(t, err)

		_, err = ParseJWT(token, secret)
		assert.Error(t, err)
	})
}

func TestGenerateNonce(t *testing.T) {
	nonce := GenerateNonce()
	assert.Len(t, nonce, 32)
	assert.Regexp(t, "^[0-9a-f]+$", nonce)
	assert.NotEqual(t, nonce, GenerateNonce())
}
