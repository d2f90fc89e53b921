package walletverifier

import (
	"context"
	"encoding/hex"
	"fmt"
	"testing"
	"therapyconnect-service/internal/pkg/dto/requests"
	"therapyconnect-service/internal/pkg/exceptions"
	"time"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/sha3"
)

type testWallet struct {
	key     *secp256k1.PrivateKey
	address string
}

func newTestWallet(t *testing.T) testWallet {
	key, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)

	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(key.PubKey().SerializeUncompressed()[1:])
	return testWallet{key: key, address: "0x" + hex.EncodeToString(hasher.Sum(nil)[12:])}
}

// sign returns an Ethereum style r||s||v signature.
func (w testWallet) sign(message string) string {
	compact := ecdsa.SignCompact(w.key, HashPersonalMessage(message), false)
	signature := append(append([]byte{}, compact[1:]...), compact[0])
	return "0x" + hex.EncodeToString(signature)
}

func buildMessage(address, nonce string, notBefore, expiration time.Time) string {
	return fmt.Sprintf(`therapy.example wants you to sign in with your Ethereum account:
%s

This is my statement and here is a link https://worldcoin.com/apps

URI: https://therapy.example/
Version: 1
Chain ID: 480
Nonce: %s
Issued At: %s
Expiration Time: %s
Not Before: %s
Request ID: 0`, address, nonce, time.Now().UTC().Format(time.RFC3339), expiration.UTC().Format(time.RFC3339Nano), notBefore.UTC().Format(time.RFC3339Nano))
}

func TestParseMessage(t *testing.T) {
	now := time.Now()
	raw := buildMessage("0xAbC0000000000000000000000000000000000001", "abc12345nonce", now.Add(-24*time.Hour), now.Add(7*24*time.Hour))

	message, err := ParseMessage(raw)
	require.NoError(t, err)

	assert.Equal(t, "therapy.example", message.Domain)
	assert.Equal(t, "0xAbC0000000000000000000000000000000000001", message.Address)
	assert.Equal(t, "This is my statement and here is a link https://worldcoin.com/apps", message.Statement)
	assert.Equal(t, "abc12345nonce", message.Nonce)
	assert.Equal(t, "480", message.ChainID)
	assert.Equal(t, "0", message.RequestID)
	require.NotNil(t, message.ExpirationTime)
	require.NotNil(t, message.NotBefore)

	_, err = ParseMessage("hello\nworld")
	assert.Error(t, err)
}

func TestRecoverAddress(t *testing.T) {
	wallet := newTestWallet(t)

	recovered, err := RecoverAddress("hello therapy", wallet.sign("hello therapy"))
	require.NoError(t, err)
	assert.Equal(t, wallet.address, recovered)

	other, err := RecoverAddress("tampered", wallet.sign("hello therapy"))
	require.NoError(t, err)
	assert.NotEqual(t, wallet.address, other)

	_, err = RecoverAddress("hello", "0x1234")
	assert.Error(t, err)
}

func TestVerifySignIn(t *testing.T) {
	wallet := newTestWallet(t)
	verifier := NewWalletVerifier(zap.NewNop())
	ctx := context.Background()
	now := time.Now()

	statusCode := func(err error) int {
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		return customErr.StatusCode
	}

	t.Run("Valid sign-in", func(t *testing.T) {
		raw := buildMessage(wallet.address, "nonce12345", now.Add(-24*time.Hour), now.Add(7*24*time.Hour))
		payload := requests.WalletAuthPayload{Status: "success", Message: raw, Signature: wallet.sign(raw), Address: wallet.address}

		message, err := verifier.VerifySignIn(ctx, payload, "nonce12345")
		require.NoError(t, err)
		assert.Equal(t, "nonce12345", message.Nonce)
	})

	t.Run("Nonce mismatch", func(t *testing.T) {
		raw := buildMessage(wallet.address, "nonce12345", now.Add(-24*time.Hour), now.Add(7*24*time.Hour))
		payload := requests.WalletAuthPayload{Message: raw, Signature: wallet.sign(raw), Address: wallet.address}

		_, err := verifier.VerifySignIn(ctx, payload, "othernonce")
		assert.Equal(t, 401, statusCode(err))
	})

	t.Run("Expired message", func(t *testing.T) {
		raw := buildMessage(wallet.address, "nonce12345", now.Add(-48*time.Hour), now.Add(-time.Hour))
		payload := requests.WalletAuthPayload{Message: raw, Signature: wallet.sign(raw), Address: wallet.address}

		_, err := verifier.VerifySignIn(ctx, payload, "nonce12345")
		assert.Error(t, err)
	})

	t.Run("Signature from another wallet", func(t *testing.T) {
		impostor := newTestWallet(t)
		raw := buildMessage(wallet.address, "nonce12345", now.Add(-24*time.Hour), now.Add(7*24*time.Hour))
		payload := requests.WalletAuthPayload{Message: raw, Signature: impostor.sign(raw), Address: wallet.address}

		_, err := verifier.VerifySignIn(ctx, payload, "nonce12345")
		assert.Equal(t, 401, statusCode(err))
	})
}
