package walletverifier

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"therapyconnect-service/internal/app/contracts"
	"therapyconnect-service/internal/app/models"
	"therapyconnect-service/internal/pkg/constvars"
	"therapyconnect-service/internal/pkg/dto/requests"
	"therapyconnect-service/internal/pkg/exceptions"
	"time"

	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"go.uber.org/zap"
	"golang.org/x/crypto/sha3"
)

const (
	signatureLength      = 65
	personalSignPrefix   = "\x19Ethereum Signed Message:\n"
	compactRecoveryBase  = 27
	addressHashByteIndex = 12
)

type walletVerifier struct {
	Log *zap.Logger
	now func() time.Time
}

func NewWalletVerifier(logger *zap.Logger) contracts.WalletVerifier {
	return &walletVerifier{Log: logger, now: time.Now}
}

func (v *walletVerifier) VerifySignIn(ctx context.Context, payload requests.WalletAuthPayload, nonce string) (*models.SignInMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	message, err := ParseMessage(payload.Message)
	if err != nil {
		return nil, exceptions.ErrWalletAuthMessageMalformed(err)
	}

	if message.Nonce != nonce {
		return nil, exceptions.ErrWalletAuthNonceMismatch(nil)
	}

	if !strings.EqualFold(message.Address, payload.Address) {
		return nil, exceptions.ErrWalletAuthAddressMismatch(nil)
	}

	now := v.now()
	if message.ExpirationTime != nil && now.After(*message.ExpirationTime) {
		return nil, exceptions.ErrWalletAuthMessageExpired(nil)
	}
	if message.NotBefore != nil && now.Before(*message.NotBefore) {
		return nil, exceptions.ErrWalletAuthMessageNotYetValid(nil)
	}

	recovered, err := RecoverAddress(payload.Message, payload.Signature)
	if err != nil {
		return nil, exceptions.ErrWalletAuthSignatureInvalid(err)
	}
	if !strings.EqualFold(recovered, payload.Address) {
		return nil, exceptions.ErrWalletAuthSignatureInvalid(fmt.Errorf("recovered %s", recovered))
	}

	v.Log.Info("walletVerifier.VerifySignIn succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWalletAddressKey, recovered),
	)
	return message, nil
}

// HashPersonalMessage returns the EIP-191 personal_sign digest of message.
func HashPersonalMessage(message string) []byte {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write([]byte(fmt.Sprintf("%s%d%s", personalSignPrefix, len(message), message)))
	return hasher.Sum(nil)
}

// RecoverAddress recovers the 0x-prefixed lowercase address that produced the
// 65 byte r||s||v signature over message.
func RecoverAddress(message, signature string) (string, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(signature, "0x"))
	if err != nil {
		return "", err
	}
	if len(raw) != signatureLength {
		return "", fmt.Errorf("signature must be %d bytes, got %d", signatureLength, len(raw))
	}

	recoveryID := raw[64]
	if recoveryID >= compactRecoveryBase {
		recoveryID -= compactRecoveryBase
	}
	if recoveryID > 1 {
		return "", errors.New("invalid recovery id")
	}

	compact := make([]byte, signatureLength)
	compact[0] = compactRecoveryBase + recoveryID
	copy(compact[1:], raw[:64])

	publicKey, _, err := ecdsa.RecoverCompact(compact, HashPersonalMessage(message))
	if err != nil {
		return "", err
	}

	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(publicKey.SerializeUncompressed()[1:])
	return "0x" + hex.EncodeToString(hasher.Sum(nil)[addressHashByteIndex:]), nil
}
