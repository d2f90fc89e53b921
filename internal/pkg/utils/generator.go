package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

// GenerateNonce returns 32 lowercase hex characters, which satisfies the
// alphanumeric minimum length the wallet sign-in message requires.
func GenerateNonce() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// GenerateBookingID returns a short id such as "BK-20240325-482913".
func GenerateBookingID(now time.Time) (string, error) {
	suffix, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("BK-%s-%06d", now.Format("20060102"), suffix.Int64()), nil
}
