package walletverifier

import (
	"errors"
	"fmt"
	"strings"
	"therapyconnect-service/internal/app/models"
	"time"
)

const (
	headerSuffix = " wants you to sign in with your Ethereum account:"

	fieldURI            = "URI: "
	fieldVersion        = "Version: "
	fieldChainID        = "Chain ID: "
	fieldNonce          = "Nonce: "
	fieldIssuedAt       = "Issued At: "
	fieldExpirationTime = "Expiration Time: "
	fieldNotBefore      = "Not Before: "
	fieldRequestID      = "Request ID: "
)

// ParseMessage parses an EIP-4361 message. Only the header, address and
// nonce are mandatory.
func ParseMessage(raw string) (*models.SignInMessage, error) {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	if len(lines) < 2 {
		return nil, errors.New("message too short")
	}

	if !strings.HasSuffix(lines[0], headerSuffix) {
		return nil, errors.New("missing sign-in header")
	}

	message := &models.SignInMessage{
		Domain:  strings.TrimSuffix(lines[0], headerSuffix),
		Address: strings.TrimSpace(lines[1]),
	}

	var statement []string
	for _, line := range lines[2:] {
		var err error
		switch {
		case strings.HasPrefix(line, fieldURI):
			message.URI = strings.TrimPrefix(line, fieldURI)
		case strings.HasPrefix(line, fieldVersion):
			message.Version = strings.TrimPrefix(line, fieldVersion)
		case strings.HasPrefix(line, fieldChainID):
			message.ChainID = strings.TrimPrefix(line, fieldChainID)
		case strings.HasPrefix(line, fieldNonce):
			message.Nonce = strings.TrimPrefix(line, fieldNonce)
		case strings.HasPrefix(line, fieldIssuedAt):
			message.IssuedAt, err = parseTimestamp(strings.TrimPrefix(line, fieldIssuedAt))
		case strings.HasPrefix(line, fieldExpirationTime):
			message.ExpirationTime, err = parseOptionalTimestamp(strings.TrimPrefix(line, fieldExpirationTime))
		case strings.HasPrefix(line, fieldNotBefore):
			message.NotBefore, err = parseOptionalTimestamp(strings.TrimPrefix(line, fieldNotBefore))
		case strings.HasPrefix(line, fieldRequestID):
			message.RequestID = strings.TrimPrefix(line, fieldRequestID)
		case message.URI == "" && strings.TrimSpace(line) != "":
			statement = append(statement, line)
		}
		if err != nil {
			return nil, err
		}
	}
	message.Statement = strings.Join(statement, "\n")

	if message.Address == "" {
		return nil, errors.New("missing address")
	}
	if message.Nonce == "" {
		return nil, errors.New("missing nonce")
	}
	return message, nil
}

func parseTimestamp(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", value, err)
	}
	return parsed, nil
}

func parseOptionalTimestamp(value string) (*time.Time, error) {
	parsed, err := parseTimestamp(value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
