package utils

import (
	"testing"
	"therapyconnect-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterTherapistRequest(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &requests.RegisterTherapist{Email: "  SARAH@EXAMPLE.COM  "}

		SanitizeRegisterTherapistRequest(request)

		assert.Equal(t, "sarah@example.com", request.Email, "email should be lowercase and trimmed")
	})

	t.Run("Text fields are trimmed", func(t *testing.T) {
		request := &requests.RegisterTherapist{
			FullName:   "  Dr. Sarah Johnson ",
			HourlyRate: " 150 ",
			Experience: "\t10\n",
		}

		SanitizeRegisterTherapistRequest(request)

		assert.Equal(t, "Dr. Sarah Johnson", request.FullName)
		assert.Equal(t, "150", request.HourlyRate)
		assert.Equal(t, "10", request.Experience)
	})

	t.Run("Blank fields become empty", func(t *testing.T) {
		request := &requests.RegisterTherapist{Phone: "   "}

		SanitizeRegisterTherapistRequest(request)

		assert.Empty(t, request.Phone, "whitespace only input should be empty")
	})
}

func TestSanitizeLoginRequest(t *testing.T) {
	username := "  sarah  "
	request := &requests.Login{
		Nonce:    " abc12345 ",
		Username: &username,
		Payload:  requests.WalletAuthPayload{Address: " 0xabc "},
	}

	SanitizeLoginRequest(request)

	assert.Equal(t, "abc12345", request.Nonce)
	assert.Equal(t, "0xabc", request.Payload.Address)
	assert.Equal(t, "sarah", *request.Username)
}
