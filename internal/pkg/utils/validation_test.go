package utils

import (
	"testing"
	"therapyconnect-service/internal/app/models"
	"therapyconnect-service/internal/pkg/dto/requests"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidSimpleEmail(t *testing.T) {
	assert.False(t, IsValidSimpleEmail("not-an-email"))
	assert.False(t, IsValidSimpleEmail("a@b"))
	assert.False(t, IsValidSimpleEmail("a b@c.co"))
	assert.True(t, IsValidSimpleEmail("a@b.co"))
	assert.True(t, IsValidSimpleEmail("sarah.johnson@clinic.example.org"))
}

func TestValidateStructCustomTags(t *testing.T) {
	t.Run("Booking date in the past", func(t *testing.T) {
		err := ValidateStruct(requests.BookingDate{Date: "2000-01-01"})
		require.Error(t, err)
		assert.Equal(t, "not_past_date", err.(validator.ValidationErrors)[0].Tag())
	})

	t.Run("Booking date today", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(requests.BookingDate{Date: time.Now().Format("2006-01-02")}))
	})

	t.Run("Booking date malformed", func(t *testing.T) {
		assert.Error(t, ValidateStruct(requests.BookingDate{Date: "25/03/2030"}))
	})

	t.Run("Session duration", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(requests.CreateBooking{TherapistID: "1", Duration: 90}))
		assert.Error(t, ValidateStruct(requests.CreateBooking{TherapistID: "1", Duration: 45}))
	})

	t.Run("Registration uses json field names", func(t *testing.T) {
		err := ValidateStruct(requests.RegisterTherapist{})
		require.Error(t, err)

		fields := map[string]string{}
		for _, fieldErr := range err.(validator.ValidationErrors) {
			fields[fieldErr.Field()] = fieldErr.Tag()
		}
		assert.Equal(t, "required", fields["fullName"])
		assert.Equal(t, "required", fields["hourlyRate"])
		assert.Equal(t, "at_least_one_slot", fields["availability"])
	})

	t.Run("Hourly rate must be positive", func(t *testing.T) {
		form := validRegistration()
		form.HourlyRate = "-5"
		err := ValidateStruct(form)
		require.Error(t, err)
		assert.Equal(t, "positive_number", err.(validator.ValidationErrors)[0].Tag())

		form.HourlyRate = "abc"
		assert.Error(t, ValidateStruct(form))

		form.HourlyRate = "120.50"
		assert.NoError(t, ValidateStruct(form))
	})
}

func validRegistration() requests.RegisterTherapist {
	var grid models.AvailabilityGrid
	grid.Set(models.Monday, models.Morning, true)

	return requests.RegisterTherapist{
		FullName:       "Dr. Test",
		Email:          "a@b.co",
		Phone:          "+15555550100",
		Specialization: "Family Therapy",
		Description:    "Helps families.",
		HourlyRate:     "120",
		Credentials:    "PhD",
		Experience:     "5",
		Availability:   grid,
	}
}

func TestIsValidWalletAddress(t *testing.T) {
	assert.True(t, IsValidWalletAddress("0x1234567890abcdef1234567890ABCDEF1234cdef"))
	assert.False(t, IsValidWalletAddress("0x1234"))
	assert.False(t, IsValidWalletAddress("1234567890abcdef1234567890abcdef1234cdef00"))
	assert.False(t, IsValidWalletAddress("0xzz34567890abcdef1234567890abcdef1234cdef"))
}

func TestValidateStructLoginWalletAddress(t *testing.T) {
	login := func(status, address string) *requests.Login {
		return &requests.Login{
			Payload: requests.WalletAuthPayload{Status: status, Address: address},
			Nonce:   "abcdef1234567890",
		}
	}

	t.Run("Well formed address", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(login("success", "0x1234567890abcdef1234567890abcdef1234cdef")))
	})

	t.Run("Malformed address", func(t *testing.T) {
		err := ValidateStruct(login("success", "0xnot-a-wallet"))
		require.Error(t, err)
		assert.Equal(t, "wallet_address", err.(validator.ValidationErrors)[0].Tag())
	})

	t.Run("Missing address on a successful payload", func(t *testing.T) {
		err := ValidateStruct(login("success", ""))
		require.Error(t, err)
		assert.Equal(t, "required_if", err.(validator.ValidationErrors)[0].Tag())
	})

	t.Run("Error payload without address", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(login("error", "")))
	})
}

func TestParsePositiveAmount(t *testing.T) {
	value, ok := ParsePositiveAmount(" 120.456 ")
	require.True(t, ok)
	assert.Equal(t, "120.46", value.StringFixed(2))

	value, ok = ParsePositiveAmount("1.5e2")
	require.True(t, ok)
	assert.Equal(t, "150.00", value.StringFixed(2))

	for _, raw := range []string{"", "Inf", "-Inf", "NaN", "0x1p4", "0.001", "1e-9", "0", "-5", "1e999999999", "abc"} {
		_, ok := ParsePositiveAmount(raw)
		assert.False(t, ok, raw)
	}
}
