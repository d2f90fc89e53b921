package exceptions

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Name     string `validate:"required"`
	Duration int    `validate:"oneof=30 60"`
}

func TestFormatFirstValidationError(t *testing.T) {
	validate := validator.New()

	t.Run("Required field", func(t *testing.T) {
		err := validate.Struct(sampleRequest{Duration: 30})
		assert.Equal(t, "Name is required", FormatFirstValidationError(err))
	})

	t.Run("Oneof lists the options", func(t *testing.T) {
		err := validate.Struct(sampleRequest{Name: "a", Duration: 45})
		assert.Equal(t, "Duration must be one of [30, 60]", FormatFirstValidationError(err))
	})

	t.Run("Non validator error", func(t *testing.T) {
		assert.Equal(t, "invalid input", FormatFirstValidationError(assert.AnError))
	})
}

func TestFormatFieldValidationErrors(t *testing.T) {
	validate := validator.New()
	messages := map[string]map[string]string{
		"Name": {"required": "Name please"},
	}

	err := validate.Struct(sampleRequest{Duration: 45})
	fields := FormatFieldValidationErrors(err, messages)

	assert.Equal(t, "Name please", fields["Name"])
	assert.Equal(t, "Duration must be one of [30, 60]", fields["Duration"])
}
