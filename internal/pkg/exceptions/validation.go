package exceptions

import (
	"errors"
	"strings"
	"therapyconnect-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return constvars.ErrDevInvalidInput
	}

	firstErr := validationErrors[0]
	if firstErr.Tag() == "not_past_date" {
		return constvars.CustomValidationErrorMessages[firstErr.Tag()]
	}
	return firstErr.Field() + " " + tagMessage(firstErr)
}

// FormatFieldValidationErrors maps every failing field to the message
// registered for its tag in messages. The first failing tag of a field wins.
func FormatFieldValidationErrors(err error, messages map[string]map[string]string) map[string]string {
	fields := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fields
	}

	for _, fieldErr := range validationErrors {
		field := fieldErr.Field()
		if _, exists := fields[field]; exists {
			continue
		}
		if message, ok := messages[field][fieldErr.Tag()]; ok {
			fields[field] = message
			continue
		}
		fields[field] = field + " " + tagMessage(fieldErr)
	}
	return fields
}

func tagMessage(fieldErr validator.FieldError) string {
	tag := fieldErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		return "is invalid"
	}

	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			return strings.Replace(customMessage, "%s", strings.Join(strings.Fields(fieldErr.Param()), ", "), 1)
		}
		return strings.Replace(customMessage, "%s", fieldErr.Param(), 1)
	}
	return customMessage
}
