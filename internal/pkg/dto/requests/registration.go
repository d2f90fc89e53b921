package requests

import "therapyconnect-service/internal/app/models"

type RegisterTherapist struct {
	FullName       string                  `json:"fullName" validate:"required"`
	Email          string                  `json:"email" validate:"required,simple_email"`
	Phone          string                  `json:"phone" validate:"required"`
	Specialization string                  `json:"specialization" validate:"required"`
	Description    string                  `json:"description" validate:"required"`
	HourlyRate     string                  `json:"hourlyRate" validate:"required,positive_number"`
	Credentials    string                  `json:"credentials" validate:"required"`
	Experience     string                  `json:"experience" validate:"required"`
	Availability   models.AvailabilityGrid `json:"availability" validate:"at_least_one_slot"`
}
