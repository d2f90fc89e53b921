package utils

import (
	"strings"
	"therapyconnect-service/internal/pkg/dto/requests"
)

func SanitizeRegisterTherapistRequest(input *requests.RegisterTherapist) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Phone = strings.TrimSpace(input.Phone)
	input.Specialization = strings.TrimSpace(input.Specialization)
	input.Description = strings.TrimSpace(input.Description)
	input.HourlyRate = strings.TrimSpace(input.HourlyRate)
	input.Credentials = strings.TrimSpace(input.Credentials)
	input.Experience = strings.TrimSpace(input.Experience)
}

func SanitizeCreateBookingRequest(input *requests.CreateBooking) {
	input.TherapistID = strings.TrimSpace(input.TherapistID)
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
	input.IdempotencyKey = strings.TrimSpace(input.IdempotencyKey)
}

func SanitizeTherapistFilterRequest(input *requests.TherapistFilter) {
	input.Specialization = strings.TrimSpace(input.Specialization)
	input.Search = strings.TrimSpace(input.Search)
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Nonce = strings.TrimSpace(input.Nonce)
	input.Payload.Address = strings.TrimSpace(input.Payload.Address)
	input.Payload.Signature = strings.TrimSpace(input.Payload.Signature)
	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		input.Username = &username
	}
}
