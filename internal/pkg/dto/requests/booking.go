package requests

type CreateBooking struct {
	TherapistID    string `json:"therapistId" validate:"required"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Duration       int    `json:"duration" validate:"session_duration"`
	IdempotencyKey string `json:"-"`
}

type ListBookings struct {
	Status string `validate:"oneof=all scheduled completed cancelled"`
}

type BookingDate struct {
	Date string `validate:"not_past_date"`
}
