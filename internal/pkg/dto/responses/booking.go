package responses

import "time"

type Booking struct {
	ID             string    `json:"id"`
	TherapistID    string    `json:"therapistId,omitempty"`
	TherapistName  string    `json:"therapistName"`
	Specialization string    `json:"specialization"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Status         string    `json:"status"`
	PaymentStatus  string    `json:"paymentStatus"`
	Amount         float64   `json:"amount"`
	Duration       int       `json:"duration"`
	CanCancel      bool      `json:"canCancel"`
	CreatedAt      time.Time `json:"createdAt"`
}

type BookingList struct {
	Status   string    `json:"status"`
	Count    int       `json:"count"`
	Bookings []Booking `json:"bookings"`
}
