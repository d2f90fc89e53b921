package models

import (
	"strings"
	"therapyconnect-service/internal/pkg/constvars"
	"therapyconnect-service/internal/pkg/dto/responses"
	"time"
)

type Booking struct {
	ID             string    `bson:"_id"`
	TherapistID    string    `bson:"therapist_id"`
	TherapistName  string    `bson:"therapist_name"`
	Specialization string    `bson:"specialization"`
	Date           string    `bson:"date"`
	Time           string    `bson:"time"`
	Status         string    `bson:"status"`
	PaymentStatus  string    `bson:"payment_status"`
	Amount         float64   `bson:"amount"`
	Duration       int       `bson:"duration"`
	ClientWallet   string    `bson:"client_wallet"`
	CreatedAt      time.Time `bson:"created_at"`
}

// IsShared reports whether the booking is a demo record with no owner.
func (b Booking) IsShared() bool {
	return b.ClientWallet == ""
}

func (b Booking) VisibleTo(walletAddress string) bool {
	return b.IsShared() || strings.EqualFold(b.ClientWallet, walletAddress)
}

func (b Booking) MatchesStatus(status string) bool {
	return status == "" || status == constvars.BookingStatusAll || b.Status == status
}

func (b Booking) CanCancel() bool {
	return b.Status == constvars.BookingStatusScheduled
}

// Cancelled returns the booking moved to the cancelled state. A confirmed
// payment is refunded, a pending one stays pending.
func (b Booking) Cancelled() Booking {
	b.Status = constvars.BookingStatusCancelled
	if b.PaymentStatus == constvars.PaymentStatusConfirmed {
		b.PaymentStatus = constvars.PaymentStatusRefunded
	}
	return b
}

func (b Booking) ConvertIntoResponse(walletAddress string) responses.Booking {
	return responses.Booking{
		ID:             b.ID,
		TherapistID:    b.TherapistID,
		TherapistName:  b.TherapistName,
		Specialization: b.Specialization,
		Date:           b.Date,
		Time:           b.Time,
		Status:         b.Status,
		PaymentStatus:  b.PaymentStatus,
		Amount:         b.Amount,
		Duration:       b.Duration,
		CanCancel:      b.CanCancel() && !b.IsShared() && strings.EqualFold(b.ClientWallet, walletAddress),
		CreatedAt:      b.CreatedAt,
	}
}
