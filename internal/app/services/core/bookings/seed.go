package bookings

import (
	"therapyconnect-service/internal/app/models"
	"therapyconnect-service/internal/pkg/constvars"
	"time"
)

// SeedBookings returns the demo bookings owned by ownerWallet. An empty
// owner makes them shared records.
func SeedBookings(ownerWallet string) []models.Booking {
	return []models.Booking{
		{
			ID:             "1",
			TherapistID:    "1",
			TherapistName:  "Dr. Sarah Johnson",
			Specialization: "Cognitive Behavioral Therapy",
			Date:           "2024-03-25",
			Time:           "10:00 AM",
			Status:         constvars.BookingStatusScheduled,
			PaymentStatus:  constvars.PaymentStatusConfirmed,
			Amount:         150,
			Duration:       60,
			ClientWallet:   ownerWallet,
			CreatedAt:      time.Date(2024, time.March, 18, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:             "2",
			TherapistID:    "2",
			TherapistName:  "Dr. Michael Chen",
			Specialization: "Family Therapy",
			Date:           "2024-03-20",
			Time:           "2:30 PM",
			Status:         constvars.BookingStatusCompleted,
			PaymentStatus:  constvars.PaymentStatusConfirmed,
			Amount:         180,
			Duration:       90,
			ClientWallet:   ownerWallet,
			CreatedAt:      time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:             "3",
			TherapistID:    "3",
			TherapistName:  "Dr. Emily Rodriguez",
			Specialization: "Trauma Therapy",
			Date:           "2024-03-28",
			Time:           "4:00 PM",
			Status:         constvars.BookingStatusScheduled,
			PaymentStatus:  constvars.PaymentStatusPending,
			Amount:         200,
			Duration:       60,
			ClientWallet:   ownerWallet,
			CreatedAt:      time.Date(2024, time.March, 21, 9, 0, 0, 0, time.UTC),
		},
	}
}
