package bookings

import (
	"context"
	"sync"
	"therapyconnect-service/internal/app/contracts"
	"therapyconnect-service/internal/app/models"
	"therapyconnect-service/internal/pkg/exceptions"
)

type bookingMemoryRepository struct {
	mu       sync.RWMutex
	bookings []models.Booking
}

func NewBookingMemoryRepository(seed []models.Booking) contracts.BookingRepository {
	bookings := make([]models.Booking, len(seed))
	copy(bookings, seed)
	return &bookingMemoryRepository{bookings: bookings}
}

func (repo *bookingMemoryRepository) FindAll(ctx context.Context) ([]models.Booking, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	result := make([]models.Booking, len(repo.bookings))
	copy(result, repo.bookings)
	return result, nil
}

func (repo *bookingMemoryRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, booking := range repo.bookings {
		if booking.ID == bookingID {
			found := booking
			return &found, nil
		}
	}
	return nil, nil
}

func (repo *bookingMemoryRepository) Create(ctx context.Context, booking models.Booking) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, existing := range repo.bookings {
		if existing.ID == booking.ID {
			return exceptions.ErrDuplicateID
		}
	}
	repo.bookings = append(repo.bookings, booking)
	return nil
}

func (repo *bookingMemoryRepository) Update(ctx context.Context, booking models.Booking) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i := range repo.bookings {
		if repo.bookings[i].ID == booking.ID {
			repo.bookings[i] = booking
			return nil
		}
	}
	return nil
}
