package contracts

import (
	"context"
	"therapyconnect-service/internal/app/models"
	"therapyconnect-service/internal/pkg/dto/requests"
	"therapyconnect-service/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	ListBookings(ctx context.Context, walletAddress string, request requests.ListBookings) (*responses.BookingList, error)
	CreateBooking(ctx context.Context, walletAddress string, request *requests.CreateBooking) (*responses.Booking, error)
	CancelBooking(ctx context.Context, walletAddress, bookingID string) (*responses.Booking, error)
}

type BookingRepository interface {
	FindAll(ctx context.Context) ([]models.Booking, error)
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
	Create(ctx context.Context, booking models.Booking) error
	Update(ctx context.Context, booking models.Booking) error
}
