package contracts

import (
	"context"
	"io"
	"therapyconnect-service/internal/app/models"
	"therapyconnect-service/internal/pkg/dto/requests"
	"therapyconnect-service/internal/pkg/dto/responses"
)

type TherapistUsecase interface {
	ListTherapists(ctx context.Context, filter requests.TherapistFilter) (*responses.TherapistList, error)
	GetTherapist(ctx context.Context, therapistID string) (*responses.Therapist, error)
	ListSpecializations(ctx context.Context) *responses.Specializations
	QuotePrice(ctx context.Context, request requests.PriceQuote) (*responses.PriceQuote, error)
	UploadAvatar(ctx context.Context, therapistID string, image io.Reader, size int64, filename string) (*responses.Therapist, error)
}

type TherapistRepository interface {
	FindAll(ctx context.Context) ([]models.Therapist, error)
	FindByID(ctx context.Context, therapistID string) (*models.Therapist, error)
	Create(ctx context.Context, therapist models.Therapist) error
	UpdateImageURL(ctx context.Context, therapistID, imageURL string) error
}
