package contracts

import (
	"context"
	"therapyconnect-service/internal/pkg/dto/requests"
	"therapyconnect-service/internal/pkg/dto/responses"
)

type RegistrationUsecase interface {
	Register(ctx context.Context, request *requests.RegisterTherapist) (*responses.RegistrationSummary, error)
	ListOptions(ctx context.Context) *responses.RegistrationOptions
}
