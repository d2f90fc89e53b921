package contracts

import (
	"context"
	"therapyconnect-service/internal/app/models"
	"time"
)

type SessionService interface {
	CreateSession(ctx context.Context, user models.AuthenticatedUser, ttl time.Duration) (*models.Session, error)
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	IssueNonce(ctx context.Context, ttl time.Duration) (string, error)
	ConsumeNonce(ctx context.Context, nonce string) (bool, error)
}
