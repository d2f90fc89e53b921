package contracts

import (
	"context"
	"therapyconnect-service/internal/app/models"
	"therapyconnect-service/internal/pkg/dto/requests"
	"therapyconnect-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	IssueNonce(ctx context.Context) (*responses.Nonce, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Me(ctx context.Context, session *models.Session) (*responses.Me, error)
	Logout(ctx context.Context, sessionID string) error
	ResolveSession(ctx context.Context, token string) (*models.Session, error)
}

// WalletVerifier checks a signed sign-in message against the nonce issued
// for it and returns the parsed message.
type WalletVerifier interface {
	VerifySignIn(ctx context.Context, payload requests.WalletAuthPayload, nonce string) (*models.SignInMessage, error)
}
