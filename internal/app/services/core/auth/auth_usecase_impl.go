package auth

import (
	"context"
	"strings"
	"therapyconnect-service/internal/app/config"
	"therapyconnect-service/internal/app/contracts"
	"therapyconnect-service/internal/app/models"
	"therapyconnect-service/internal/pkg/constvars"
	"therapyconnect-service/internal/pkg/dto/requests"
	"therapyconnect-service/internal/pkg/dto/responses"
	"therapyconnect-service/internal/pkg/exceptions"
	"therapyconnect-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	SessionService contracts.SessionService
	WalletVerifier contracts.WalletVerifier
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewAuthUsecase(
	sessionService contracts.SessionService,
	walletVerifier contracts.WalletVerifier,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		SessionService: sessionService,
		WalletVerifier: walletVerifier,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (uc *authUsecase) IssueNonce(ctx context.Context) (*responses.Nonce, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.IssueNonce called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ttl := time.Duration(uc.InternalConfig.Session.NonceTTLInMinute) * time.Minute
	nonce, err := uc.SessionService.IssueNonce(ctx, ttl)
	if err != nil {
		uc.Log.Error("authUsecase.IssueNonce error storing nonce",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.Nonce{Nonce: nonce}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWalletAddressKey, request.Payload.Address),
	)

	if request.Payload.Status != constvars.WalletAuthStatusSuccess {
		uc.Log.Error("authUsecase.Login wallet auth payload not successful",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("payload_status", request.Payload.Status),
			zap.String("error_code", request.Payload.ErrorCode),
		)
		return nil, exceptions.ErrWalletAuthStatus(nil, request.Payload.Status)
	}

	valid, err := uc.SessionService.ConsumeNonce(ctx, request.Nonce)
	if err != nil {
		uc.Log.Error("authUsecase.Login error consuming nonce",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !valid {
		uc.Log.Error("authUsecase.Login nonce unknown or already used",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrWalletAuthNonceInvalid(nil)
	}

	message, err := uc.WalletVerifier.VerifySignIn(ctx, request.Payload, request.Nonce)
	if err != nil {
		uc.Log.Error("authUsecase.Login error verifying sign-in message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	user := models.AuthenticatedUser{
		WalletAddress:     strings.ToLower(message.Address),
		Username:          request.Username,
		ProfilePictureURL: request.ProfilePictureURL,
	}
	ttl := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	session, err := uc.SessionService.CreateSession(ctx, user, ttl)
	if err != nil {
		uc.Log.Error("authUsecase.Login error creating session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, session.ExpiresAt)
	if err != nil {
		uc.Log.Error("authUsecase.Login error signing session token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWalletAddressKey, user.WalletAddress),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return &responses.Login{
		Token:     token,
		ExpiresAt: session.ExpiresAt.Unix(),
		User:      user.ConvertIntoResponse(),
	}, nil
}

func (uc *authUsecase) Me(ctx context.Context, session *models.Session) (*responses.Me, error) {
	if session == nil {
		return nil, exceptions.ErrTokenMissing(nil)
	}
	return &responses.Me{User: session.User.ConvertIntoResponse()}, nil
}

// Logout is idempotent: an empty session id is not an error.
func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	if sessionID == "" {
		return nil
	}

	err := uc.SessionService.DeleteSession(ctx, sessionID)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error deleting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *authUsecase) ResolveSession(ctx context.Context, token string) (*models.Session, error) {
	sessionID, err := utils.ParseJWT(token, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}
	return uc.SessionService.GetSession(ctx, sessionID)
}
