package session

import (
	"context"
	"fmt"
	"therapyconnect-service/internal/app/contracts"
	"therapyconnect-service/internal/app/models"
	"therapyconnect-service/internal/pkg/constvars"
	"therapyconnect-service/internal/pkg/exceptions"
	"therapyconnect-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
	now             func() time.Time
}

func NewSessionService(redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		Log:             logger,
		now:             time.Now,
	}
}

func (svc *sessionService) CreateSession(ctx context.Context, user models.AuthenticatedUser, ttl time.Duration) (*models.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	now := svc.now().UTC()
	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		User:      user,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	redisKey := fmt.Sprintf(constvars.RedisKeySessionFormat, session.SessionID)
	err := svc.RedisRepository.Set(ctx, redisKey, session, ttl)
	if err != nil {
		svc.Log.Error("sessionService.CreateSession error storing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, redisKey),
			zap.Error(err),
		)
		return nil, err
	}

	svc.Log.Info("sessionService.CreateSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return session, nil
}

func (svc *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	redisKey := fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
	sessionData, err := svc.RedisRepository.Get(ctx, redisKey)
	if err != nil {
		return nil, err
	}
	if sessionData == "" {
		return nil, exceptions.ErrInvalidSession(nil)
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	if session.IsExpired(svc.now()) {
		return nil, exceptions.ErrInvalidSession(nil)
	}
	return session, nil
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID))
}

func (svc *sessionService) IssueNonce(ctx context.Context, ttl time.Duration) (string, error) {
	nonce := utils.GenerateNonce()
	err := svc.RedisRepository.Set(ctx, fmt.Sprintf(constvars.RedisKeyNonceFormat, nonce), constvars.RedisValueNonceIssued, ttl)
	if err != nil {
		return "", err
	}
	return nonce, nil
}

// ConsumeNonce reports whether nonce was issued and still live. A nonce can
// be consumed once.
func (svc *sessionService) ConsumeNonce(ctx context.Context, nonce string) (bool, error) {
	value, err := svc.RedisRepository.GetAndDelete(ctx, fmt.Sprintf(constvars.RedisKeyNonceFormat, nonce))
	if err != nil {
		return false, err
	}
	return value != "", nil
}
