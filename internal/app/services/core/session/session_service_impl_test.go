package session

import (
	"context"
	"sync"
	"testing"
	"therapyconnect-service/internal/app/models"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryRedis struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{data: map[string]string{}}
}

func (r *memoryRedis) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}

func (r *memoryRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = string(encoded)
	return nil
}

func (r *memoryRedis) Get(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data[key], nil
}

func (r *memoryRedis) GetAndDelete(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	value := r.data[key]
	delete(r.data, key)
	return value, nil
}

func (r *memoryRedis) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.data[key]; exists {
		return false, nil
	}
	encoded, _ := json.Marshal(value)
	r.data[key] = string(encoded)
	return true, nil
}

func TestSessionService_NonceIsConsumedOnce(t *testing.T) {
	ctx := context.Background()
	svc := NewSessionService(newMemoryRedis(), zap.NewNop())

	nonce, err := svc.IssueNonce(ctx, time.Minute)
	require.NoError(t, err)
	assert.Len(t, nonce, 32)

	valid, err := svc.ConsumeNonce(ctx, nonce)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = svc.ConsumeNonce(ctx, nonce)
	require.NoError(t, err)
	assert.False(t, valid)

	valid, err = svc.ConsumeNonce(ctx, "neverissued")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestSessionService_SessionLifecycle(t *testing.T) {
	ctx := context.Background()
	redis := newMemoryRedis()
	svc := NewSessionService(redis, zap.NewNop())
	user := models.AuthenticatedUser{WalletAddress: "0xabc0000000000000000000000000000000000def"}

	created, err := svc.CreateSession(ctx, user, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, created.SessionID)
	assert.Contains(t, redis.data, "session:"+created.SessionID)

	loaded, err := svc.GetSession(ctx, created.SessionID)
	require.NoError(t, err)
	assert.Equal(t, user.WalletAddress, loaded.User.WalletAddress)

	require.NoError(t, svc.DeleteSession(ctx, created.SessionID))
	_, err = svc.GetSession(ctx, created.SessionID)
	assert.Error(t, err)
}

func TestSessionService_ExpiredSessionIsRejected(t *testing.T) {
	ctx := context.Background()
	impl := &sessionService{RedisRepository: newMemoryRedis(), Log: zap.NewNop(), now: time.Now}

	created, err := impl.CreateSession(ctx, models.AuthenticatedUser{WalletAddress: "0x1"}, time.Minute)
	require.NoError(t, err)

	impl.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = impl.GetSession(ctx, created.SessionID)
	assert.Error(t, err)
}
