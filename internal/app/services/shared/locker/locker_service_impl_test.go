package locker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) GetAndDelete(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func TestLockService(t *testing.T) {
	ctx := context.Background()

	t.Run("Acquire and release", func(t *testing.T) {
		repo := new(MockRedisRepository)
		service := NewLockService(repo, zap.NewNop())

		repo.On("TrySetNX", ctx, "booking:submit:w:k", mock.AnythingOfType("string"), time.Minute).Return(true, nil)

		acquired, lockValue, err := service.TryLock(ctx, "booking:submit:w:k", time.Minute)
		assert.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, lockValue)

		repo.On("Get", ctx, "booking:submit:w:k").Return(`"`+lockValue+`"`, nil)
		repo.On("Delete", ctx, "booking:submit:w:k").Return(nil)

		assert.NoError(t, service.Unlock(ctx, "booking:submit:w:k", lockValue))
		repo.AssertExpectations(t)
	})

	t.Run("Already locked", func(t *testing.T) {
		repo := new(MockRedisRepository)
		service := NewLockService(repo, zap.NewNop())

		repo.On("TrySetNX", ctx, "key", mock.Anything, time.Minute).Return(false, nil)

		acquired, lockValue, err := service.TryLock(ctx, "key", time.Minute)
		assert.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, lockValue)
	})

	t.Run("Unlock refuses a foreign lock", func(t *testing.T) {
		repo := new(MockRedisRepository)
		service := NewLockService(repo, zap.NewNop())

		repo.On("Get", ctx, "key").Return(`"someone-else"`, nil)

		assert.Error(t, service.Unlock(ctx, "key", "mine"))
		repo.AssertNotCalled(t, "Delete", ctx, "key")
	})

	t.Run("Unlock of an expired lock is a no-op", func(t *testing.T) {
		repo := new(MockRedisRepository)
		service := NewLockService(repo, zap.NewNop())

		repo.On("Get", ctx, "key").Return("", nil)

		assert.NoError(t, service.Unlock(ctx, "key", "mine"))
		repo.AssertNotCalled(t, "Delete", ctx, "key")
	})
}
