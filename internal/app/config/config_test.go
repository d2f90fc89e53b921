package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInternalConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg := NewInternalConfig()

		assert.Equal(t, "/api", cfg.App.EndpointPrefix)
		assert.Equal(t, "memory", cfg.App.StorageDriver)
		assert.Equal(t, []string{"*"}, cfg.App.AllowedOrigins)
		assert.Equal(t, 10, cfg.Session.NonceTTLInMinute)
	})

	t.Run("Environment overrides", func(t *testing.T) {
		t.Setenv("APP_ENDPOINT_PREFIX", "/v2")
		t.Setenv("STORAGE_DRIVER", "mongo")
		t.Setenv("APP_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
		t.Setenv("APP_NONCE_TTL_IN_MINUTE", "not-a-number")

		cfg := NewInternalConfig()

		assert.Equal(t, "/v2", cfg.App.EndpointPrefix)
		assert.Equal(t, "mongo", cfg.App.StorageDriver)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.App.AllowedOrigins)
		assert.Equal(t, 10, cfg.Session.NonceTTLInMinute, "invalid numbers fall back to the default")
	})
}

func TestNewDriverConfig(t *testing.T) {
	t.Setenv("MINIO_ENABLED", "true")

	cfg := NewDriverConfig()

	assert.True(t, cfg.Minio.Enabled)
	assert.False(t, cfg.RabbitMQ.Enabled)
	assert.Equal(t, "6379", cfg.Redis.Port)
}
