package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocarne/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := config.LoadConfig()

	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.NotificationTTL)
	assert.Equal(t, "sql", cfg.SessionStore)
	assert.False(t, cfg.BreakerEnabled)
	assert.Equal(t, "admin@gocarne.local", cfg.FakeAdminEmail)
	assert.Equal(t, 20, cfg.FakeLoginLimit)
	assert.False(t, cfg.FakeLimitRedis)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.loja.com/")
	t.Setenv("NOTIFICATION_TTL_SEC", "3")
	t.Setenv("SESSION_STORE", "memory")
	t.Setenv("BREAKER_ENABLED", "true")
	t.Setenv("HTTP_TIMEOUT_SEC", "abc")

	cfg := config.LoadConfig()

	assert.Equal(t, "https://api.loja.com", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.NotificationTTL)
	assert.Equal(t, "memory", cfg.SessionStore)
	assert.True(t, cfg.BreakerEnabled)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
}

func TestNewCircuitBreaker(t *testing.T) {
	cfg := config.LoadConfig()
	assert.Nil(t, config.NewCircuitBreaker(cfg))

	cfg.BreakerEnabled = true
	cb := config.NewCircuitBreaker(cfg)
	require.NotNil(t, cb)
	assert.Equal(t, "API-Carnes", cb.Name())
}
