package config

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("CONNECTOR_DATABASE__HOST", "localhost")
	t.Setenv("CONNECTOR_DATABASE__USER", "connector")
	t.Setenv("CONNECTOR_DATABASE__PASSWORD", "secret")
	t.Setenv("CONNECTOR_DATABASE__NAME", "giftcards")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, ProviderModeMock, cfg.Provider.Mode)
	assert.Equal(t, "USD", cfg.Provider.Currency)
	assert.Equal(t, "mock-giftcard-provider", cfg.Provider.PaymentInterface)
	assert.Equal(t, uint32(5), cfg.Breaker.ConsecutiveFailures)
	assert.Equal(t, 5*time.Second, cfg.Health.Timeout)
	assert.Equal(t, 15*time.Minute, cfg.Worker.OrphanAge)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.False(t, cfg.Telemetry.Enabled)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CONNECTOR_PROVIDER__CURRENCY", "EUR")
	t.Setenv("CONNECTOR_PROVIDER__MODE", "http")
	t.Setenv("CONNECTOR_PROVIDER__BASE_URL", "https://giftcards.example.com")
	t.Setenv("CONNECTOR_PROVIDER__TIMEOUT", "750ms")
	t.Setenv("CONNECTOR_DATABASE__PORT", "6543")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "EUR", cfg.Provider.Currency)
	assert.Equal(t, ProviderModeHTTP, cfg.Provider.Mode)
	assert.Equal(t, 750*time.Millisecond, cfg.Provider.Timeout)
	assert.Equal(t, 6543, cfg.Database.Port)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Run("missing database settings", func(t *testing.T) {
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("http mode without base url", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("CONNECTOR_PROVIDER__MODE", "http")

		_, err := LoadConfig()
		assert.ErrorContains(t, err, "provider.base_url")
	})

	t.Run("bad currency", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("CONNECTOR_PROVIDER__CURRENCY", "DOLLAR")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("unknown provider mode", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("CONNECTOR_PROVIDER__MODE", "grpc")

		_, err := LoadConfig()
		assert.Error(t, err)
	})
}

func TestLoggerLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, (&LoggerConfig{Level: "DEBUG"}).slogLevel())
	assert.Equal(t, slog.LevelWarn, (&LoggerConfig{Level: "warn"}).slogLevel())
	assert.Equal(t, slog.LevelInfo, (&LoggerConfig{}).slogLevel())
	assert.NotNil(t, (&LoggerConfig{Format: "text"}).NewLogger())
}

func TestPgxConfig(t *testing.T) {
	db := DatabaseConfig{
		Host:            "db",
		Port:            5432,
		User:            "connector",
		Password:        "p@ss",
		Name:            "giftcards",
		SSLMode:         "disable",
		MaxOpenConns:    8,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: time.Minute,
	}

	cfg, err := db.PgxConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(8), cfg.MaxConns)
	assert.Equal(t, "p@ss", cfg.ConnConfig.Password)
	assert.Equal(t, "db", cfg.ConnConfig.Host)
}
