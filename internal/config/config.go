package config

import (
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const envPrefix = "CONNECTOR_"

const (
	ProviderModeMock = "mock"
	ProviderModeHTTP = "http"
)

type Config struct {
	Primary   Primary         `koanf:"primary"`
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Redis     RedisConfig     `koanf:"redis"`
	Provider  ProviderConfig  `koanf:"provider"`
	Breaker   BreakerConfig   `koanf:"breaker"`
	Health    HealthConfig    `koanf:"health"`
	Worker    WorkerConfig    `koanf:"worker"`
	Logger    LoggerConfig    `koanf:"logger"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

type Primary struct {
	Env         string `koanf:"env" validate:"required"`
	ServiceName string `koanf:"service_name" validate:"required"`
	Version     string `koanf:"version" validate:"required"`
}

type ServerConfig struct {
	Port           string        `koanf:"port" validate:"required"`
	ReadTimeout    time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout   time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout    time.Duration `koanf:"idle_timeout" validate:"required"`
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"required"`
}

type DatabaseConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password" validate:"required"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time" validate:"required"`
}

type RedisConfig struct {
	Addr      string `koanf:"addr" validate:"required"`
	Password  string `koanf:"password"`
	DB        int    `koanf:"db" validate:"min=0"`
	KeyPrefix string `koanf:"key_prefix" validate:"required"`
}

type ProviderConfig struct {
	Mode             string        `koanf:"mode" validate:"required,oneof=mock http"`
	Currency         string        `koanf:"currency" validate:"required,len=3"`
	PaymentInterface string        `koanf:"payment_interface" validate:"required"`
	BaseURL          string        `koanf:"base_url" validate:"omitempty,url"`
	APIKey           string        `koanf:"api_key"`
	Timeout          time.Duration `koanf:"timeout" validate:"required"`
}

type BreakerConfig struct {
	MaxRequests         uint32        `koanf:"max_requests" validate:"required"`
	Interval            time.Duration `koanf:"interval"`
	Timeout             time.Duration `koanf:"timeout" validate:"required"`
	ConsecutiveFailures uint32        `koanf:"consecutive_failures" validate:"required"`
}

type HealthConfig struct {
	Timeout time.Duration `koanf:"timeout" validate:"required"`
}

type WorkerConfig struct {
	Interval  time.Duration `koanf:"interval" validate:"required"`
	OrphanAge time.Duration `koanf:"orphan_age" validate:"required"`
	BatchSize int           `koanf:"batch_size" validate:"required"`
}

type LoggerConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `koanf:"format" validate:"omitempty,oneof=json text"`
}

type TelemetryConfig struct {
	Enabled      bool   `koanf:"enabled"`
	OTLPEndpoint string `koanf:"otlp_endpoint"`
	Insecure     bool   `koanf:"insecure"`
}

var defaults = map[string]interface{}{
	"primary.env":                  "development",
	"primary.service_name":         "giftcard-connector",
	"primary.version":              "0.1.0",
	"server.port":                  "8080",
	"server.read_timeout":          "10s",
	"server.write_timeout":         "15s",
	"server.idle_timeout":          "60s",
	"server.request_timeout":       "10s",
	"database.port":                5432,
	"database.ssl_mode":            "disable",
	"database.max_open_conns":      10,
	"database.max_idle_conns":      2,
	"database.conn_max_lifetime":   "30m",
	"database.conn_max_idle_time":  "5m",
	"redis.addr":                   "localhost:6379",
	"redis.key_prefix":             "session:",
	"provider.mode":                ProviderModeMock,
	"provider.currency":            "USD",
	"provider.payment_interface":   "mock-giftcard-provider",
	"provider.timeout":             "5s",
	"breaker.max_requests":         1,
	"breaker.interval":             "60s",
	"breaker.timeout":              "30s",
	"breaker.consecutive_failures": 5,
	"health.timeout":               "5s",
	"worker.interval":              "5m",
	"worker.orphan_age":            "15m",
	"worker.batch_size":            100,
	"logger.level":                 "info",
	"logger.format":                "json",
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		logger.Error("failed to load default config", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	if err := mainConfig.Validate(); err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}

// Validate checks struct tags and the rules tags cannot express.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}

	if c.Provider.Mode == ProviderModeHTTP && c.Provider.BaseURL == "" {
		return errors.New("provider.base_url is required when provider.mode is http")
	}
	if c.Telemetry.Enabled && c.Telemetry.OTLPEndpoint == "" {
		return errors.New("telemetry.otlp_endpoint is required when telemetry is enabled")
	}
	return nil
}
