package giftcard

import (
	"fmt"
	"log/slog"

	"github.com/DanielPopoola/giftcard-connector/internal/application"
	"github.com/DanielPopoola/giftcard-connector/internal/config"
	"github.com/DanielPopoola/giftcard-connector/internal/infrastructure/metrics"
)

// NewProvider builds the configured client wrapped in the circuit breaker and metrics.
func NewProvider(cfg config.ProviderConfig, breaker config.BreakerConfig, m *metrics.Metrics, logger *slog.Logger) (application.GiftCardProvider, error) {
	var client application.GiftCardProvider
	switch cfg.Mode {
	case config.ProviderModeMock:
		client = NewMockClient(cfg.Currency)
	case config.ProviderModeHTTP:
		client = NewHTTPClient(cfg)
	default:
		return nil, fmt.Errorf("unknown provider mode %q", cfg.Mode)
	}

	logger.Info("gift card provider configured", "mode", cfg.Mode, "currency", cfg.Currency)

	return NewInstrumentedProvider(NewBreakerProvider(client, breaker, m, logger), m), nil
}
