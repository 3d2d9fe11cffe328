package giftcard

import (
	"context"
	"errors"
	"log/slog"

	"github.com/DanielPopoola/giftcard-connector/internal/application"
	"github.com/DanielPopoola/giftcard-connector/internal/config"
	"github.com/DanielPopoola/giftcard-connector/internal/domain"
	"github.com/sony/gobreaker/v2"
)

// BreakerStateObserver is notified on every circuit breaker transition.
type BreakerStateObserver interface {
	SetBreakerState(name string, state float64)
}

// BreakerProvider fails fast once the provider keeps failing at the transport level.
type BreakerProvider struct {
	inner application.GiftCardProvider
	cb    *gobreaker.CircuitBreaker[any]
}

func NewBreakerProvider(inner application.GiftCardProvider, cfg config.BreakerConfig, observer BreakerStateObserver, logger *slog.Logger) *BreakerProvider {
	settings := gobreaker.Settings{
		Name:        "giftcard-provider",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.ConsecutiveFailures
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			// The provider answered; it just rejected the request.
			if providerErr, ok := IsProviderError(err); ok {
				return !providerErr.IsServerSide()
			}
			return errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
			if observer != nil {
				observer.SetBreakerState(name, float64(to))
			}
		},
	}

	return &BreakerProvider{
		inner: inner,
		cb:    gobreaker.NewCircuitBreaker[any](settings),
	}
}

func (b *BreakerProvider) State() gobreaker.State {
	return b.cb.State()
}

func (b *BreakerProvider) Balance(ctx context.Context, code string) (*domain.ProviderBalanceResponse, error) {
	return execute(b, func() (*domain.ProviderBalanceResponse, error) {
		return b.inner.Balance(ctx, code)
	})
}

func (b *BreakerProvider) Redeem(ctx context.Context, req domain.ProviderRedeemRequest) (*domain.ProviderRedeemResponse, error) {
	return execute(b, func() (*domain.ProviderRedeemResponse, error) {
		return b.inner.Redeem(ctx, req)
	})
}

func (b *BreakerProvider) Rollback(ctx context.Context, redemptionReference string) (*domain.ProviderRollbackResponse, error) {
	return execute(b, func() (*domain.ProviderRollbackResponse, error) {
		return b.inner.Rollback(ctx, redemptionReference)
	})
}

func (b *BreakerProvider) HealthCheck(ctx context.Context) (*domain.ProviderHealthResponse, error) {
	return execute(b, func() (*domain.ProviderHealthResponse, error) {
		return b.inner.HealthCheck(ctx)
	})
}

func execute[T any](b *BreakerProvider, operation func() (*T, error)) (*T, error) {
	res, err := b.cb.Execute(func() (any, error) {
		return operation()
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, application.NewProviderUnavailableError(err)
		}
		return nil, err
	}

	out, _ := res.(*T)
	return out, nil
}
