package giftcard

import (
	"context"
	"time"

	"github.com/DanielPopoola/giftcard-connector/internal/application"
	"github.com/DanielPopoola/giftcard-connector/internal/domain"
)

type CallRecorder interface {
	RecordProviderCall(operation string, err error, duration time.Duration)
}

// InstrumentedProvider records count and latency of every provider call.
type InstrumentedProvider struct {
	inner    application.GiftCardProvider
	recorder CallRecorder
}

func NewInstrumentedProvider(inner application.GiftCardProvider, recorder CallRecorder) *InstrumentedProvider {
	return &InstrumentedProvider{inner: inner, recorder: recorder}
}

func (p *InstrumentedProvider) Balance(ctx context.Context, code string) (*domain.ProviderBalanceResponse, error) {
	start := time.Now()
	resp, err := p.inner.Balance(ctx, code)
	p.recorder.RecordProviderCall("balance", err, time.Since(start))
	return resp, err
}

func (p *InstrumentedProvider) Redeem(ctx context.Context, req domain.ProviderRedeemRequest) (*domain.ProviderRedeemResponse, error) {
	start := time.Now()
	resp, err := p.inner.Redeem(ctx, req)
	p.recorder.RecordProviderCall("redeem", err, time.Since(start))
	return resp, err
}

func (p *InstrumentedProvider) Rollback(ctx context.Context, redemptionReference string) (*domain.ProviderRollbackResponse, error) {
	start := time.Now()
	resp, err := p.inner.Rollback(ctx, redemptionReference)
	p.recorder.RecordProviderCall("rollback", err, time.Since(start))
	return resp, err
}

func (p *InstrumentedProvider) HealthCheck(ctx context.Context) (*domain.ProviderHealthResponse, error) {
	start := time.Now()
	resp, err := p.inner.HealthCheck(ctx)
	p.recorder.RecordProviderCall("healthcheck", err, time.Since(start))
	return resp, err
}
