package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanielPopoola/giftcard-connector/internal/application"
	"github.com/DanielPopoola/giftcard-connector/internal/domain"
	"golang.org/x/sync/errgroup"
)

const providerUnavailableMessage = "Not able to communicate with giftcard service provider API"

// HealthCheck probes one dependency. Details are reported as-is when the check passes.
type HealthCheck struct {
	Name string
	// FailureMessage replaces the error text in the reported result when set.
	FailureMessage string
	Check          func(ctx context.Context) (map[string]any, error)
}

// HealthObserver receives the result of every check, e.g. to export it as a metric.
type HealthObserver interface {
	ObserveHealth(name string, up bool)
}

type StatusConfig struct {
	Timeout  time.Duration
	Version  string
	Metadata map[string]string
}

type StatusService struct {
	checks   []HealthCheck
	cfg      StatusConfig
	observer HealthObserver
	logger   *slog.Logger
	now      func() time.Time
}

func NewStatusService(checks []HealthCheck, cfg StatusConfig, observer HealthObserver, logger *slog.Logger) *StatusService {
	return &StatusService{
		checks:   checks,
		cfg:      cfg,
		observer: observer,
		logger:   logger,
		now:      time.Now,
	}
}

// Status runs every check concurrently. A failing or slow check is reported as
// DOWN and never fails the call itself.
func (s *StatusService) Status(ctx context.Context) *domain.StatusResponse {
	results := make([]domain.CheckResult, len(s.checks))

	var g errgroup.Group
	for i, check := range s.checks {
		g.Go(func() error {
			results[i] = s.run(ctx, check)
			return nil
		})
	}
	_ = g.Wait()

	return &domain.StatusResponse{
		Status:    domain.AggregateChecks(results),
		Timestamp: s.now().UTC(),
		Version:   s.cfg.Version,
		Metadata:  s.cfg.Metadata,
		Checks:    results,
	}
}

func (s *StatusService) run(ctx context.Context, check HealthCheck) (result domain.CheckResult) {
	result.Name = check.Name

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("health check panicked", "check", check.Name, "panic", r)
			result = domain.CheckResult{Name: check.Name, Status: domain.HealthDown, Message: "health check failed"}
		}
		if s.observer != nil {
			s.observer.ObserveHealth(check.Name, result.Status == domain.HealthUp)
		}
	}()

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	details, err := check.Check(ctx)
	if err != nil {
		s.logger.Warn("health check failed", "check", check.Name, "error", err)
		result.Status = domain.HealthDown
		result.Message = err.Error()
		if check.FailureMessage != "" {
			result.Message = check.FailureMessage
		}
		return result
	}

	result.Status = domain.HealthUp
	result.Details = details
	return result
}

// ProviderHealthCheck reports the gift card provider's own health endpoint.
func ProviderHealthCheck(provider application.GiftCardProvider) HealthCheck {
	return HealthCheck{
		Name:           "giftcard provider API call",
		FailureMessage: providerUnavailableMessage,
		Check: func(ctx context.Context) (map[string]any, error) {
			resp, err := provider.HealthCheck(ctx)
			if err != nil {
				return nil, err
			}
			if resp == nil || resp.Status != domain.ProviderHealthOK {
				return nil, fmt.Errorf("provider reported unhealthy status: %+v", resp)
			}
			return map[string]any{"healthcheckResult": resp}, nil
		},
	}
}
