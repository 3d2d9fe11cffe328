package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/DanielPopoola/giftcard-connector/internal/application/services"
	"github.com/DanielPopoola/giftcard-connector/internal/domain"
	"github.com/DanielPopoola/giftcard-connector/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu      sync.Mutex
	results map[string]bool
}

func (o *recordingObserver) ObserveHealth(name string, up bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.results[name] = up
}

func upCheck(name string) services.HealthCheck {
	return services.HealthCheck{
		Name: name,
		Check: func(context.Context) (map[string]any, error) {
			return map[string]any{"ok": true}, nil
		},
	}
}

func downCheck(name string) services.HealthCheck {
	return services.HealthCheck{
		Name: name,
		Check: func(context.Context) (map[string]any, error) {
			return nil, errors.New(name + " unreachable")
		},
	}
}

func newStatusService(checks []services.HealthCheck, observer services.HealthObserver) *services.StatusService {
	return services.NewStatusService(
		checks,
		services.StatusConfig{
			Timeout:  200 * time.Millisecond,
			Version:  "1.2.3",
			Metadata: map[string]string{"name": "giftcard-connector"},
		},
		observer,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func TestStatus_Aggregation(t *testing.T) {
	tests := []struct {
		name   string
		checks []services.HealthCheck
		want   domain.AggregateStatus
	}{
		{"all up", []services.HealthCheck{upCheck("a"), upCheck("b")}, domain.StatusAvailable},
		{"one down", []services.HealthCheck{upCheck("a"), downCheck("b")}, domain.StatusPartiallyAvailable},
		{"all down", []services.HealthCheck{downCheck("a"), downCheck("b")}, domain.StatusUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := newStatusService(tt.checks, nil).Status(context.Background())

			assert.Equal(t, tt.want, resp.Status)
			assert.Equal(t, "1.2.3", resp.Version)
			assert.Equal(t, "giftcard-connector", resp.Metadata["name"])
			require.Len(t, resp.Checks, len(tt.checks))
			for i, check := range tt.checks {
				assert.Equal(t, check.Name, resp.Checks[i].Name)
			}
		})
	}
}

func TestStatus_SlowCheckTimesOut(t *testing.T) {
	slow := services.HealthCheck{
		Name: "slow",
		Check: func(ctx context.Context) (map[string]any, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}

	start := time.Now()
	resp := newStatusService([]services.HealthCheck{upCheck("fast"), slow}, nil).Status(context.Background())

	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, domain.StatusPartiallyAvailable, resp.Status)
	assert.Equal(t, domain.HealthDown, resp.Checks[1].Status)
	assert.Contains(t, resp.Checks[1].Message, "deadline exceeded")
}

func TestStatus_PanickingCheckIsDown(t *testing.T) {
	broken := services.HealthCheck{
		Name: "broken",
		Check: func(context.Context) (map[string]any, error) {
			panic("boom")
		},
	}

	resp := newStatusService([]services.HealthCheck{broken}, nil).Status(context.Background())
	assert.Equal(t, domain.StatusUnavailable, resp.Status)
	assert.Equal(t, domain.HealthDown, resp.Checks[0].Status)
}

func TestStatus_ReportsToObserver(t *testing.T) {
	observer := &recordingObserver{results: map[string]bool{}}

	newStatusService([]services.HealthCheck{upCheck("db"), downCheck("redis")}, observer).Status(context.Background())

	assert.Equal(t, map[string]bool{"db": true, "redis": false}, observer.results)
}

func TestProviderHealthCheck(t *testing.T) {
	t.Run("up", func(t *testing.T) {
		provider := mocks.NewMockGiftCardProvider(t)
		provider.EXPECT().HealthCheck(mock.Anything).Return(&domain.ProviderHealthResponse{Status: "OK"}, nil)

		resp := newStatusService([]services.HealthCheck{services.ProviderHealthCheck(provider)}, nil).Status(context.Background())

		require.Len(t, resp.Checks, 1)
		assert.Equal(t, domain.HealthUp, resp.Checks[0].Status)
		assert.Equal(t, &domain.ProviderHealthResponse{Status: "OK"}, resp.Checks[0].Details["healthcheckResult"])
	})

	t.Run("provider error is reported as down", func(t *testing.T) {
		provider := mocks.NewMockGiftCardProvider(t)
		provider.EXPECT().HealthCheck(mock.Anything).Return(nil, errors.New("dial tcp: connection refused"))

		resp := newStatusService([]services.HealthCheck{services.ProviderHealthCheck(provider)}, nil).Status(context.Background())

		assert.Equal(t, domain.StatusUnavailable, resp.Status)
		assert.Equal(t, domain.HealthDown, resp.Checks[0].Status)
		assert.Equal(t, "Not able to communicate with giftcard service provider API", resp.Checks[0].Message)
		assert.Nil(t, resp.Checks[0].Details)
	})
}
