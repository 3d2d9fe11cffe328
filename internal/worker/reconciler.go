package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanielPopoola/giftcard-connector/internal/domain"
)

// OrphanFinder lists payments that were created but never attached to a cart
// nor sent to the provider.
type OrphanFinder interface {
	FindOrphanedPayments(ctx context.Context, olderThan time.Duration, limit int) ([]*domain.Payment, error)
}

type OrphanGauge interface {
	SetOrphanedPayments(n int)
}

// Reconciler surfaces orphaned payments for manual reconciliation. It never
// deletes or mutates a payment.
type Reconciler struct {
	finder    OrphanFinder
	gauge     OrphanGauge
	interval  time.Duration
	orphanAge time.Duration
	batchSize int
	logger    *slog.Logger
}

func NewReconciler(
	finder OrphanFinder,
	gauge OrphanGauge,
	interval time.Duration,
	orphanAge time.Duration,
	batchSize int,
	logger *slog.Logger,
) *Reconciler {
	return &Reconciler{
		finder:    finder,
		gauge:     gauge,
		interval:  interval,
		orphanAge: orphanAge,
		batchSize: batchSize,
		logger:    logger,
	}
}

func (r *Reconciler) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("starting orphaned payment reconciler",
		"interval", r.interval,
		"orphan_age", r.orphanAge,
		"batch_size", r.batchSize,
	)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("stopping orphaned payment reconciler")
			return
		case <-ticker.C:
			r.RunOnce(ctx)
		}
	}
}

// RunOnce executes a single reconciliation cycle and returns the number of
// orphaned payments found, or -1 when the lookup failed.
func (r *Reconciler) RunOnce(ctx context.Context) int {
	orphans, err := r.finder.FindOrphanedPayments(ctx, r.orphanAge, r.batchSize)
	if err != nil {
		r.logger.Error("failed to fetch orphaned payments", "error", err)
		return -1
	}

	r.gauge.SetOrphanedPayments(len(orphans))

	if len(orphans) == 0 {
		return 0
	}

	r.logger.Warn("orphaned payments require manual reconciliation", "count", len(orphans))

	for _, p := range orphans {
		r.logger.Warn("orphaned payment",
			"payment_id", p.ID,
			"amount", p.AmountPlanned.CentAmount,
			"currency", p.AmountPlanned.CurrencyCode,
			"customer_id", p.CustomerID,
			"anonymous_id", p.AnonymousID,
			"created_at", p.CreatedAt,
		)
	}

	return len(orphans)
}
