package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DanielPopoola/giftcard-connector/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PaymentRepository struct {
	db *DB
	tc *TransactionCoordinator
}

func NewPaymentRepository(db *DB) *PaymentRepository {
	return &PaymentRepository{db: db, tc: NewTransactionCoordinator(db)}
}

const paymentColumns = `
	id, version, amount_cent_amount, currency, payment_interface, method,
	interface_id, customer_id, anonymous_id, created_at, updated_at
`

func (r *PaymentRepository) CreatePayment(ctx context.Context, draft domain.PaymentDraft) (*domain.Payment, error) {
	query := `
		INSERT INTO payments (
			id, version, amount_cent_amount, currency, payment_interface, method,
			customer_id, anonymous_id, created_at, updated_at
		) VALUES ($1, 1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING ` + paymentColumns

	row := r.db.Pool.QueryRow(ctx, query,
		uuid.NewString(),
		draft.AmountPlanned.CentAmount,
		draft.AmountPlanned.CurrencyCode,
		draft.PaymentMethodInfo.PaymentInterface,
		draft.PaymentMethodInfo.Method,
		nullable(draft.CustomerID),
		nullable(draft.AnonymousID),
		time.Now().UTC(),
	)

	m, err := scanPayment(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	return toDomainPayment(m, nil), nil
}

// GetPayment returns the payment with its full transaction history.
func (r *PaymentRepository) GetPayment(ctx context.Context, id string) (*domain.Payment, error) {
	return r.getPayment(ctx, r.db.Pool, id, false)
}

// UpdatePayment locks the payment row, sets the interface id when given and
// appends the transaction. Existing transactions are never modified.
func (r *PaymentRepository) UpdatePayment(ctx context.Context, update domain.PaymentUpdate) (*domain.Payment, error) {
	var payment *domain.Payment

	err := r.tc.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := r.getPayment(ctx, tx, update.PaymentID, true); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, `
			UPDATE payments
			SET version = version + 1,
			    interface_id = COALESCE($2, interface_id),
			    updated_at = NOW()
			WHERE id = $1
		`, update.PaymentID, nullable(update.InterfaceID))
		if err != nil {
			return fmt.Errorf("failed to update payment: %w", err)
		}

		if t := update.Transaction; t != nil {
			_, err = tx.Exec(ctx, `
				INSERT INTO payment_transactions (
					id, payment_id, seq, type, cent_amount, currency, interaction_id, state
				) VALUES (
					$1, $2,
					(SELECT COALESCE(MAX(seq), 0) + 1 FROM payment_transactions WHERE payment_id = $2),
					$3, $4, $5, $6, $7
				)
			`,
				uuid.NewString(),
				update.PaymentID,
				string(t.Type),
				t.Amount.CentAmount,
				t.Amount.CurrencyCode,
				nullable(t.InteractionID),
				string(t.State),
			)
			if err != nil {
				return fmt.Errorf("failed to append transaction: %w", err)
			}
		}

		payment, err = r.getPayment(ctx, tx, update.PaymentID, false)
		return err
	})
	if err != nil {
		return nil, err
	}

	return payment, nil
}

// FindOrphanedPayments lists payments older than olderThan that were never
// attached to a cart and never reached the provider.
func (r *PaymentRepository) FindOrphanedPayments(ctx context.Context, olderThan time.Duration, limit int) ([]*domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments p
		WHERE p.created_at < $1
		  AND NOT EXISTS (SELECT 1 FROM cart_payments cp WHERE cp.payment_id = p.id)
		  AND NOT EXISTS (SELECT 1 FROM payment_transactions t WHERE t.payment_id = p.id)
		ORDER BY p.created_at ASC
		LIMIT $2
	`

	rows, err := r.db.Pool.Query(ctx, query, time.Now().UTC().Add(-olderThan), limit)
	if err != nil {
		return nil, fmt.Errorf("query orphaned payments: %w", err)
	}

	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Payment, error) {
		m, err := scanPayment(row)
		return toDomainPayment(m, nil), err
	})
	if err != nil {
		return nil, fmt.Errorf("scan orphaned payments: %w", err)
	}

	return results, nil
}

func (r *PaymentRepository) getPayment(ctx context.Context, q Executor, id string, forUpdate bool) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	m, err := scanPayment(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewPaymentNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to scan payment: %w", err)
	}

	rows, err := q.Query(ctx, `
		SELECT id, payment_id, seq, type, cent_amount, currency, interaction_id, state, created_at
		FROM payment_transactions
		WHERE payment_id = $1
		ORDER BY seq ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("query payment transactions: %w", err)
	}

	txs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (TransactionModel, error) {
		var t TransactionModel
		err := row.Scan(&t.ID, &t.PaymentID, &t.Seq, &t.Type, &t.CentAmount, &t.Currency, &t.InteractionID, &t.State, &t.CreatedAt)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan payment transactions: %w", err)
	}

	return toDomainPayment(m, txs), nil
}

// scanPayment reads one payments row in paymentColumns order.
func scanPayment(row pgx.Row) (PaymentModel, error) {
	var m PaymentModel
	err := row.Scan(
		&m.ID, &m.Version, &m.AmountCentAmount, &m.Currency, &m.PaymentInterface, &m.Method,
		&m.InterfaceID, &m.CustomerID, &m.AnonymousID, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}
