package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielPopoola/giftcard-connector/internal/domain"
	"github.com/jackc/pgx/v5"
)

type CartRepository struct {
	db *DB
	tc *TransactionCoordinator
}

func NewCartRepository(db *DB) *CartRepository {
	return &CartRepository{db: db, tc: NewTransactionCoordinator(db)}
}

const selectCart = `
	SELECT c.id, c.version, c.customer_id, c.anonymous_id, c.total_cent_amount, c.currency,
	       COALESCE(array_agg(cp.payment_id ORDER BY cp.position) FILTER (WHERE cp.payment_id IS NOT NULL), '{}')
	FROM carts c
	LEFT JOIN cart_payments cp ON cp.cart_id = c.id
	WHERE c.id = $1
	GROUP BY c.id
`

func (r *CartRepository) GetCart(ctx context.Context, id string) (*domain.Cart, error) {
	return r.getCart(ctx, r.db.Pool, id)
}

func (r *CartRepository) getCart(ctx context.Context, q Executor, id string) (*domain.Cart, error) {
	var m CartModel
	err := q.QueryRow(ctx, selectCart, id).Scan(
		&m.ID, &m.Version, &m.CustomerID, &m.AnonymousID, &m.TotalCentAmount, &m.Currency, &m.PaymentIDs,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewCartNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to scan cart: %w", err)
	}
	return toDomainCart(m), nil
}

// CreateCart stores a cart snapshot. Carts are owned by the commerce platform;
// this is how they are synced into the connector.
func (r *CartRepository) CreateCart(ctx context.Context, cart *domain.Cart) error {
	query := `
		INSERT INTO carts (id, version, customer_id, anonymous_id, total_cent_amount, currency)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	version := cart.Version
	if version == 0 {
		version = 1
	}

	_, err := r.db.Pool.Exec(ctx, query,
		cart.ID,
		version,
		nullable(cart.CustomerID),
		nullable(cart.AnonymousID),
		cart.TotalPrice.CentAmount,
		cart.TotalPrice.CurrencyCode,
	)
	if err != nil {
		return fmt.Errorf("failed to create cart: %w", err)
	}
	return nil
}

// AddPayment appends paymentID to the cart if ref still names the current version.
func (r *CartRepository) AddPayment(ctx context.Context, ref domain.CartRef, paymentID string) (*domain.Cart, error) {
	var cart *domain.Cart

	err := r.tc.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE carts
			SET version = version + 1, updated_at = NOW()
			WHERE id = $1 AND version = $2
		`, ref.ID, ref.Version)
		if err != nil {
			return fmt.Errorf("failed to bump cart version: %w", err)
		}

		if tag.RowsAffected() == 0 {
			var exists bool
			if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM carts WHERE id = $1)`, ref.ID).Scan(&exists); err != nil {
				return fmt.Errorf("failed to check cart: %w", err)
			}
			if !exists {
				return domain.NewCartNotFoundError(ref.ID)
			}
			return domain.NewConcurrentModificationError("cart", ref.ID, ref.Version)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO cart_payments (cart_id, payment_id, position)
			VALUES ($1, $2, (SELECT COALESCE(MAX(position), 0) + 1 FROM cart_payments WHERE cart_id = $1))
		`, ref.ID, paymentID)
		if err != nil {
			if IsForeignKeyViolation(err) {
				return domain.NewPaymentNotFoundError(paymentID)
			}
			if IsUniqueViolation(err) {
				return domain.NewInvalidError(fmt.Sprintf("payment %s is already attached to cart %s", paymentID, ref.ID))
			}
			return fmt.Errorf("failed to attach payment to cart: %w", err)
		}

		cart, err = r.getCart(ctx, tx, ref.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return cart, nil
}
