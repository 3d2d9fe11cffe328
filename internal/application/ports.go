package application

import (
	"context"

	"github.com/DanielPopoola/giftcard-connector/internal/domain"
)

// GiftCardProvider is the port for the external gift card issuer. Classification
// results (expired, not found, ...) are data, not errors; an error means the
// provider could not be reached or answered garbage.
type GiftCardProvider interface {
	Balance(ctx context.Context, code string) (*domain.ProviderBalanceResponse, error)
	Redeem(ctx context.Context, req domain.ProviderRedeemRequest) (*domain.ProviderRedeemResponse, error)
	Rollback(ctx context.Context, redemptionReference string) (*domain.ProviderRollbackResponse, error)
	HealthCheck(ctx context.Context) (*domain.ProviderHealthResponse, error)
}

// CartStore is the port for the commerce platform's carts.
type CartStore interface {
	GetCart(ctx context.Context, id string) (*domain.Cart, error)
	// AddPayment appends a payment reference to the cart version addressed by ref.
	AddPayment(ctx context.Context, ref domain.CartRef, paymentID string) (*domain.Cart, error)
}

// PaymentStore is the port for payment records and their transaction history.
type PaymentStore interface {
	CreatePayment(ctx context.Context, draft domain.PaymentDraft) (*domain.Payment, error)
	GetPayment(ctx context.Context, id string) (*domain.Payment, error)
	UpdatePayment(ctx context.Context, update domain.PaymentUpdate) (*domain.Payment, error)
}

// SessionStore resolves a checkout session credential.
type SessionStore interface {
	GetSession(ctx context.Context, sessionID string) (*Session, error)
}
