// Package domain holds the gift card connector's entities and value types.
package domain

import (
	"time"
)

const (
	PaymentMethodGiftCard   = "giftcard"
	DefaultPaymentInterface = "mock-giftcard-provider"
)

// TransactionType is the kind of money movement recorded on a payment
type TransactionType string

const (
	TransactionTypeCharge              TransactionType = "Charge"
	TransactionTypeRefund              TransactionType = "Refund"
	TransactionTypeCancelAuthorization TransactionType = "CancelAuthorization"
)

// TransactionState is the outcome of a transaction
type TransactionState string

const (
	TransactionStateInitial TransactionState = "Initial"
	TransactionStatePending TransactionState = "Pending"
	TransactionStateSuccess TransactionState = "Success"
	TransactionStateFailure TransactionState = "Failure"
)

type PaymentMethodInfo struct {
	PaymentInterface string `json:"paymentInterface"`
	Method           string `json:"method"`
}

// Transaction is one entry of a payment's append-only history.
type Transaction struct {
	ID            string           `json:"id"`
	Type          TransactionType  `json:"type"`
	Amount        Money            `json:"amount"`
	InteractionID string           `json:"interactionId,omitempty"`
	State         TransactionState `json:"state"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// Payment records a single redemption attempt and everything that happened to it afterwards.
type Payment struct {
	ID                string            `json:"id"`
	Version           int64             `json:"version"`
	AmountPlanned     Money             `json:"amountPlanned"`
	PaymentMethodInfo PaymentMethodInfo `json:"paymentMethodInfo"`
	InterfaceID       string            `json:"interfaceId,omitempty"`
	CustomerID        string            `json:"customerId,omitempty"`
	AnonymousID       string            `json:"anonymousId,omitempty"`
	Transactions      []Transaction     `json:"transactions"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

// PaymentDraft carries the fields needed to create a payment.
type PaymentDraft struct {
	AmountPlanned     Money
	PaymentMethodInfo PaymentMethodInfo
	CustomerID        string
	AnonymousID       string
}

// NewGiftCardPaymentDraft builds the draft for a redemption, copying the
// customer linkage from the cart. A registered customer wins over an anonymous id.
func NewGiftCardPaymentDraft(cart *Cart, amount Money, paymentInterface string) PaymentDraft {
	if paymentInterface == "" {
		paymentInterface = DefaultPaymentInterface
	}

	draft := PaymentDraft{
		AmountPlanned: amount,
		PaymentMethodInfo: PaymentMethodInfo{
			PaymentInterface: paymentInterface,
			Method:           PaymentMethodGiftCard,
		},
	}
	if cart.CustomerID != "" {
		draft.CustomerID = cart.CustomerID
	} else {
		draft.AnonymousID = cart.AnonymousID
	}
	return draft
}

type TransactionDraft struct {
	Type          TransactionType
	Amount        Money
	InteractionID string
	State         TransactionState
}

// PaymentUpdate sets the provider reference (when non-empty) and appends one transaction.
type PaymentUpdate struct {
	PaymentID   string
	InterfaceID string
	Transaction *TransactionDraft
}

// LastTransaction returns the most recently appended transaction, if any.
func (p *Payment) LastTransaction() (Transaction, bool) {
	if len(p.Transactions) == 0 {
		return Transaction{}, false
	}
	return p.Transactions[len(p.Transactions)-1], true
}

func (p *Payment) TransactionsOfType(t TransactionType) []Transaction {
	var out []Transaction
	for _, tx := range p.Transactions {
		if tx.Type == t {
			out = append(out, tx)
		}
	}
	return out
}
