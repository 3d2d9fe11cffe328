package postgres

import (
	"time"
)

type CartModel struct {
	ID              string
	Version         int64
	CustomerID      *string
	AnonymousID     *string
	TotalCentAmount int64
	Currency        string
	PaymentIDs      []string
}

type PaymentModel struct {
	ID               string
	Version          int64
	AmountCentAmount int64
	Currency         string
	PaymentInterface string
	Method           string
	InterfaceID      *string
	CustomerID       *string
	AnonymousID      *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TransactionModel is one row of the append-only payment_transactions table.
type TransactionModel struct {
	ID            string
	PaymentID     string
	Seq           int
	Type          string
	CentAmount    int64
	Currency      string
	InteractionID *string
	State         string
	CreatedAt     time.Time
}
