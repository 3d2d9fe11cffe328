package domain

// Cart is the shopping cart a gift card is redeemed against. It is owned by the
// commerce store; the connector only reads it and appends payment references.
type Cart struct {
	ID          string
	Version     int64
	CustomerID  string
	AnonymousID string
	TotalPrice  Money
	PaymentIDs  []string
}

// CartRef addresses a specific cart version for optimistic concurrency control.
type CartRef struct {
	ID      string
	Version int64
}

// PlannedAmount is the amount the cart expects to be paid. Its currency is the
// system of record for currency matching.
func (c *Cart) PlannedAmount() Money {
	return c.TotalPrice
}

func (c *Cart) Ref() CartRef {
	return CartRef{ID: c.ID, Version: c.Version}
}
