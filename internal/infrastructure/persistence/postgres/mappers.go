package postgres

import (
	"strings"

	"github.com/DanielPopoola/giftcard-connector/internal/domain"
)

func toDomainCart(m CartModel) *domain.Cart {
	paymentIDs := m.PaymentIDs
	if paymentIDs == nil {
		paymentIDs = []string{}
	}
	return &domain.Cart{
		ID:          m.ID,
		Version:     m.Version,
		CustomerID:  deref(m.CustomerID),
		AnonymousID: deref(m.AnonymousID),
		TotalPrice: domain.Money{
			CentAmount:   m.TotalCentAmount,
			CurrencyCode: strings.TrimSpace(m.Currency),
		},
		PaymentIDs: paymentIDs,
	}
}

func toDomainPayment(m PaymentModel, txs []TransactionModel) *domain.Payment {
	transactions := make([]domain.Transaction, 0, len(txs))
	for _, t := range txs {
		transactions = append(transactions, domain.Transaction{
			ID:   t.ID,
			Type: domain.TransactionType(t.Type),
			Amount: domain.Money{
				CentAmount:   t.CentAmount,
				CurrencyCode: strings.TrimSpace(t.Currency),
			},
			InteractionID: deref(t.InteractionID),
			State:         domain.TransactionState(t.State),
			CreatedAt:     t.CreatedAt,
		})
	}

	return &domain.Payment{
		ID:      m.ID,
		Version: m.Version,
		AmountPlanned: domain.Money{
			CentAmount:   m.AmountCentAmount,
			CurrencyCode: strings.TrimSpace(m.Currency),
		},
		PaymentMethodInfo: domain.PaymentMethodInfo{
			PaymentInterface: m.PaymentInterface,
			Method:           m.Method,
		},
		InterfaceID:  deref(m.InterfaceID),
		CustomerID:   deref(m.CustomerID),
		AnonymousID:  deref(m.AnonymousID),
		Transactions: transactions,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
