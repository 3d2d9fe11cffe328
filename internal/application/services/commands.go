package services

import "github.com/DanielPopoola/giftcard-connector/internal/domain"

type RedeemCommand struct {
	Code   string
	Amount domain.Money
}

type ModifyPaymentCommand struct {
	PaymentID string
	Actions   []domain.PaymentActionDraft
}
