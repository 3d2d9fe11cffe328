package domain

// GiftCardCodeType classifies a gift card code as reported by the provider.
type GiftCardCodeType string

const (
	GiftCardValid            GiftCardCodeType = "Valid"
	GiftCardExpired          GiftCardCodeType = "Expired"
	GiftCardGenericError     GiftCardCodeType = "GenericError"
	GiftCardNotFound         GiftCardCodeType = "NotFound"
	GiftCardCurrencyNotMatch GiftCardCodeType = "CurrencyNotMatch"
	GiftCardInvalid          GiftCardCodeType = "Invalid"
)

type BalanceStatus struct {
	State GiftCardCodeType `json:"state"`
}

// BalanceResult is the public answer to a balance check.
type BalanceResult struct {
	Status BalanceStatus `json:"status"`
	Amount *Money        `json:"amount,omitempty"`
}

// RedeemResult is the public answer to a redemption.
type RedeemResult struct {
	Result           TransactionState `json:"result"`
	PaymentReference string           `json:"paymentReference"`
	RedemptionID     string           `json:"redemptionId"`
}
