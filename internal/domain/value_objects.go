package domain

import (
	"errors"
	"strings"
)

// Money is an amount in the smallest currency unit together with its ISO-4217 code.
type Money struct {
	CentAmount   int64  `json:"centAmount"`
	CurrencyCode string `json:"currencyCode"`
}

func NewMoney(centAmount int64, currencyCode string) (Money, error) {
	if centAmount < 0 {
		return Money{}, errors.New("amount cannot be negative")
	}
	if len(currencyCode) != 3 {
		return Money{}, errors.New("currency must be a three letter ISO-4217 code")
	}
	return Money{CentAmount: centAmount, CurrencyCode: strings.ToUpper(currencyCode)}, nil
}

// SameCurrency reports whether both amounts are expressed in the same currency.
func (m Money) SameCurrency(other Money) bool {
	return SameCurrencyCode(m.CurrencyCode, other.CurrencyCode)
}

func SameCurrencyCode(a, b string) bool {
	return strings.EqualFold(a, b)
}
