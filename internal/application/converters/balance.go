// Package converters maps provider answers onto the connector's public responses.
package converters

import (
	"github.com/DanielPopoola/giftcard-connector/internal/domain"
)

// ConvertBalance turns a provider balance answer into a BalanceResult, or the
// typed error for any classification other than Valid.
func ConvertBalance(resp *domain.ProviderBalanceResponse, cartCurrency string) (*domain.BalanceResult, error) {
	if resp == nil {
		return nil, domain.NewGenericError("")
	}

	switch resp.Code {
	case domain.GiftCardValid:
		if resp.Amount == nil {
			return nil, domain.NewGenericError(resp.Message)
		}
		if cartCurrency != "" && !resp.Amount.SameCurrency(domain.Money{CurrencyCode: cartCurrency}) {
			return nil, domain.NewCurrencyNotMatchError("cart and gift card currency do not match")
		}
		amount := *resp.Amount
		return &domain.BalanceResult{
			Status: domain.BalanceStatus{State: domain.GiftCardValid},
			Amount: &amount,
		}, nil
	case domain.GiftCardCurrencyNotMatch:
		return nil, domain.NewCurrencyNotMatchError(resp.Message)
	case domain.GiftCardExpired:
		return nil, domain.NewExpiredError(resp.Message)
	case domain.GiftCardNotFound:
		return nil, domain.NewNotFoundError(resp.Message)
	default:
		return nil, domain.NewGenericError(resp.Message)
	}
}
