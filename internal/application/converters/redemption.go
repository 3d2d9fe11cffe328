package converters

import (
	"github.com/DanielPopoola/giftcard-connector/internal/domain"
)

// ConvertResultCode maps a provider result code to a transaction state.
// Anything unknown, including an empty code, stays Initial.
func ConvertResultCode(code string) domain.TransactionState {
	switch code {
	case domain.ProviderResultSuccess:
		return domain.TransactionStateSuccess
	case domain.ProviderResultFailure:
		return domain.TransactionStateFailure
	default:
		return domain.TransactionStateInitial
	}
}

func ConvertRedemption(resp *domain.ProviderRedeemResponse, payment *domain.Payment) *domain.RedeemResult {
	result := &domain.RedeemResult{Result: domain.TransactionStateInitial}
	if resp != nil {
		result.Result = ConvertResultCode(resp.ResultCode)
		result.RedemptionID = resp.RedemptionReference
	}
	if payment != nil {
		result.PaymentReference = payment.ID
	}
	return result
}

// ConvertRollbackOutcome maps a provider rollback result to a modification outcome.
func ConvertRollbackOutcome(resp *domain.ProviderRollbackResponse) domain.ModificationOutcome {
	if resp != nil && resp.Result == domain.ProviderResultSuccess {
		return domain.ModificationApproved
	}
	return domain.ModificationRejected
}
