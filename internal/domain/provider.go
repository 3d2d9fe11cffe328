package domain

// Provider result codes as sent by the gift card issuer.
const (
	ProviderResultSuccess = "SUCCESS"
	ProviderResultFailure = "FAILURE"
	ProviderResultFailed  = "FAILED"
	ProviderHealthOK      = "OK"
)

type ProviderBalanceResponse struct {
	Code    GiftCardCodeType `json:"code"`
	Message string           `json:"message"`
	Amount  *Money           `json:"amount,omitempty"`
}

type ProviderRedeemRequest struct {
	Code   string `json:"code"`
	Amount Money  `json:"amount"`
}

type ProviderRedeemResponse struct {
	ResultCode          string `json:"resultCode"`
	RedemptionReference string `json:"redemptionReference,omitempty"`
	Code                string `json:"code"`
	Amount              Money  `json:"amount"`
}

type ProviderRollbackRequest struct {
	RedemptionReference string `json:"redemptionReference"`
}

type ProviderRollbackResponse struct {
	Result string `json:"result"`
	ID     string `json:"id,omitempty"`
	Amount *int64 `json:"amount,omitempty"`
}

type ProviderHealthResponse struct {
	Status string `json:"status"`
}
