package giftcard

type balanceRequest struct {
	Code string `json:"code"`
}
