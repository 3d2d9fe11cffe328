package giftcard

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/DanielPopoola/giftcard-connector/internal/domain"
	"github.com/google/uuid"
)

const (
	mockRedemptionPrefix = "mock-redemption-"
	mockRollbackPrefix   = "mock-rollback-"
)

// MockClient is an in-process provider. Codes encode their own outcome:
//
//	Valid-<centAmount>-<currency>   a valid card holding that balance
//	Expired, GenericError, NotFound that classification
//
// Anything else is Invalid.
type MockClient struct {
	currency string

	mu          sync.Mutex
	redemptions map[string]int64
	rolledBack  map[string]struct{}
}

func NewMockClient(currency string) *MockClient {
	return &MockClient{
		currency:    strings.ToUpper(currency),
		redemptions: make(map[string]int64),
		rolledBack:  make(map[string]struct{}),
	}
}

func (c *MockClient) Balance(_ context.Context, code string) (*domain.ProviderBalanceResponse, error) {
	switch domain.GiftCardCodeType(code) {
	case domain.GiftCardExpired:
		return &domain.ProviderBalanceResponse{Code: domain.GiftCardExpired, Message: "The giftcard is expired."}, nil
	case domain.GiftCardGenericError:
		return &domain.ProviderBalanceResponse{Code: domain.GiftCardGenericError, Message: "Generic error occurs."}, nil
	case domain.GiftCardNotFound:
		return &domain.ProviderBalanceResponse{Code: domain.GiftCardNotFound, Message: "The giftcard is not found."}, nil
	}

	amount, currency, ok := parseValidCode(code)
	if !ok {
		return &domain.ProviderBalanceResponse{Code: domain.GiftCardInvalid, Message: "The giftcard code is invalid."}, nil
	}
	if !domain.SameCurrencyCode(currency, c.currency) {
		return &domain.ProviderBalanceResponse{Code: domain.GiftCardCurrencyNotMatch, Message: "Currency does not match."}, nil
	}

	return &domain.ProviderBalanceResponse{
		Code:    domain.GiftCardValid,
		Message: "The giftcard is valid.",
		Amount:  &domain.Money{CentAmount: amount, CurrencyCode: strings.ToUpper(currency)},
	}, nil
}

// Redeem succeeds for valid codes with a non-zero balance. Every success gets a fresh reference.
func (c *MockClient) Redeem(_ context.Context, req domain.ProviderRedeemRequest) (*domain.ProviderRedeemResponse, error) {
	resp := &domain.ProviderRedeemResponse{
		ResultCode: domain.ProviderResultFailure,
		Code:       req.Code,
		Amount:     req.Amount,
	}

	amount, _, ok := parseValidCode(req.Code)
	if !ok || amount == 0 {
		return resp, nil
	}

	reference := mockRedemptionPrefix + uuid.NewString()

	c.mu.Lock()
	c.redemptions[reference] = req.Amount.CentAmount
	c.mu.Unlock()

	resp.ResultCode = domain.ProviderResultSuccess
	resp.RedemptionReference = reference
	return resp, nil
}

// Rollback accepts only references this client could have issued, and each at most once.
func (c *MockClient) Rollback(_ context.Context, redemptionReference string) (*domain.ProviderRollbackResponse, error) {
	failed := &domain.ProviderRollbackResponse{Result: domain.ProviderResultFailed}

	suffix, ok := strings.CutPrefix(redemptionReference, mockRedemptionPrefix)
	if !ok {
		return failed, nil
	}
	if _, err := uuid.Parse(suffix); err != nil {
		return failed, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, done := c.rolledBack[redemptionReference]; done {
		return failed, nil
	}
	c.rolledBack[redemptionReference] = struct{}{}

	resp := &domain.ProviderRollbackResponse{
		Result: domain.ProviderResultSuccess,
		ID:     mockRollbackPrefix + uuid.NewString(),
	}
	// References issued before a restart are unknown; their amount is not reported.
	if amount, known := c.redemptions[redemptionReference]; known {
		resp.Amount = &amount
	}
	return resp, nil
}

func (c *MockClient) HealthCheck(context.Context) (*domain.ProviderHealthResponse, error) {
	return &domain.ProviderHealthResponse{Status: domain.ProviderHealthOK}, nil
}

func parseValidCode(code string) (int64, string, bool) {
	parts := strings.Split(code, "-")
	if len(parts) != 3 || parts[0] != string(domain.GiftCardValid) {
		return 0, "", false
	}

	amount, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || amount < 0 {
		return 0, "", false
	}
	if len(parts[2]) != 3 {
		return 0, "", false
	}
	return amount, parts[2], true
}
