package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DanielPopoola/giftcard-connector/internal/application"
	"github.com/DanielPopoola/giftcard-connector/internal/application/services"
	"github.com/DanielPopoola/giftcard-connector/internal/domain"
	"github.com/DanielPopoola/giftcard-connector/internal/interfaces/rest"
	"github.com/DanielPopoola/giftcard-connector/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/giftcard-connector/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/giftcard-connector/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sessionID = "sess-1"

type fixture struct {
	giftcards *mocks.MockGiftCardOperations
	status    *mocks.MockStatusReporter
	sessions  *mocks.MockSessionStore
	server    http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	validator, err := rest.NewSchemaValidator(context.Background())
	require.NoError(t, err)

	f := &fixture{
		giftcards: mocks.NewMockGiftCardOperations(t),
		status:    mocks.NewMockStatusReporter(t),
		sessions:  mocks.NewMockSessionStore(t),
	}

	mux := http.NewServeMux()
	h := handlers.NewHandlers(f.giftcards, f.status, validator, logger)
	h.RegisterRoutes(mux, middleware.Session(f.sessions, logger))
	f.server = mux

	return f
}

func (f *fixture) withSession() {
	f.sessions.EXPECT().GetSession(mock.Anything, sessionID).
		Return(&application.Session{ID: sessionID, CartID: "cart-1"}, nil)
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(middleware.SessionHeader, sessionID)
	rr := httptest.NewRecorder()
	f.server.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) rest.ErrorResponse {
	t.Helper()
	var resp rest.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	return resp
}

func TestHandleBalance_Success(t *testing.T) {
	f := newFixture(t)
	f.withSession()

	amount := domain.Money{CentAmount: 1000, CurrencyCode: "EUR"}
	f.giftcards.EXPECT().Balance(mock.Anything, "Valid-1000-EUR").
		RunAndReturn(func(ctx context.Context, _ string) (*domain.BalanceResult, error) {
			cartID, err := application.CartIDFromContext(ctx)
			require.NoError(t, err)
			assert.Equal(t, "cart-1", cartID)
			return &domain.BalanceResult{Status: domain.BalanceStatus{State: domain.GiftCardValid}, Amount: &amount}, nil
		})

	rr := f.do(http.MethodPost, "/balance", `{"code":"Valid-1000-EUR"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	var result domain.BalanceResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, domain.GiftCardValid, result.Status.State)
	assert.Equal(t, amount, *result.Amount)
}

func TestHandleBalance_ByPathCode(t *testing.T) {
	f := newFixture(t)
	f.withSession()

	f.giftcards.EXPECT().Balance(mock.Anything, "Expired").
		Return(nil, domain.NewExpiredError("The giftcard is expired."))

	rr := f.do(http.MethodGet, "/balance/Expired", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decodeError(t, rr)
	assert.Equal(t, domain.ErrCodeExpired, resp.Error.Code)
	assert.Equal(t, "The giftcard is expired.", resp.Error.Message)
}

func TestHandleBalance_NotFoundMapsTo404(t *testing.T) {
	f := newFixture(t)
	f.withSession()

	f.giftcards.EXPECT().Balance(mock.Anything, "NotFound").
		Return(nil, domain.NewNotFoundError(""))

	rr := f.do(http.MethodPost, "/balance", `{"code":"NotFound"}`)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, domain.ErrCodeNotFound, decodeError(t, rr).Error.Code)
}

func TestHandleBalance_SchemaViolation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing code", body: `{}`},
		{name: "empty code", body: `{"code":""}`},
		{name: "wrong type", body: `{"code":42}`},
		{name: "not json", body: `code=abc`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.withSession()

			rr := f.do(http.MethodPost, "/balance", tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, domain.ErrCodeInvalid, decodeError(t, rr).Error.Code)
		})
	}
}

func TestHandleRedeem_BothRoutes(t *testing.T) {
	for _, route := range []string{"/redeem", "/redemption"} {
		t.Run(route, func(t *testing.T) {
			f := newFixture(t)
			f.withSession()

			want := services.RedeemCommand{
				Code:   "Valid-1000-EUR",
				Amount: domain.Money{CentAmount: 500, CurrencyCode: "EUR"},
			}
			f.giftcards.EXPECT().Redeem(mock.Anything, want).Return(&domain.RedeemResult{
				Result:           domain.TransactionStateSuccess,
				PaymentReference: "payment-1",
				RedemptionID:     "mock-redemption-1",
			}, nil)

			rr := f.do(http.MethodPost, route, `{"code":"Valid-1000-EUR","redeemAmount":{"centAmount":500,"currencyCode":"EUR"}}`)

			require.Equal(t, http.StatusOK, rr.Code)
			var result domain.RedeemResult
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
			assert.Equal(t, domain.TransactionStateSuccess, result.Result)
			assert.Equal(t, "payment-1", result.PaymentReference)
			assert.Equal(t, "mock-redemption-1", result.RedemptionID)
		})
	}
}

func TestHandleRedeem_RejectsNegativeAmount(t *testing.T) {
	f := newFixture(t)
	f.withSession()

	rr := f.do(http.MethodPost, "/redeem", `{"code":"Valid-1000-EUR","redeemAmount":{"centAmount":-1,"currencyCode":"EUR"}}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, domain.ErrCodeInvalid, decodeError(t, rr).Error.Code)
}

func TestHandleRedeem_ProviderUnavailable(t *testing.T) {
	f := newFixture(t)
	f.withSession()

	f.giftcards.EXPECT().Redeem(mock.Anything, mock.Anything).
		Return(nil, application.NewProviderUnavailableError(context.DeadlineExceeded))

	rr := f.do(http.MethodPost, "/redeem", `{"code":"Valid-1000-EUR","redeemAmount":{"centAmount":500,"currencyCode":"EUR"}}`)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Equal(t, application.ErrCodeProviderUnavailable, decodeError(t, rr).Error.Code)
}

func TestHandleModifyPayment(t *testing.T) {
	f := newFixture(t)
	f.withSession()

	refunded := domain.Money{CentAmount: 500, CurrencyCode: "EUR"}
	f.giftcards.EXPECT().ModifyPayment(mock.Anything, mock.MatchedBy(func(cmd services.ModifyPaymentCommand) bool {
		return cmd.PaymentID == "payment-1" &&
			len(cmd.Actions) == 1 &&
			cmd.Actions[0].Action == domain.ActionRefundPayment &&
			cmd.Actions[0].Amount != nil && *cmd.Actions[0].Amount == refunded
	})).Return(&domain.PaymentModificationResponse{
		Outcome:        domain.ModificationApproved,
		PSPReference:   "mock-rollback-1",
		AmountRefunded: &refunded,
	}, nil)

	rr := f.do(http.MethodPost, "/operations/payment-intents/payment-1",
		`{"actions":[{"action":"refundPayment","amount":{"centAmount":500,"currencyCode":"EUR"}}]}`)

	require.Equal(t, http.StatusOK, rr.Code)
	var result domain.PaymentModificationResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, domain.ModificationApproved, result.Outcome)
	assert.Equal(t, "mock-rollback-1", result.PSPReference)
	assert.Equal(t, refunded, *result.AmountRefunded)
}

func TestHandleModifyPayment_Unsupported(t *testing.T) {
	f := newFixture(t)
	f.withSession()

	f.giftcards.EXPECT().ModifyPayment(mock.Anything, mock.Anything).
		Return(nil, domain.NewOperationNotSupportedError(""))

	rr := f.do(http.MethodPost, "/operations/payment-intents/payment-1", `{"actions":[{"action":"capturePayment"}]}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, domain.ErrCodeOperationNotSupported, decodeError(t, rr).Error.Code)
}

func TestSession_Required(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/balance", strings.NewReader(`{"code":"Expired"}`))
	rr := httptest.NewRecorder()
	f.server.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, application.ErrCodeUnauthorized, decodeError(t, rr).Error.Code)
}

func TestSession_FromQueryParameter(t *testing.T) {
	f := newFixture(t)
	f.sessions.EXPECT().GetSession(mock.Anything, "sess-q").
		Return(&application.Session{ID: "sess-q", CartID: "cart-9"}, nil)
	f.giftcards.EXPECT().Balance(mock.Anything, "Expired").
		Return(nil, domain.NewExpiredError(""))

	req := httptest.NewRequest(http.MethodGet, "/balance/Expired?x-session-id=sess-q", nil)
	rr := httptest.NewRecorder()
	f.server.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSession_Unknown(t *testing.T) {
	f := newFixture(t)
	f.sessions.EXPECT().GetSession(mock.Anything, sessionID).
		Return(nil, application.NewUnauthorizedError("session is unknown or expired"))

	rr := f.do(http.MethodPost, "/balance", `{"code":"Expired"}`)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestHandleStatus(t *testing.T) {
	f := newFixture(t)
	f.status.EXPECT().Status(mock.Anything).Return(&domain.StatusResponse{
		Status:    domain.StatusPartiallyAvailable,
		Timestamp: time.Now().UTC(),
		Version:   "1.0.0",
		Checks: []domain.CheckResult{
			{Name: "giftcard provider API call", Status: domain.HealthDown, Message: "provider down"},
			{Name: "postgres permissions", Status: domain.HealthUp},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/operations/status", nil)
	rr := httptest.NewRecorder()
	f.server.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var result domain.StatusResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, domain.StatusPartiallyAvailable, result.Status)
	assert.Len(t, result.Checks, 2)
}

func TestDocs(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/docs/openapi.yaml", nil)
	rr := httptest.NewRecorder()
	f.server.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "openapi: 3.0.3")
}
