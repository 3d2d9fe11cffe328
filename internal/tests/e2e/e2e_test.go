package e2e

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielPopoola/giftcard-connector/internal/application"
	"github.com/DanielPopoola/giftcard-connector/internal/application/services"
	"github.com/DanielPopoola/giftcard-connector/internal/config"
	"github.com/DanielPopoola/giftcard-connector/internal/domain"
	"github.com/DanielPopoola/giftcard-connector/internal/infrastructure/giftcard"
	"github.com/DanielPopoola/giftcard-connector/internal/infrastructure/metrics"
	"github.com/DanielPopoola/giftcard-connector/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/giftcard-connector/internal/infrastructure/session"
	"github.com/DanielPopoola/giftcard-connector/internal/interfaces/rest"
	"github.com/DanielPopoola/giftcard-connector/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/giftcard-connector/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/giftcard-connector/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const currency = "EUR"

type E2ETestSuite struct {
	suite.Suite
	testDB   *testhelpers.TestDatabase
	redis    *testhelpers.TestRedis
	carts    *postgres.CartRepository
	payments *postgres.PaymentRepository
	sessions *session.Store
	server   *httptest.Server
	ctx      context.Context
}

func TestE2ESuite(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}

func (s *E2ETestSuite) SetupSuite() {
	s.ctx = context.Background()
	s.testDB = testhelpers.SetupTestDatabase(s.T())
	s.redis = testhelpers.SetupTestRedis(s.T())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New(metrics.NewRegistry())

	provider, err := giftcard.NewProvider(
		config.ProviderConfig{Mode: config.ProviderModeMock, Currency: currency},
		config.BreakerConfig{MaxRequests: 1, Interval: time.Minute, Timeout: time.Second, ConsecutiveFailures: 5},
		m,
		logger,
	)
	s.Require().NoError(err)

	s.carts = postgres.NewCartRepository(s.testDB.DB)
	s.payments = postgres.NewPaymentRepository(s.testDB.DB)
	s.sessions = session.NewStore(s.redis.Client, "session:", logger)

	giftcards := services.NewGiftCardService(s.carts, s.payments, provider,
		services.GiftCardConfig{Currency: currency}, logger)
	status := services.NewStatusService([]services.HealthCheck{
		services.ProviderHealthCheck(provider),
		{Name: "postgres permissions", Check: s.testDB.DB.CheckPermissions},
		{Name: "redis session store", Check: s.sessions.Ping},
	}, services.StatusConfig{Timeout: 5 * time.Second, Version: "test"}, m, logger)

	validator, err := rest.NewSchemaValidator(s.ctx)
	s.Require().NoError(err)

	mux := http.NewServeMux()
	handlers.NewHandlers(giftcards, status, validator, logger).
		RegisterRoutes(mux, middleware.Session(s.sessions, logger))

	handler := middleware.Recovery(logger)(mux)
	handler = middleware.Metrics(m)(handler)
	s.server = httptest.NewServer(handler)
}

func (s *E2ETestSuite) TearDownSuite() {
	s.server.Close()
	s.redis.Cleanup(s.T())
	s.testDB.Cleanup(s.T())
}

func (s *E2ETestSuite) SetupTest() {
	s.testDB.CleanTables(s.T())
	s.redis.FlushAll(s.T())
}

// checkout seeds a cart and a session pointing at it.
func (s *E2ETestSuite) checkout(cartID, cartCurrency string) *TestClient {
	require.NoError(s.T(), s.carts.CreateCart(s.ctx, &domain.Cart{
		ID:         cartID,
		CustomerID: "customer-1",
		TotalPrice: domain.Money{CentAmount: 5000, CurrencyCode: cartCurrency},
	}))
	sessionID := "session-" + cartID
	require.NoError(s.T(), s.sessions.SaveSession(s.ctx, &application.Session{ID: sessionID, CartID: cartID}, time.Minute))
	return NewTestClient(s.server.URL, sessionID)
}

func (s *E2ETestSuite) TestBalance() {
	client := s.checkout("cart-1", currency)

	var result domain.BalanceResult
	code := client.Do(s.T(), http.MethodPost, "/balance", map[string]string{"code": "Valid-1000-EUR"}, &result)
	s.Require().Equal(http.StatusOK, code)
	assert.Equal(s.T(), domain.GiftCardValid, result.Status.State)
	assert.Equal(s.T(), domain.Money{CentAmount: 1000, CurrencyCode: currency}, *result.Amount)

	var errResp rest.ErrorResponse
	code = client.Do(s.T(), http.MethodGet, "/balance/Expired", nil, &errResp)
	assert.Equal(s.T(), http.StatusBadRequest, code)
	assert.Equal(s.T(), domain.ErrCodeExpired, errResp.Error.Code)

	code = client.Do(s.T(), http.MethodGet, "/balance/NotFound", nil, &errResp)
	assert.Equal(s.T(), http.StatusNotFound, code)

	code = client.Do(s.T(), http.MethodGet, "/balance/Valid-1000-USD", nil, &errResp)
	assert.Equal(s.T(), http.StatusBadRequest, code)
	assert.Equal(s.T(), domain.ErrCodeCurrencyNotMatch, errResp.Error.Code)
}

func (s *E2ETestSuite) TestBalance_WithoutSession() {
	s.checkout("cart-1", currency)
	client := NewTestClient(s.server.URL, "")

	var errResp rest.ErrorResponse
	code := client.Do(s.T(), http.MethodPost, "/balance", map[string]string{"code": "Valid-1000-EUR"}, &errResp)
	assert.Equal(s.T(), http.StatusUnauthorized, code)
}

func (s *E2ETestSuite) TestRedeemThenRefund() {
	client := s.checkout("cart-1", currency)

	var redeemed domain.RedeemResult
	code := client.Do(s.T(), http.MethodPost, "/redeem", map[string]any{
		"code":         "Valid-1000-EUR",
		"redeemAmount": domain.Money{CentAmount: 700, CurrencyCode: currency},
	}, &redeemed)
	s.Require().Equal(http.StatusOK, code)
	assert.Equal(s.T(), domain.TransactionStateSuccess, redeemed.Result)
	assert.NotEmpty(s.T(), redeemed.RedemptionID)

	cart, err := s.carts.GetCart(s.ctx, "cart-1")
	s.Require().NoError(err)
	assert.Equal(s.T(), []string{redeemed.PaymentReference}, cart.PaymentIDs)

	payment, err := s.payments.GetPayment(s.ctx, redeemed.PaymentReference)
	s.Require().NoError(err)
	assert.Equal(s.T(), "customer-1", payment.CustomerID)
	assert.Equal(s.T(), redeemed.RedemptionID, payment.InterfaceID)
	s.Require().Len(payment.Transactions, 1)
	assert.Equal(s.T(), domain.TransactionTypeCharge, payment.Transactions[0].Type)

	var modified domain.PaymentModificationResponse
	code = client.Do(s.T(), http.MethodPost, "/operations/payment-intents/"+payment.ID, map[string]any{
		"actions": []map[string]any{{"action": "refundPayment", "amount": domain.Money{CentAmount: 700, CurrencyCode: currency}}},
	}, &modified)
	s.Require().Equal(http.StatusOK, code)
	assert.Equal(s.T(), domain.ModificationApproved, modified.Outcome)
	assert.Equal(s.T(), int64(700), modified.AmountRefunded.CentAmount)

	// a second rollback of the same redemption is rejected and still recorded
	code = client.Do(s.T(), http.MethodPost, "/operations/payment-intents/"+payment.ID, map[string]any{
		"actions": []map[string]any{{"action": "reversePayment"}},
	}, &modified)
	s.Require().Equal(http.StatusOK, code)
	assert.Equal(s.T(), domain.ModificationRejected, modified.Outcome)

	payment, err = s.payments.GetPayment(s.ctx, payment.ID)
	s.Require().NoError(err)
	s.Require().Len(payment.Transactions, 3)
	assert.Equal(s.T(), domain.TransactionStateSuccess, payment.Transactions[1].State)
	assert.Equal(s.T(), domain.TransactionStateFailure, payment.Transactions[2].State)
}

func (s *E2ETestSuite) TestRedeem_CurrencyMismatchLeavesNoPayment() {
	client := s.checkout("cart-1", "USD")

	var errResp rest.ErrorResponse
	code := client.Do(s.T(), http.MethodPost, "/redemption", map[string]any{
		"code":         "Valid-1000-EUR",
		"redeemAmount": domain.Money{CentAmount: 700, CurrencyCode: currency},
	}, &errResp)
	assert.Equal(s.T(), http.StatusBadRequest, code)
	assert.Equal(s.T(), domain.ErrCodeCurrencyNotMatch, errResp.Error.Code)

	var count int
	s.Require().NoError(s.testDB.DB.Pool.QueryRow(s.ctx, `SELECT COUNT(*) FROM payments`).Scan(&count))
	assert.Zero(s.T(), count)
}

func (s *E2ETestSuite) TestStatus() {
	client := NewTestClient(s.server.URL, "")

	var status domain.StatusResponse
	code := client.Do(s.T(), http.MethodGet, "/operations/status", nil, &status)
	s.Require().Equal(http.StatusOK, code)
	assert.Equal(s.T(), domain.StatusAvailable, status.Status)
	assert.Len(s.T(), status.Checks, 3)
}
