package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DanielPopoola/giftcard-connector/internal/domain"
	"github.com/DanielPopoola/giftcard-connector/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/giftcard-connector/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RepositoryTestSuite struct {
	suite.Suite
	testDB   *testhelpers.TestDatabase
	carts    *postgres.CartRepository
	payments *postgres.PaymentRepository
	ctx      context.Context
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func (s *RepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDatabase(s.T())
	s.carts = postgres.NewCartRepository(s.testDB.DB)
	s.payments = postgres.NewPaymentRepository(s.testDB.DB)
	s.ctx = context.Background()
}

func (s *RepositoryTestSuite) TearDownSuite() {
	s.testDB.Cleanup(s.T())
}

func (s *RepositoryTestSuite) SetupTest() {
	s.testDB.CleanTables(s.T())
}

func (s *RepositoryTestSuite) seedCart(id string) *domain.Cart {
	cart := &domain.Cart{
		ID:          id,
		AnonymousID: "anon-1",
		TotalPrice:  domain.Money{CentAmount: 5000, CurrencyCode: "EUR"},
	}
	require.NoError(s.T(), s.carts.CreateCart(s.ctx, cart))

	stored, err := s.carts.GetCart(s.ctx, id)
	require.NoError(s.T(), err)
	return stored
}

func (s *RepositoryTestSuite) seedPayment() *domain.Payment {
	cart := &domain.Cart{AnonymousID: "anon-1"}
	draft := domain.NewGiftCardPaymentDraft(cart, domain.Money{CentAmount: 1000, CurrencyCode: "EUR"}, "")
	payment, err := s.payments.CreatePayment(s.ctx, draft)
	require.NoError(s.T(), err)
	return payment
}

func (s *RepositoryTestSuite) TestGetCart_NotFound() {
	_, err := s.carts.GetCart(s.ctx, "missing")
	assert.True(s.T(), domain.IsErrorCode(err, domain.ErrCodeCartNotFound))
}

func (s *RepositoryTestSuite) TestCreateCart_StartsAtVersionOne() {
	cart := s.seedCart("cart-1")

	assert.Equal(s.T(), int64(1), cart.Version)
	assert.Equal(s.T(), "anon-1", cart.AnonymousID)
	assert.Empty(s.T(), cart.CustomerID)
	assert.Equal(s.T(), int64(5000), cart.TotalPrice.CentAmount)
	assert.Empty(s.T(), cart.PaymentIDs)
}

func (s *RepositoryTestSuite) TestAddPayment_AppendsInOrderAndBumpsVersion() {
	cart := s.seedCart("cart-1")
	first := s.seedPayment()
	second := s.seedPayment()

	updated, err := s.carts.AddPayment(s.ctx, cart.Ref(), first.ID)
	s.Require().NoError(err)
	assert.Equal(s.T(), int64(2), updated.Version)

	updated, err = s.carts.AddPayment(s.ctx, updated.Ref(), second.ID)
	s.Require().NoError(err)

	assert.Equal(s.T(), int64(3), updated.Version)
	assert.Equal(s.T(), []string{first.ID, second.ID}, updated.PaymentIDs)
}

func (s *RepositoryTestSuite) TestAddPayment_StaleVersion() {
	cart := s.seedCart("cart-1")
	first := s.seedPayment()
	second := s.seedPayment()

	_, err := s.carts.AddPayment(s.ctx, cart.Ref(), first.ID)
	s.Require().NoError(err)

	_, err = s.carts.AddPayment(s.ctx, cart.Ref(), second.ID)
	assert.True(s.T(), domain.IsErrorCode(err, domain.ErrCodeConcurrentModification))

	stored, err := s.carts.GetCart(s.ctx, cart.ID)
	s.Require().NoError(err)
	assert.Equal(s.T(), []string{first.ID}, stored.PaymentIDs)
}

func (s *RepositoryTestSuite) TestAddPayment_UnknownCartOrPayment() {
	payment := s.seedPayment()

	_, err := s.carts.AddPayment(s.ctx, domain.CartRef{ID: "missing", Version: 1}, payment.ID)
	assert.True(s.T(), domain.IsErrorCode(err, domain.ErrCodeCartNotFound))

	cart := s.seedCart("cart-1")
	_, err = s.carts.AddPayment(s.ctx, cart.Ref(), "00000000-0000-0000-0000-000000000000")
	assert.True(s.T(), domain.IsErrorCode(err, domain.ErrCodePaymentNotFound))

	// the failed attach must not have consumed the version
	stored, err := s.carts.GetCart(s.ctx, cart.ID)
	s.Require().NoError(err)
	assert.Equal(s.T(), int64(1), stored.Version)
}

func (s *RepositoryTestSuite) TestCreatePayment() {
	payment := s.seedPayment()

	assert.NotEmpty(s.T(), payment.ID)
	assert.Equal(s.T(), int64(1), payment.Version)
	assert.Equal(s.T(), domain.PaymentMethodGiftCard, payment.PaymentMethodInfo.Method)
	assert.Equal(s.T(), domain.DefaultPaymentInterface, payment.PaymentMethodInfo.PaymentInterface)
	assert.Equal(s.T(), "anon-1", payment.AnonymousID)
	assert.Empty(s.T(), payment.Transactions)
}

func (s *RepositoryTestSuite) TestGetPayment_NotFound() {
	_, err := s.payments.GetPayment(s.ctx, "00000000-0000-0000-0000-000000000000")
	assert.True(s.T(), domain.IsErrorCode(err, domain.ErrCodePaymentNotFound))
}

func (s *RepositoryTestSuite) TestUpdatePayment_AppendsTransactions() {
	payment := s.seedPayment()

	updated, err := s.payments.UpdatePayment(s.ctx, domain.PaymentUpdate{
		PaymentID:   payment.ID,
		InterfaceID: "mock-redemption-1",
		Transaction: &domain.TransactionDraft{
			Type:          domain.TransactionTypeCharge,
			Amount:        payment.AmountPlanned,
			InteractionID: "mock-redemption-1",
			State:         domain.TransactionStateSuccess,
		},
	})
	s.Require().NoError(err)
	assert.Equal(s.T(), int64(2), updated.Version)
	assert.Equal(s.T(), "mock-redemption-1", updated.InterfaceID)

	// an empty interface id keeps the stored one
	updated, err = s.payments.UpdatePayment(s.ctx, domain.PaymentUpdate{
		PaymentID: payment.ID,
		Transaction: &domain.TransactionDraft{
			Type:          domain.TransactionTypeRefund,
			Amount:        payment.AmountPlanned,
			InteractionID: "mock-rollback-1",
			State:         domain.TransactionStateSuccess,
		},
	})
	s.Require().NoError(err)
	assert.Equal(s.T(), "mock-redemption-1", updated.InterfaceID)

	stored, err := s.payments.GetPayment(s.ctx, payment.ID)
	s.Require().NoError(err)
	s.Require().Len(stored.Transactions, 2)
	assert.Equal(s.T(), domain.TransactionTypeCharge, stored.Transactions[0].Type)
	assert.Equal(s.T(), domain.TransactionTypeRefund, stored.Transactions[1].Type)
	assert.Equal(s.T(), "mock-rollback-1", stored.Transactions[1].InteractionID)
	assert.Equal(s.T(), int64(1000), stored.Transactions[1].Amount.CentAmount)
}

func (s *RepositoryTestSuite) TestUpdatePayment_NotFound() {
	_, err := s.payments.UpdatePayment(s.ctx, domain.PaymentUpdate{PaymentID: "00000000-0000-0000-0000-000000000000"})
	assert.True(s.T(), domain.IsErrorCode(err, domain.ErrCodePaymentNotFound))
}

func (s *RepositoryTestSuite) TestFindOrphanedPayments() {
	cart := s.seedCart("cart-1")
	attached := s.seedPayment()
	charged := s.seedPayment()
	orphan := s.seedPayment()

	_, err := s.carts.AddPayment(s.ctx, cart.Ref(), attached.ID)
	s.Require().NoError(err)

	_, err = s.payments.UpdatePayment(s.ctx, domain.PaymentUpdate{
		PaymentID: charged.ID,
		Transaction: &domain.TransactionDraft{
			Type:   domain.TransactionTypeCharge,
			Amount: charged.AmountPlanned,
			State:  domain.TransactionStateInitial,
		},
	})
	s.Require().NoError(err)

	_, err = s.testDB.DB.Pool.Exec(s.ctx, `UPDATE payments SET created_at = NOW() - INTERVAL '1 hour'`)
	s.Require().NoError(err)

	found, err := s.payments.FindOrphanedPayments(s.ctx, 10*time.Minute, 10)
	s.Require().NoError(err)
	s.Require().Len(found, 1)
	assert.Equal(s.T(), orphan.ID, found[0].ID)

	found, err = s.payments.FindOrphanedPayments(s.ctx, 2*time.Hour, 10)
	s.Require().NoError(err)
	assert.Empty(s.T(), found)
}

func (s *RepositoryTestSuite) TestCheckPermissions() {
	details, err := s.testDB.DB.CheckPermissions(s.ctx)
	s.Require().NoError(err)
	assert.NotEmpty(s.T(), details)
}
