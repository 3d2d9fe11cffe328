package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/DanielPopoola/giftcard-connector/internal/application"
	"github.com/DanielPopoola/giftcard-connector/internal/application/converters"
	"github.com/DanielPopoola/giftcard-connector/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/DanielPopoola/giftcard-connector/internal/application/services"

type GiftCardConfig struct {
	// Currency is the single currency the provider operates in.
	Currency string
	// PaymentInterface is used when the session does not name one.
	PaymentInterface string
}

// GiftCardService orchestrates carts, payments and the gift card provider.
type GiftCardService struct {
	carts    application.CartStore
	payments application.PaymentStore
	provider application.GiftCardProvider
	cfg      GiftCardConfig
	logger   *slog.Logger
	tracer   trace.Tracer
}

func NewGiftCardService(
	carts application.CartStore,
	payments application.PaymentStore,
	provider application.GiftCardProvider,
	cfg GiftCardConfig,
	logger *slog.Logger,
) *GiftCardService {
	return &GiftCardService{
		carts:    carts,
		payments: payments,
		provider: provider,
		cfg:      cfg,
		logger:   logger,
		tracer:   otel.Tracer(tracerName),
	}
}

// Balance checks a gift card code against the current session's cart. It is read-only.
func (s *GiftCardService) Balance(ctx context.Context, code string) (*domain.BalanceResult, error) {
	ctx, span := s.tracer.Start(ctx, "GiftCardService.Balance")
	defer span.End()

	cart, err := s.currentCart(ctx)
	if err != nil {
		return nil, recordError(span, err)
	}

	cartCurrency := cart.PlannedAmount().CurrencyCode
	if err := s.checkConnectorCurrency(cartCurrency); err != nil {
		return nil, recordError(span, err)
	}

	resp, err := s.provider.Balance(ctx, code)
	if err != nil {
		return nil, recordError(span, providerFailure(err))
	}

	result, err := converters.ConvertBalance(resp, cartCurrency)
	if err != nil {
		return nil, recordError(span, err)
	}
	return result, nil
}

// Redeem charges the gift card and records the attempt as a new payment on the cart.
// Every call creates a new payment; duplicate submissions are not detected.
func (s *GiftCardService) Redeem(ctx context.Context, cmd RedeemCommand) (*domain.RedeemResult, error) {
	ctx, span := s.tracer.Start(ctx, "GiftCardService.Redeem")
	defer span.End()

	if cmd.Code == "" {
		return nil, recordError(span, domain.NewInvalidError("gift card code is required"))
	}

	cart, err := s.currentCart(ctx)
	if err != nil {
		return nil, recordError(span, err)
	}

	planned := cart.PlannedAmount()
	if err := s.checkConnectorCurrency(planned.CurrencyCode); err != nil {
		return nil, recordError(span, err)
	}
	if !cmd.Amount.SameCurrency(planned) {
		return nil, recordError(span, domain.NewCurrencyNotMatchError("redeem amount and cart currency do not match"))
	}

	draft := domain.NewGiftCardPaymentDraft(cart, cmd.Amount, s.paymentInterface(ctx))
	payment, err := s.payments.CreatePayment(ctx, draft)
	if err != nil {
		return nil, recordError(span, storeFailure(err))
	}
	span.SetAttributes(attribute.String("payment.id", payment.ID))

	if _, err := s.carts.AddPayment(ctx, cart.Ref(), payment.ID); err != nil {
		s.logger.Error("payment created but not attached to cart",
			"payment_id", payment.ID,
			"cart_id", cart.ID,
			"error", err)
		return nil, recordError(span, storeFailure(err))
	}

	resp, err := s.provider.Redeem(ctx, domain.ProviderRedeemRequest{
		Code:   cmd.Code,
		Amount: cmd.Amount,
	})
	if err != nil {
		// Outcome unknown at the provider; keep the charge Initial for reconciliation.
		s.recordCharge(ctx, payment, "", domain.TransactionStateInitial)
		return nil, recordError(span, providerFailure(err))
	}

	updated, err := s.payments.UpdatePayment(ctx, domain.PaymentUpdate{
		PaymentID:   payment.ID,
		InterfaceID: resp.RedemptionReference,
		Transaction: &domain.TransactionDraft{
			Type:          domain.TransactionTypeCharge,
			Amount:        payment.AmountPlanned,
			InteractionID: resp.RedemptionReference,
			State:         converters.ConvertResultCode(resp.ResultCode),
		},
	})
	if err != nil {
		s.logger.Error("failed to record redemption on payment",
			"payment_id", payment.ID,
			"redemption_reference", resp.RedemptionReference,
			"error", err)
		return nil, recordError(span, storeFailure(err))
	}

	return converters.ConvertRedemption(resp, updated), nil
}

// ModifyPayment applies the first submitted action to a payment. Further actions are ignored.
func (s *GiftCardService) ModifyPayment(ctx context.Context, cmd ModifyPaymentCommand) (*domain.PaymentModificationResponse, error) {
	ctx, span := s.tracer.Start(ctx, "GiftCardService.ModifyPayment",
		trace.WithAttributes(attribute.String("payment.id", cmd.PaymentID)))
	defer span.End()

	if len(cmd.Actions) == 0 {
		return nil, recordError(span, domain.NewInvalidError("at least one payment action is required"))
	}
	if len(cmd.Actions) > 1 {
		s.logger.Warn("only the first payment action is processed",
			"payment_id", cmd.PaymentID,
			"actions", len(cmd.Actions))
	}

	action, err := domain.ParsePaymentAction(cmd.Actions[0])
	if err != nil {
		return nil, recordError(span, err)
	}
	span.SetAttributes(attribute.String("payment.action", action.ActionName()))

	var resp *domain.PaymentModificationResponse
	switch a := action.(type) {
	case domain.CapturePayment:
		resp, err = s.CapturePayment(ctx, cmd.PaymentID, a)
	case domain.CancelPayment:
		resp, err = s.CancelPayment(ctx, cmd.PaymentID)
	case domain.RefundPayment:
		resp, err = s.RefundPayment(ctx, cmd.PaymentID, a)
	case domain.ReversePayment:
		resp, err = s.ReversePayment(ctx, cmd.PaymentID)
	default:
		err = domain.NewOperationNotSupportedError("")
	}
	if err != nil {
		return nil, recordError(span, err)
	}
	return resp, nil
}

// CapturePayment is not supported: gift cards are charged when redeemed.
func (s *GiftCardService) CapturePayment(_ context.Context, paymentID string, _ domain.CapturePayment) (*domain.PaymentModificationResponse, error) {
	s.logger.Debug("capture requested for gift card payment", "payment_id", paymentID)
	return nil, domain.NewOperationNotSupportedError("")
}

// CancelPayment is not supported: there is no authorization to cancel.
func (s *GiftCardService) CancelPayment(_ context.Context, paymentID string) (*domain.PaymentModificationResponse, error) {
	s.logger.Debug("cancel requested for gift card payment", "payment_id", paymentID)
	return nil, domain.NewOperationNotSupportedError("")
}

// RefundPayment rolls the redemption back at the provider. The provider only
// supports full rollbacks, so the requested amount is informational.
func (s *GiftCardService) RefundPayment(ctx context.Context, paymentID string, action domain.RefundPayment) (*domain.PaymentModificationResponse, error) {
	payment, err := s.payments.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, storeFailure(err)
	}

	if action.Amount.CentAmount > 0 && action.Amount.CentAmount != payment.AmountPlanned.CentAmount {
		s.logger.Info("partial refund requested, rolling back full redemption",
			"payment_id", paymentID,
			"requested", action.Amount.CentAmount,
			"planned", payment.AmountPlanned.CentAmount)
	}
	return s.rollback(ctx, payment)
}

// ReversePayment is handled as a rollback.
func (s *GiftCardService) ReversePayment(ctx context.Context, paymentID string) (*domain.PaymentModificationResponse, error) {
	payment, err := s.payments.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, storeFailure(err)
	}
	return s.rollback(ctx, payment)
}

func (s *GiftCardService) rollback(ctx context.Context, payment *domain.Payment) (*domain.PaymentModificationResponse, error) {
	resp, err := s.provider.Rollback(ctx, payment.InterfaceID)
	if err != nil {
		return nil, providerFailure(err)
	}

	outcome := converters.ConvertRollbackOutcome(resp)
	refunded := domain.Money{CurrencyCode: payment.AmountPlanned.CurrencyCode}
	if resp.Amount != nil {
		refunded.CentAmount = *resp.Amount
	}

	_, err = s.payments.UpdatePayment(ctx, domain.PaymentUpdate{
		PaymentID: payment.ID,
		Transaction: &domain.TransactionDraft{
			Type:          domain.TransactionTypeRefund,
			Amount:        refunded,
			InteractionID: resp.ID,
			State:         outcome.TransactionState(),
		},
	})
	if err != nil {
		s.logger.Error("failed to record rollback on payment",
			"payment_id", payment.ID,
			"rollback_id", resp.ID,
			"outcome", outcome,
			"error", err)
		return nil, storeFailure(err)
	}

	return &domain.PaymentModificationResponse{
		Outcome:        outcome,
		PSPReference:   resp.ID,
		AmountRefunded: &refunded,
	}, nil
}

func (s *GiftCardService) recordCharge(ctx context.Context, payment *domain.Payment, reference string, state domain.TransactionState) {
	_, err := s.payments.UpdatePayment(ctx, domain.PaymentUpdate{
		PaymentID:   payment.ID,
		InterfaceID: reference,
		Transaction: &domain.TransactionDraft{
			Type:          domain.TransactionTypeCharge,
			Amount:        payment.AmountPlanned,
			InteractionID: reference,
			State:         state,
		},
	})
	if err != nil {
		s.logger.Error("failed to record charge on payment", "payment_id", payment.ID, "error", err)
	}
}

func (s *GiftCardService) currentCart(ctx context.Context) (*domain.Cart, error) {
	cartID, err := application.CartIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.GetCart(ctx, cartID)
	if err != nil {
		return nil, storeFailure(err)
	}
	return cart, nil
}

func (s *GiftCardService) checkConnectorCurrency(cartCurrency string) error {
	if !domain.SameCurrencyCode(s.cfg.Currency, cartCurrency) {
		return domain.NewCurrencyNotMatchError("cart and gift card currency do not match")
	}
	return nil
}

func (s *GiftCardService) paymentInterface(ctx context.Context) string {
	if pi := application.PaymentInterfaceFromContext(ctx); pi != "" {
		return pi
	}
	return s.cfg.PaymentInterface
}

// storeFailure passes domain errors through and hides everything else behind InternalError.
func storeFailure(err error) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	return application.NewInternalError(err)
}

func providerFailure(err error) error {
	if _, ok := application.IsServiceError(err); ok {
		return err
	}
	return application.NewProviderUnavailableError(err)
}

func recordError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, application.ToErrorCode(err))
	return err
}
