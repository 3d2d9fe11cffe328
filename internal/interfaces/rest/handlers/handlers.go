package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/giftcard-connector/internal/application/services"
	"github.com/DanielPopoola/giftcard-connector/internal/domain"
	"github.com/DanielPopoola/giftcard-connector/internal/interfaces/rest"
)

// GiftCardOperations is the checkout facing side of the connector.
type GiftCardOperations interface {
	Balance(ctx context.Context, code string) (*domain.BalanceResult, error)
	Redeem(ctx context.Context, cmd services.RedeemCommand) (*domain.RedeemResult, error)
	ModifyPayment(ctx context.Context, cmd services.ModifyPaymentCommand) (*domain.PaymentModificationResponse, error)
}

type StatusReporter interface {
	Status(ctx context.Context) *domain.StatusResponse
}

type Handlers struct {
	giftcards GiftCardOperations
	status    StatusReporter
	validator *rest.SchemaValidator
	logger    *slog.Logger
}

func NewHandlers(
	giftcards GiftCardOperations,
	status StatusReporter,
	validator *rest.SchemaValidator,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		giftcards: giftcards,
		status:    status,
		validator: validator,
		logger:    logger,
	}
}

// RegisterRoutes mounts the API on mux. Gift card routes run behind session.
func (h *Handlers) RegisterRoutes(mux *http.ServeMux, session func(http.Handler) http.Handler) {
	mux.Handle("POST /balance", session(http.HandlerFunc(h.HandleBalance)))
	mux.Handle("GET /balance/{code}", session(http.HandlerFunc(h.HandleBalanceByCode)))
	mux.Handle("POST /redeem", session(http.HandlerFunc(h.HandleRedeem)))
	mux.Handle("POST /redemption", session(http.HandlerFunc(h.HandleRedeem)))
	mux.Handle("POST /operations/payment-intents/{paymentId}", session(http.HandlerFunc(h.HandleModifyPayment)))

	mux.HandleFunc("GET /operations/status", h.HandleStatus)
	mux.Handle("GET /docs/openapi.yaml", rest.DocsHandler())
}
