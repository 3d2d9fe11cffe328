package handlers

import (
	"io"
	"net/http"

	"github.com/DanielPopoola/giftcard-connector/internal/application/services"
	"github.com/DanielPopoola/giftcard-connector/internal/domain"
	"github.com/DanielPopoola/giftcard-connector/internal/interfaces/rest"
)

const maxBodyBytes = 64 << 10

type BalanceRequest struct {
	Code string `json:"code"`
}

type RedeemRequest struct {
	Code         string       `json:"code"`
	RedeemAmount domain.Money `json:"redeemAmount"`
}

type PaymentModificationRequest struct {
	Actions []domain.PaymentActionDraft `json:"actions"`
}

func (h *Handlers) decode(r *http.Request, schema string, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return domain.NewInvalidError("request body could not be read")
	}
	return h.validator.DecodeBody(schema, body, dst)
}

func (h *Handlers) HandleBalance(w http.ResponseWriter, r *http.Request) {
	var req BalanceRequest
	if err := h.decode(r, rest.SchemaBalanceRequest, &req); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	h.balance(w, r, req.Code)
}

func (h *Handlers) HandleBalanceByCode(w http.ResponseWriter, r *http.Request) {
	code, err := pathParam(r, "code")
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	h.balance(w, r, code)
}

func (h *Handlers) balance(w http.ResponseWriter, r *http.Request, code string) {
	result, err := h.giftcards.Balance(r.Context(), code)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, result)
}

func (h *Handlers) HandleRedeem(w http.ResponseWriter, r *http.Request) {
	var req RedeemRequest
	if err := h.decode(r, rest.SchemaRedeemRequest, &req); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	result, err := h.giftcards.Redeem(r.Context(), services.RedeemCommand{
		Code:   req.Code,
		Amount: req.RedeemAmount,
	})
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, result)
}

func (h *Handlers) HandleModifyPayment(w http.ResponseWriter, r *http.Request) {
	paymentID, err := pathParam(r, "paymentId")
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	var req PaymentModificationRequest
	if err := h.decode(r, rest.SchemaPaymentModificationRequest, &req); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	result, err := h.giftcards.ModifyPayment(r.Context(), services.ModifyPaymentCommand{
		PaymentID: paymentID,
		Actions:   req.Actions,
	})
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, result)
}
