package domain

import "fmt"

// Action names accepted by the payment modification endpoint.
const (
	ActionCancelPayment  = "cancelPayment"
	ActionCapturePayment = "capturePayment"
	ActionRefundPayment  = "refundPayment"
	ActionReversePayment = "reversePayment"
)

// PaymentAction is one of CancelPayment, CapturePayment, RefundPayment or ReversePayment.
type PaymentAction interface {
	ActionName() string
	paymentAction()
}

type CancelPayment struct{}

type CapturePayment struct {
	Amount Money
}

type RefundPayment struct {
	Amount Money
}

type ReversePayment struct{}

func (CancelPayment) ActionName() string  { return ActionCancelPayment }
func (CapturePayment) ActionName() string { return ActionCapturePayment }
func (RefundPayment) ActionName() string  { return ActionRefundPayment }
func (ReversePayment) ActionName() string { return ActionReversePayment }

func (CancelPayment) paymentAction()  {}
func (CapturePayment) paymentAction() {}
func (RefundPayment) paymentAction()  {}
func (ReversePayment) paymentAction() {}

// PaymentActionDraft is an action as submitted by the caller.
type PaymentActionDraft struct {
	Action string `json:"action"`
	Amount *Money `json:"amount,omitempty"`
}

// ParsePaymentAction turns a submitted action into its typed variant.
func ParsePaymentAction(d PaymentActionDraft) (PaymentAction, error) {
	var amount Money
	if d.Amount != nil {
		amount = *d.Amount
	}

	switch d.Action {
	case ActionCancelPayment:
		return CancelPayment{}, nil
	case ActionCapturePayment:
		return CapturePayment{Amount: amount}, nil
	case ActionRefundPayment:
		return RefundPayment{Amount: amount}, nil
	case ActionReversePayment:
		return ReversePayment{}, nil
	default:
		return nil, NewOperationNotSupportedError(fmt.Sprintf("operation %q not supported", d.Action))
	}
}

// ModificationOutcome is the result of a payment modification.
type ModificationOutcome string

const (
	ModificationApproved ModificationOutcome = "approved"
	ModificationRejected ModificationOutcome = "rejected"
	ModificationReceived ModificationOutcome = "received"
)

// TransactionState maps the outcome onto the state recorded in the payment history.
func (o ModificationOutcome) TransactionState() TransactionState {
	switch o {
	case ModificationReceived:
		return TransactionStatePending
	case ModificationApproved:
		return TransactionStateSuccess
	default:
		return TransactionStateFailure
	}
}

type PaymentModificationResponse struct {
	Outcome        ModificationOutcome `json:"outcome"`
	PSPReference   string              `json:"pspReference"`
	AmountRefunded *Money              `json:"amountRefunded,omitempty"`
}
