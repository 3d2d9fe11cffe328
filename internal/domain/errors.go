package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError is a terminal, user-facing error with a stable code and the HTTP
// status the REST layer should answer with.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches any DomainError carrying the same code, so sentinels work with errors.Is.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

const (
	ErrCodeCurrencyNotMatch       = "CurrencyNotMatch"
	ErrCodeExpired                = "Expired"
	ErrCodeGenericError           = "GenericError"
	ErrCodeNotFound               = "NotFound"
	ErrCodeInvalid                = "Invalid"
	ErrCodeOperationNotSupported  = "OperationNotSupported"
	ErrCodePaymentNotFound        = "PaymentNotFound"
	ErrCodeCartNotFound           = "CartNotFound"
	ErrCodeConcurrentModification = "ConcurrentModification"
)

// Sentinels for errors.Is comparisons.
var (
	ErrCurrencyNotMatch       = &DomainError{Code: ErrCodeCurrencyNotMatch}
	ErrExpired                = &DomainError{Code: ErrCodeExpired}
	ErrGenericError           = &DomainError{Code: ErrCodeGenericError}
	ErrNotFound               = &DomainError{Code: ErrCodeNotFound}
	ErrInvalid                = &DomainError{Code: ErrCodeInvalid}
	ErrOperationNotSupported  = &DomainError{Code: ErrCodeOperationNotSupported}
	ErrPaymentNotFound        = &DomainError{Code: ErrCodePaymentNotFound}
	ErrCartNotFound           = &DomainError{Code: ErrCodeCartNotFound}
	ErrConcurrentModification = &DomainError{Code: ErrCodeConcurrentModification}
)

func messageOr(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}

func NewCurrencyNotMatchError(message string) *DomainError {
	return &DomainError{
		Code:       ErrCodeCurrencyNotMatch,
		Message:    messageOr(message, "Currency does not match"),
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewExpiredError(message string) *DomainError {
	return &DomainError{
		Code:       ErrCodeExpired,
		Message:    messageOr(message, "Gift card is expired"),
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewNotFoundError(message string) *DomainError {
	return &DomainError{
		Code:       ErrCodeNotFound,
		Message:    messageOr(message, "Gift card is not found"),
		HTTPStatus: http.StatusNotFound,
	}
}

func NewGenericError(message string) *DomainError {
	return &DomainError{
		Code:       ErrCodeGenericError,
		Message:    messageOr(message, "An error happened during this requests"),
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewInvalidError(message string) *DomainError {
	return &DomainError{
		Code:       ErrCodeInvalid,
		Message:    messageOr(message, "Request is invalid"),
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewOperationNotSupportedError(message string) *DomainError {
	return &DomainError{
		Code:       ErrCodeOperationNotSupported,
		Message:    messageOr(message, "operation not supported"),
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewPaymentNotFoundError(id string) *DomainError {
	return &DomainError{
		Code:       ErrCodePaymentNotFound,
		Message:    fmt.Sprintf("payment with ID %s not found", id),
		HTTPStatus: http.StatusNotFound,
	}
}

func NewCartNotFoundError(id string) *DomainError {
	return &DomainError{
		Code:       ErrCodeCartNotFound,
		Message:    fmt.Sprintf("cart with ID %s not found", id),
		HTTPStatus: http.StatusNotFound,
	}
}

func NewConcurrentModificationError(resource, id string, version int64) *DomainError {
	return &DomainError{
		Code:       ErrCodeConcurrentModification,
		Message:    fmt.Sprintf("%s %s was modified concurrently, version %d is stale", resource, id, version),
		HTTPStatus: http.StatusConflict,
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
