package giftcard

import (
	"errors"
	"fmt"
	"net/http"
)

// ProviderError is a non-2xx answer from the provider API.
type ProviderError struct {
	Code       string
	Message    string
	StatusCode int
}

type ProviderErrorResponse struct {
	Err     string `json:"error"`
	Message string `json:"message"`
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("giftcard provider error [%s]: %s (status: %d)", e.Code, e.Message, e.StatusCode)
}

// IsServerSide reports whether the provider itself failed, as opposed to rejecting the request.
func (e *ProviderError) IsServerSide() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

func IsProviderError(err error) (*ProviderError, bool) {
	var providerErr *ProviderError
	ok := errors.As(err, &providerErr)
	return providerErr, ok
}
