package billing

import (
	"errors"
	"fmt"
)

// Error is a non-2xx answer from the billing platform
type Error struct {
	StatusCode int
	Code       string
	Message    string
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("billing platform error [%s]: %s (status: %d)", e.Code, e.Message, e.StatusCode)
}

func (e *Error) IsRetryable() bool {
	return e.StatusCode >= 500
}

func IsBillingError(err error) (*Error, bool) {
	var billingErr *Error
	ok := errors.As(err, &billingErr)
	return billingErr, ok
}
