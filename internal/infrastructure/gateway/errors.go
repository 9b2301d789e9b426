package gateway

import (
	"errors"
	"fmt"
)

// Error is a refusal from the gateway API that carries no transaction result
type Error struct {
	Code       string
	Message    string
	StatusCode int
}

type errorResponse struct {
	Err     string `json:"error"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("gateway error [%s]: %s (status: %d)", e.Code, e.Message, e.StatusCode)
}

func (e *Error) IsRetryable() bool {
	return e.StatusCode >= 500
}

func IsGatewayError(err error) (*Error, bool) {
	var gwErr *Error
	ok := errors.As(err, &gwErr)
	return gwErr, ok
}
