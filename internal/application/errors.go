package application

import (
	"errors"
	"fmt"
	"net/http"
)

// APPLICATION-LEVEL ERRORS (Orchestration)

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeConnectivity       = "GATEWAY_CONNECTIVITY"
	ErrCodePersistence        = "PERSISTENCE_FAILURE"
	ErrCodePaymentNotRecorded = "PAYMENT_NOT_RECORDED"
	ErrCodePrecondition       = "PRECONDITION_FAILED"
	ErrCodeUnsupported        = "UNSUPPORTED_OPERATION"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeInternal           = "INTERNAL_ERROR"
	ErrCodeInvalidInput       = "INVALID_INPUT"
)

// NewConnectivityError covers an unreachable gateway or one that refused the call
func NewConnectivityError(message string, err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeConnectivity,
		Message:    message,
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

func NewPersistenceError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodePersistence,
		Message:    "database error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewPaymentNotRecordedError is raised when the gateway moved money but the response row
// could not be written. The caller has to reconcile by hand.
func NewPaymentNotRecordedError(details string, err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodePaymentNotRecorded,
		Message:    fmt.Sprintf("Payment went through, but we encountered a database error. Payment details: %s", details),
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewPreconditionError(message string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodePrecondition,
		Message:    message,
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

func NewUnsupportedOperationError(operation string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeUnsupported,
		Message:    fmt.Sprintf("%s is not supported by this plugin", operation),
		HTTPStatus: http.StatusNotImplemented,
	}
}

func NewNotFoundError(message string, err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeNotFound,
		Message:    message,
		HTTPStatus: http.StatusNotFound,
		Err:        err,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewInvalidInputError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidInput,
		Message:    "Invalid input",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}

// HasCode reports whether err is a ServiceError with the given code
func HasCode(err error, code string) bool {
	svcErr, ok := IsServiceError(err)
	return ok && svcErr.Code == code
}
