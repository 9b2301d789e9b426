package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
)

// ErrorCategory represents the nature of an error for logging and metrics
type ErrorCategory string

const (
	CategoryTransient      ErrorCategory = "TRANSIENT"
	CategoryPermanent      ErrorCategory = "PERMANENT"
	CategoryBusinessRule   ErrorCategory = "BUSINESS_RULE"
	CategoryClientError    ErrorCategory = "CLIENT_ERROR"
	CategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
)

type retryable interface {
	IsRetryable() bool
}

// CategorizeError determines the error category
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryTransient
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeInvalidInput, ErrCodeNotFound, ErrCodeUnsupported:
			return CategoryClientError
		case ErrCodePrecondition:
			return CategoryBusinessRule
		case ErrCodePersistence, ErrCodePaymentNotRecorded, ErrCodeInternal:
			return CategoryInfrastructure
		}
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return CategoryClientError
	}

	if errors.Is(err, domain.ErrTransactionNotFound) ||
		errors.Is(err, domain.ErrPaymentMethodNotFound) ||
		errors.Is(err, domain.ErrAccountNotFound) {
		return CategoryClientError
	}

	var r retryable
	if errors.As(err, &r) {
		if r.IsRetryable() {
			return CategoryTransient
		}
		return CategoryPermanent
	}

	return CategoryTransient
}

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	var domainErr *domain.DomainError
	switch {
	case errors.As(err, &domainErr):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrTransactionNotFound),
		errors.Is(err, domain.ErrPaymentMethodNotFound),
		errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	}

	return http.StatusInternalServerError
}

// ToErrorCode clear error code for API responses
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}

	switch {
	case errors.Is(err, domain.ErrTransactionNotFound):
		return "TRANSACTION_NOT_FOUND"
	case errors.Is(err, domain.ErrPaymentMethodNotFound):
		return "PAYMENT_METHOD_NOT_FOUND"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "ACCOUNT_NOT_FOUND"
	case errors.Is(err, context.DeadlineExceeded):
		return "TIMEOUT"
	}

	return ErrCodeInternal
}
