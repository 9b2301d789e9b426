package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business rule violation detected before any gateway call
type DomainError struct {
	Code    string
	Message string
	Err     error
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

var (
	ErrTransactionNotFound   = errors.New("transaction response not found")
	ErrPaymentMethodNotFound = errors.New("payment method not found")
	ErrAccountNotFound       = errors.New("account not found")
)

const (
	ErrCodeInvalidAmount            = "INVALID_AMOUNT"
	ErrCodeInvalidCurrency          = "INVALID_CURRENCY"
	ErrCodeMissingRequiredField     = "MISSING_REQUIRED_FIELD"
	ErrCodeUnknownTransactionType   = "UNKNOWN_TRANSACTION_TYPE"
	ErrCodeUnknownPaymentMethodType = "UNKNOWN_PAYMENT_METHOD_TYPE"
)

func NewMissingRequiredFieldError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingRequiredField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewInvalidAmountError(amount string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidAmount,
		Message: fmt.Sprintf("invalid amount %s", amount),
	}
}

func NewInvalidCurrencyError(currency string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidCurrency,
		Message: fmt.Sprintf("invalid currency %q", currency),
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
