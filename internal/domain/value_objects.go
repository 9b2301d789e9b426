package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Money struct {
	Amount   decimal.Decimal
	Currency string
}

// NewMoney validates a positive amount and an ISO-4217 style currency code
func NewMoney(amount *decimal.Decimal, currency string) (Money, error) {
	if amount == nil {
		return Money{}, NewMissingRequiredFieldError("amount")
	}
	if !amount.IsPositive() {
		return Money{}, NewInvalidAmountError(amount.String())
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return Money{}, NewInvalidCurrencyError(currency)
	}
	return Money{Amount: *amount, Currency: currency}, nil
}
