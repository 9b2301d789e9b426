package services

import (
	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionCommand carries one billing transaction. PaymentMethodID is nil when the
// platform sends none; Amount and Currency are ignored for VOID.
type TransactionCommand struct {
	AccountID       uuid.UUID
	PaymentID       uuid.UUID
	TransactionID   uuid.UUID
	PaymentMethodID *uuid.UUID
	Amount          *decimal.Decimal
	Currency        string
	Properties      []domain.PluginProperty
}

type AddPaymentMethodCommand struct {
	AccountID       uuid.UUID
	PaymentMethodID uuid.UUID
	// ExternalPaymentMethodID is the gateway token of a method created directly at the
	// gateway. Only read when no nonce is supplied.
	ExternalPaymentMethodID string
	SetDefault              bool
	Properties              []domain.PluginProperty
	QueryProperties         []domain.PluginProperty
}
