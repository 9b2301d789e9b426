package postgres

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ResponseModel mirrors a gateway_responses row. Amount and currency are NULL for VOID.
type ResponseModel struct {
	RecordID             int64
	AccountID            uuid.UUID
	PaymentID            uuid.UUID
	TransactionID        uuid.UUID
	TransactionType      string
	Amount               decimal.NullDecimal
	Currency             *string
	GatewayTransactionID *string
	Success              bool
	GatewayResponse      map[string]any
	AdditionalData       map[string]any
	CreatedAt            time.Time
	TenantID             uuid.UUID
}

// PaymentMethodModel mirrors a gateway_payment_methods row
type PaymentMethodModel struct {
	RecordID        int64
	AccountID       uuid.UUID
	PaymentMethodID uuid.UUID
	GatewayToken    string
	IsDefault       bool
	IsActive        bool
	AdditionalData  map[string]any
	CreatedAt       time.Time
	UpdatedAt       time.Time
	TenantID        uuid.UUID
}
