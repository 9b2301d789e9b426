package testhelpers

import (
	"time"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewResponse builds an unsaved response row for the given payment
func NewResponse(tenantID, accountID, paymentID uuid.UUID, txnType domain.TransactionType, amount int64, gatewayStatus domain.GatewayStatus, success bool) *domain.TransactionResponse {
	gatewayID := "txn-" + uuid.NewString()[:8]
	r := &domain.TransactionResponse{
		AccountID:            accountID,
		PaymentID:            paymentID,
		TransactionID:        uuid.New(),
		TransactionType:      txnType,
		GatewayTransactionID: gatewayID,
		Success:              success,
		GatewayResponse: map[string]any{
			"success": success,
			"id":      gatewayID,
			"status":  string(gatewayStatus),
		},
		AdditionalData: map[string]any{},
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
		TenantID:       tenantID,
	}
	if txnType != domain.TransactionTypeVoid {
		a := decimal.NewFromInt(amount)
		currency := "USD"
		r.Amount = &a
		r.Currency = &currency
	}
	return r
}

// NewPaymentMethod builds an unsaved active payment method
func NewPaymentMethod(tenantID, accountID uuid.UUID, token string) *domain.PaymentMethod {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.PaymentMethod{
		AccountID:       accountID,
		PaymentMethodID: uuid.New(),
		GatewayToken:    token,
		IsActive:        true,
		AdditionalData:  map[string]any{"token": token, "last4": "1111"},
		CreatedAt:       now,
		UpdatedAt:       now,
		TenantID:        tenantID,
	}
}

// GatewayPaymentMethod builds a gateway-side card for a customer
func GatewayPaymentMethod(customerID, token string) domain.GatewayPaymentMethod {
	return domain.GatewayPaymentMethod{
		Token:      token,
		CustomerID: customerID,
		Type:       domain.PaymentMethodTypeCard,
		Details: map[string]any{
			"last4":             "1111",
			"card_type":         "Visa",
			"customer_location": "US",
		},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

// TransactionResult builds a successful gateway result with the given status
func TransactionResult(status domain.GatewayStatus, amount decimal.Decimal) *domain.TransactionResult {
	return &domain.TransactionResult{
		Success: true,
		Transaction: &domain.GatewayTransaction{
			ID:              "gw-" + uuid.NewString()[:8],
			Status:          status,
			Amount:          amount,
			CurrencyISOCode: "USD",
			CreatedAt:       time.Now().UTC(),
		},
	}
}
