package application

import (
	"context"
	"time"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GatewayClient is the port for the third-party payment gateway.
// A declined or rejected call is a result with Success=false; an error means the
// gateway could not be reached or refused the request outright.
type GatewayClient interface {
	CreateChargeToken(ctx context.Context, paymentMethodToken string) (string, error)
	Charge(ctx context.Context, req domain.ChargeRequest) (*domain.TransactionResult, error)
	Credit(ctx context.Context, req domain.CreditRequest) (*domain.TransactionResult, error)
	Capture(ctx context.Context, gatewayTransactionID string, amount decimal.Decimal) (*domain.TransactionResult, error)
	Void(ctx context.Context, gatewayTransactionID string) (*domain.TransactionResult, error)
	Refund(ctx context.Context, gatewayTransactionID string, amount decimal.Decimal) (*domain.TransactionResult, error)
	GetTransactionStatus(ctx context.Context, gatewayTransactionID string) (domain.GatewayStatus, error)

	CreatePaymentMethod(ctx context.Context, req domain.CreatePaymentMethodRequest) (*domain.PaymentMethodResult, error)
	GetPaymentMethod(ctx context.Context, token string) (*domain.GatewayPaymentMethod, error)
	ListPaymentMethods(ctx context.Context, customerID string) ([]domain.GatewayPaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, token string) (*domain.Result, error)
}

// GatewayClientFactory hands out the client configured for a tenant
type GatewayClientFactory interface {
	ForTenant(ctx context.Context, tenantID uuid.UUID) (GatewayClient, error)
}

// AccountDirectory is the billing platform's view of accounts and their custom fields
type AccountDirectory interface {
	GetAccount(ctx context.Context, accountID uuid.UUID, cc domain.CallContext) (*domain.Account, error)
	// GetCustomField returns "" when the field is not set
	GetCustomField(ctx context.Context, accountID uuid.UUID, name string, cc domain.CallContext) (string, error)
	AddCustomField(ctx context.Context, accountID uuid.UUID, name, value string, cc domain.CallContext) error
}

// PaymentMethodRegistry creates payment methods on the billing platform for methods that
// were first created directly at the gateway.
type PaymentMethodRegistry interface {
	RegisterPaymentMethod(ctx context.Context, accountID uuid.UUID, externalKey string, isDefault bool, properties []domain.PluginProperty, cc domain.CallContext) (uuid.UUID, error)
}

// ResponseStore persists one TransactionResponse per billing transaction
type ResponseStore interface {
	AddResponse(ctx context.Context, response *domain.TransactionResponse) (*domain.TransactionResponse, error)
	// GetResponses returns the rows of a payment in creation order
	GetResponses(ctx context.Context, paymentID, tenantID uuid.UUID) ([]*domain.TransactionResponse, error)
	// GetSuccessfulAuthorization returns domain.ErrTransactionNotFound when the payment has
	// no successful AUTHORIZE or PURCHASE
	GetSuccessfulAuthorization(ctx context.Context, paymentID, tenantID uuid.UUID) (*domain.TransactionResponse, error)
	// MergeResponseMetadata returns domain.ErrTransactionNotFound when no row exists
	MergeResponseMetadata(ctx context.Context, transactionID, tenantID uuid.UUID, metadata map[string]any) (*domain.TransactionResponse, error)
}

type PaymentMethodStore interface {
	// GetPaymentMethod returns domain.ErrPaymentMethodNotFound for missing or deactivated rows
	GetPaymentMethod(ctx context.Context, paymentMethodID, tenantID uuid.UUID) (*domain.PaymentMethod, error)
	ListPaymentMethods(ctx context.Context, accountID, tenantID uuid.UUID) ([]*domain.PaymentMethod, error)
	AddPaymentMethod(ctx context.Context, pm *domain.PaymentMethod) error
	UpdatePaymentMethod(ctx context.Context, pm *domain.PaymentMethod) error
	DeactivatePaymentMethod(ctx context.Context, paymentMethodID, tenantID uuid.UUID, at time.Time) error
}
