package gateway

import (
	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	transactionTypeSale   = "sale"
	transactionTypeCredit = "credit"
)

type nonceRequest struct {
	PaymentMethodToken string `json:"payment_method_token"`
}

type nonceResponse struct {
	Nonce string `json:"nonce"`
}

type transactionOptions struct {
	SubmitForSettlement bool `json:"submit_for_settlement"`
}

type transactionRequest struct {
	Type               string             `json:"type"`
	Amount             decimal.Decimal    `json:"amount"`
	OrderID            string             `json:"order_id,omitempty"`
	CustomerID         string             `json:"customer_id,omitempty"`
	PaymentMethodNonce string             `json:"payment_method_nonce"`
	Options            transactionOptions `json:"options"`
}

type amountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type paymentMethodRequest struct {
	CustomerID         string `json:"customer_id"`
	Token              string `json:"token"`
	PaymentMethodNonce string `json:"payment_method_nonce"`
	Type               string `json:"type"`
}

type paymentMethodEnvelope struct {
	PaymentMethod domain.GatewayPaymentMethod `json:"payment_method"`
}

type paymentMethodListResponse struct {
	PaymentMethods []domain.GatewayPaymentMethod `json:"payment_methods"`
}
