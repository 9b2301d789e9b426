package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GatewayStatus is the transaction status as reported by the gateway
type GatewayStatus string

const (
	GatewayStatusAuthorizationExpired   GatewayStatus = "AUTHORIZATION_EXPIRED"
	GatewayStatusAuthorized             GatewayStatus = "AUTHORIZED"
	GatewayStatusAuthorizing            GatewayStatus = "AUTHORIZING"
	GatewayStatusSettlementPending      GatewayStatus = "SETTLEMENT_PENDING"
	GatewayStatusSettlementConfirmed    GatewayStatus = "SETTLEMENT_CONFIRMED"
	GatewayStatusSettlementDeclined     GatewayStatus = "SETTLEMENT_DECLINED"
	GatewayStatusFailed                 GatewayStatus = "FAILED"
	GatewayStatusGatewayRejected        GatewayStatus = "GATEWAY_REJECTED"
	GatewayStatusProcessorDeclined      GatewayStatus = "PROCESSOR_DECLINED"
	GatewayStatusSettled                GatewayStatus = "SETTLED"
	GatewayStatusSettling               GatewayStatus = "SETTLING"
	GatewayStatusSubmittedForSettlement GatewayStatus = "SUBMITTED_FOR_SETTLEMENT"
	GatewayStatusVoided                 GatewayStatus = "VOIDED"
)

// IsDoneProcessing reports whether the gateway will not move the transaction any further
// without another call from us.
func (s GatewayStatus) IsDoneProcessing() bool {
	switch s {
	case GatewayStatusSettled,
		GatewayStatusSettlementConfirmed,
		GatewayStatusVoided,
		GatewayStatusFailed,
		GatewayStatusGatewayRejected,
		GatewayStatusProcessorDeclined,
		GatewayStatusSettlementDeclined,
		GatewayStatusAuthorizationExpired,
		GatewayStatusAuthorized:
		return true
	}
	return false
}

// ChargeRequest is a sale at the gateway. OrderID carries the billing transaction id
// so the gateway can reject duplicate submissions.
type ChargeRequest struct {
	OrderID             string          `json:"order_id"`
	Amount              decimal.Decimal `json:"amount"`
	CustomerID          string          `json:"customer_id,omitempty"`
	PaymentMethodNonce  string          `json:"payment_method_nonce"`
	SubmitForSettlement bool            `json:"submit_for_settlement"`
}

type CreditRequest struct {
	Amount             decimal.Decimal `json:"amount"`
	CustomerID         string          `json:"customer_id,omitempty"`
	PaymentMethodNonce string          `json:"payment_method_nonce"`
}

type CreatePaymentMethodRequest struct {
	CustomerID         string            `json:"customer_id"`
	Token              string            `json:"token"`
	PaymentMethodNonce string            `json:"payment_method_nonce"`
	Type               PaymentMethodType `json:"type"`
}

// GatewayTransaction is the gateway's view of a single transaction
type GatewayTransaction struct {
	ID                    string          `json:"id"`
	Type                  string          `json:"type"`
	Status                GatewayStatus   `json:"status"`
	Amount                decimal.Decimal `json:"amount"`
	CurrencyISOCode       string          `json:"currency_iso_code"`
	OrderID               string          `json:"order_id,omitempty"`
	CustomerID            string          `json:"customer_id,omitempty"`
	PaymentMethodToken    string          `json:"payment_method_token,omitempty"`
	ProcessorResponseCode string          `json:"processor_response_code,omitempty"`
	ProcessorResponseText string          `json:"processor_response_text,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

type ValidationError struct {
	Attribute string `json:"attribute"`
	Code      string `json:"code"`
	Message   string `json:"message"`
}

// TransactionResult is the outcome of a money-moving gateway call. A declined or
// rejected transaction is a result with Success=false, not an error.
type TransactionResult struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message,omitempty"`
	Transaction *GatewayTransaction `json:"transaction,omitempty"`
	Errors      []ValidationError   `json:"errors,omitempty"`
}

// GatewayTransactionID returns the gateway id, or "" when the gateway created no transaction
func (r *TransactionResult) GatewayTransactionID() string {
	if r == nil || r.Transaction == nil {
		return ""
	}
	return r.Transaction.ID
}

// ToMap flattens the outcome into the raw-response bag stored with the response row
func (r *TransactionResult) ToMap() map[string]any {
	m := map[string]any{
		"success": r.Success,
	}
	if r.Message != "" {
		m["message"] = r.Message
	}
	if len(r.Errors) > 0 {
		errs := make([]any, 0, len(r.Errors))
		for _, e := range r.Errors {
			errs = append(errs, map[string]any{"attribute": e.Attribute, "code": e.Code, "message": e.Message})
		}
		m["errors"] = errs
	}
	if t := r.Transaction; t != nil {
		m["id"] = t.ID
		m["type"] = t.Type
		m["status"] = string(t.Status)
		m["amount"] = t.Amount.String()
		m["currency_iso_code"] = t.CurrencyISOCode
		m["order_id"] = t.OrderID
		m["customer_id"] = t.CustomerID
		m["payment_method_token"] = t.PaymentMethodToken
		m["processor_response_code"] = t.ProcessorResponseCode
		m["processor_response_text"] = t.ProcessorResponseText
		if !t.CreatedAt.IsZero() {
			m["created_at"] = t.CreatedAt.Format(time.RFC3339)
		}
	}
	return m
}

// GatewayPaymentMethod is a stored payment method as the gateway reports it
type GatewayPaymentMethod struct {
	Token      string            `json:"token"`
	CustomerID string            `json:"customer_id"`
	Type       PaymentMethodType `json:"type"`
	Default    bool              `json:"default"`
	ImageURL   string            `json:"image_url,omitempty"`
	Details    map[string]any    `json:"details,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

type PaymentMethodResult struct {
	Success       bool                  `json:"success"`
	Message       string                `json:"message,omitempty"`
	PaymentMethod *GatewayPaymentMethod `json:"payment_method,omitempty"`
	Errors        []ValidationError     `json:"errors,omitempty"`
}

// Result is the outcome of a gateway call that returns no resource
type Result struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Errors  []ValidationError `json:"errors,omitempty"`
}
