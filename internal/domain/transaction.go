// Package domain holds the gateway response records, payment method records and the
// views the billing platform reads back.
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeAuthorize TransactionType = "AUTHORIZE"
	TransactionTypeCapture   TransactionType = "CAPTURE"
	TransactionTypePurchase  TransactionType = "PURCHASE"
	TransactionTypeVoid      TransactionType = "VOID"
	TransactionTypeCredit    TransactionType = "CREDIT"
	TransactionTypeRefund    TransactionType = "REFUND"
)

func ParseTransactionType(raw string) (TransactionType, error) {
	t := TransactionType(strings.ToUpper(raw))
	switch t {
	case TransactionTypeAuthorize, TransactionTypeCapture, TransactionTypePurchase,
		TransactionTypeVoid, TransactionTypeCredit, TransactionTypeRefund:
		return t, nil
	}
	return "", &DomainError{
		Code:    ErrCodeUnknownTransactionType,
		Message: fmt.Sprintf("unknown transaction type %q", raw),
	}
}

// IsInitial reports whether the type starts a payment rather than acting on a prior one
func (t TransactionType) IsInitial() bool {
	return t == TransactionTypeAuthorize || t == TransactionTypePurchase || t == TransactionTypeCredit
}

// PluginStatus is the status reported back to the billing platform
type PluginStatus string

const (
	PluginStatusProcessed PluginStatus = "PROCESSED"
	PluginStatusPending   PluginStatus = "PENDING"
	PluginStatusError     PluginStatus = "ERROR"
	PluginStatusCanceled  PluginStatus = "CANCELED"
	PluginStatusUndefined PluginStatus = "UNDEFINED"
)

// TransactionResponse is the durable record of one gateway interaction. Everything but
// AdditionalData is written once.
type TransactionResponse struct {
	RecordID             int64
	AccountID            uuid.UUID
	PaymentID            uuid.UUID
	TransactionID        uuid.UUID
	TransactionType      TransactionType
	Amount               *decimal.Decimal
	Currency             *string
	GatewayTransactionID string
	Success              bool
	GatewayResponse      map[string]any
	AdditionalData       map[string]any
	CreatedAt            time.Time
	TenantID             uuid.UUID
}

// GatewayStatus is the latest known gateway status: a refreshed value wins over the
// status captured when the row was written.
func (r *TransactionResponse) GatewayStatus() GatewayStatus {
	if s, ok := r.AdditionalData[PropertyGatewayTransactionStatus].(string); ok && s != "" {
		return GatewayStatus(s)
	}
	if s, ok := r.GatewayResponse["status"].(string); ok {
		return GatewayStatus(s)
	}
	return ""
}

// PluginStatus derives the status reported for the row
func (r *TransactionResponse) PluginStatus() PluginStatus {
	if s, ok := r.AdditionalData[PropertyOverriddenTransactionStatus].(string); ok && s != "" {
		return PluginStatus(s)
	}

	switch r.GatewayStatus() {
	case GatewayStatusAuthorized,
		GatewayStatusSubmittedForSettlement,
		GatewayStatusSettling,
		GatewayStatusSettlementPending,
		GatewayStatusSettled,
		GatewayStatusSettlementConfirmed,
		GatewayStatusVoided:
		return PluginStatusProcessed
	case GatewayStatusAuthorizing:
		return PluginStatusPending
	case GatewayStatusFailed,
		GatewayStatusGatewayRejected,
		GatewayStatusProcessorDeclined,
		GatewayStatusSettlementDeclined:
		return PluginStatusError
	case GatewayStatusAuthorizationExpired:
		return PluginStatusCanceled
	}

	if !r.Success {
		return PluginStatusError
	}
	return PluginStatusUndefined
}

// TransactionInfo is the billing-facing view of a TransactionResponse
type TransactionInfo struct {
	AccountID               uuid.UUID        `json:"account_id"`
	PaymentID               uuid.UUID        `json:"payment_id"`
	TransactionID           uuid.UUID        `json:"transaction_id"`
	TransactionType         TransactionType  `json:"transaction_type"`
	Amount                  *decimal.Decimal `json:"amount"`
	Currency                *string          `json:"currency"`
	Status                  PluginStatus     `json:"status"`
	GatewayError            string           `json:"gateway_error,omitempty"`
	GatewayErrorCode        string           `json:"gateway_error_code,omitempty"`
	FirstPaymentReferenceID string           `json:"first_payment_reference_id,omitempty"`
	CreatedDate             time.Time        `json:"created_date"`
	EffectiveDate           time.Time        `json:"effective_date"`
	Properties              map[string]any   `json:"properties"`

	response *TransactionResponse
}

func NewTransactionInfo(r *TransactionResponse) TransactionInfo {
	status := r.PluginStatus()

	props := make(map[string]any, len(r.GatewayResponse)+len(r.AdditionalData))
	for k, v := range r.GatewayResponse {
		props[k] = v
	}
	for k, v := range r.AdditionalData {
		props[k] = v
	}

	info := TransactionInfo{
		AccountID:               r.AccountID,
		PaymentID:               r.PaymentID,
		TransactionID:           r.TransactionID,
		TransactionType:         r.TransactionType,
		Amount:                  r.Amount,
		Currency:                r.Currency,
		Status:                  status,
		FirstPaymentReferenceID: r.GatewayTransactionID,
		CreatedDate:             r.CreatedAt,
		EffectiveDate:           r.CreatedAt,
		Properties:              props,
		response:                r,
	}

	if status == PluginStatusError || status == PluginStatusCanceled {
		if msg, ok := props["message"].(string); ok {
			info.GatewayError = msg
		}
		if code, ok := r.GatewayResponse["processor_response_code"].(string); ok {
			info.GatewayErrorCode = code
		}
	}

	return info
}

// Response returns the row the view was built from
func (i TransactionInfo) Response() *TransactionResponse {
	return i.response
}

// NewTransactionInfos builds views in the order the rows were given
func NewTransactionInfos(rows []*TransactionResponse) []TransactionInfo {
	infos := make([]TransactionInfo, 0, len(rows))
	for _, r := range rows {
		infos = append(infos, NewTransactionInfo(r))
	}
	return infos
}
