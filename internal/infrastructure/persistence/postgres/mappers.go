package postgres

import (
	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
	"github.com/shopspring/decimal"
)

// toDomainResponse: maps db model to domain record
func toDomainResponse(m ResponseModel) *domain.TransactionResponse {
	r := &domain.TransactionResponse{
		RecordID:        m.RecordID,
		AccountID:       m.AccountID,
		PaymentID:       m.PaymentID,
		TransactionID:   m.TransactionID,
		TransactionType: domain.TransactionType(m.TransactionType),
		Currency:        m.Currency,
		Success:         m.Success,
		GatewayResponse: nonNilMap(m.GatewayResponse),
		AdditionalData:  nonNilMap(m.AdditionalData),
		CreatedAt:       m.CreatedAt,
		TenantID:        m.TenantID,
	}
	if m.Amount.Valid {
		amount := m.Amount.Decimal
		r.Amount = &amount
	}
	if m.GatewayTransactionID != nil {
		r.GatewayTransactionID = *m.GatewayTransactionID
	}
	return r
}

// toResponseModel: maps domain record to db model
func toResponseModel(r *domain.TransactionResponse) ResponseModel {
	m := ResponseModel{
		AccountID:       r.AccountID,
		PaymentID:       r.PaymentID,
		TransactionID:   r.TransactionID,
		TransactionType: string(r.TransactionType),
		Currency:        r.Currency,
		Success:         r.Success,
		GatewayResponse: nonNilMap(r.GatewayResponse),
		AdditionalData:  nonNilMap(r.AdditionalData),
		CreatedAt:       r.CreatedAt,
		TenantID:        r.TenantID,
	}
	if r.Amount != nil {
		m.Amount = decimal.NullDecimal{Decimal: *r.Amount, Valid: true}
	}
	if r.GatewayTransactionID != "" {
		id := r.GatewayTransactionID
		m.GatewayTransactionID = &id
	}
	return m
}

func toDomainPaymentMethod(m PaymentMethodModel) *domain.PaymentMethod {
	return &domain.PaymentMethod{
		RecordID:        m.RecordID,
		AccountID:       m.AccountID,
		PaymentMethodID: m.PaymentMethodID,
		GatewayToken:    m.GatewayToken,
		IsDefault:       m.IsDefault,
		IsActive:        m.IsActive,
		AdditionalData:  nonNilMap(m.AdditionalData),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		TenantID:        m.TenantID,
	}
}

func nonNilMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
