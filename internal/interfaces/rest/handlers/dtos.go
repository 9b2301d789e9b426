package handlers

import (
	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionRequest struct {
	AccountID       uuid.UUID               `json:"account_id" validate:"required"`
	TransactionID   uuid.UUID               `json:"transaction_id" validate:"required"`
	PaymentMethodID *uuid.UUID              `json:"payment_method_id"`
	Amount          *decimal.Decimal        `json:"amount"`
	Currency        string                  `json:"currency" validate:"omitempty,len=3"`
	Properties      []domain.PluginProperty `json:"properties"`
}

type AddPaymentMethodRequest struct {
	PaymentMethodID         uuid.UUID               `json:"payment_method_id" validate:"required"`
	ExternalPaymentMethodID string                  `json:"external_payment_method_id"`
	IsDefault               bool                    `json:"is_default"`
	Properties              []domain.PluginProperty `json:"properties"`
}

type PropertiesRequest struct {
	Properties []domain.PluginProperty `json:"properties"`
}

type NotificationRequest struct {
	Notification string                  `json:"notification" validate:"required"`
	Properties   []domain.PluginProperty `json:"properties"`
}
