package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type PaymentMethodType string

const (
	PaymentMethodTypeCard   PaymentMethodType = "CARD"
	PaymentMethodTypePayPal PaymentMethodType = "PAYPAL"
)

// ParsePaymentMethodType defaults to CARD when raw is empty
func ParsePaymentMethodType(raw string) (PaymentMethodType, error) {
	switch PaymentMethodType(strings.ToUpper(strings.TrimSpace(raw))) {
	case "", PaymentMethodTypeCard:
		return PaymentMethodTypeCard, nil
	case PaymentMethodTypePayPal:
		return PaymentMethodTypePayPal, nil
	}
	return "", &DomainError{
		Code:    ErrCodeUnknownPaymentMethodType,
		Message: fmt.Sprintf("unknown payment method type %q", raw),
	}
}

// PaymentMethod is the local record of a billing payment method and its gateway token
type PaymentMethod struct {
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

// EmptyPaymentMethod is the placeholder used when no local record exists
func EmptyPaymentMethod(paymentMethodID uuid.UUID) *PaymentMethod {
	return &PaymentMethod{
		PaymentMethodID: paymentMethodID,
		AdditionalData:  map[string]any{},
	}
}

// PaymentMethodDetail is the view returned for a single payment method
type PaymentMethodDetail struct {
	PaymentMethodID         uuid.UUID      `json:"payment_method_id"`
	ExternalPaymentMethodID string         `json:"external_payment_method_id"`
	IsDefault               bool           `json:"is_default"`
	Properties              map[string]any `json:"properties"`
}

func NewPaymentMethodDetail(pm *PaymentMethod) PaymentMethodDetail {
	props := pm.AdditionalData
	if props == nil {
		props = map[string]any{}
	}
	return PaymentMethodDetail{
		PaymentMethodID:         pm.PaymentMethodID,
		ExternalPaymentMethodID: pm.GatewayToken,
		IsDefault:               pm.IsDefault,
		Properties:              props,
	}
}

// PaymentMethodInfo is the listing entry for an account's payment methods
type PaymentMethodInfo struct {
	AccountID               uuid.UUID `json:"account_id"`
	PaymentMethodID         uuid.UUID `json:"payment_method_id"`
	IsDefault               bool      `json:"is_default"`
	ExternalPaymentMethodID string    `json:"external_payment_method_id"`
}

func NewPaymentMethodInfo(pm *PaymentMethod) PaymentMethodInfo {
	return PaymentMethodInfo{
		AccountID:               pm.AccountID,
		PaymentMethodID:         pm.PaymentMethodID,
		IsDefault:               pm.IsDefault,
		ExternalPaymentMethodID: pm.GatewayToken,
	}
}

// AdditionalDataFromGateway flattens a gateway payment method into the attribute bag kept
// on the local record. Gateway details are copied first so the identity keys always win.
func AdditionalDataFromGateway(gm *GatewayPaymentMethod) map[string]any {
	data := make(map[string]any, len(gm.Details)+5)
	for k, v := range gm.Details {
		if v != nil {
			data[k] = v
		}
	}
	data["token"] = gm.Token
	data[PropertyCustomerID] = gm.CustomerID
	data[PropertyPaymentMethodType] = string(gm.Type)
	data["default"] = gm.Default
	if gm.ImageURL != "" {
		data["image_url"] = gm.ImageURL
	}
	return data
}
