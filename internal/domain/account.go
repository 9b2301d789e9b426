package domain

import "github.com/google/uuid"

// CustomerIDCustomField names the account custom field holding the gateway customer id
const CustomerIDCustomField = "GATEWAY_CUSTOMER_ID"

// Account is the billing account as known to the account directory
type Account struct {
	ID          uuid.UUID `json:"accountId"`
	ExternalKey string    `json:"externalKey"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Currency    string    `json:"currency"`
}

// CallContext carries the tenant and caller of every operation
type CallContext struct {
	TenantID  uuid.UUID
	CreatedBy string
}
