package services

import (
	"context"
	"fmt"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/application"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
	"github.com/google/uuid"
)

// customerMapping reads and writes the gateway customer id stored on the billing account
type customerMapping struct {
	accounts application.AccountDirectory
}

func (m customerMapping) get(ctx context.Context, accountID uuid.UUID, cc domain.CallContext) (string, error) {
	customerID, err := m.accounts.GetCustomField(ctx, accountID, domain.CustomerIDCustomField, cc)
	if err != nil {
		return "", fmt.Errorf("read gateway customer id for account %s: %w", accountID, err)
	}
	return customerID, nil
}

// ensure creates the mapping when the account has none. A mapping to another customer
// is never overwritten.
func (m customerMapping) ensure(ctx context.Context, accountID uuid.UUID, customerID string, cc domain.CallContext) error {
	existing, err := m.get(ctx, accountID, cc)
	if err != nil {
		return err
	}

	switch existing {
	case customerID:
		return nil
	case "":
		if err := m.accounts.AddCustomField(ctx, accountID, domain.CustomerIDCustomField, customerID, cc); err != nil {
			return fmt.Errorf("store gateway customer id for account %s: %w", accountID, err)
		}
		return nil
	}

	return application.NewPreconditionError(fmt.Sprintf("customerId is %s but account already mapped to %s", customerID, existing))
}

// resolve returns the customer id supplied in properties, mapping it first, or the one
// already stored on the account. It returns "" when neither exists.
func (m customerMapping) resolve(ctx context.Context, accountID uuid.UUID, properties []domain.PluginProperty, cc domain.CallContext) (string, error) {
	if customerID := domain.FindPropertyValue(domain.PropertyCustomerID, properties); customerID != "" {
		if err := m.ensure(ctx, accountID, customerID, cc); err != nil {
			return "", err
		}
		return customerID, nil
	}
	return m.get(ctx, accountID, cc)
}
