package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/observability"
	"github.com/google/uuid"
)

// reconcilePaymentMethods applies the gateway list, the source of truth, to the local
// set. existingByToken is consumed: whatever the gateway did not report is deactivated.
// Nothing is ever pushed to the gateway.
func (s *PaymentMethodService) reconcilePaymentMethods(
	ctx context.Context,
	accountID uuid.UUID,
	gatewayMethods []domain.GatewayPaymentMethod,
	existingByToken map[string]*domain.PaymentMethod,
	cc domain.CallContext,
) error {
	var added, updated, deactivated, skipped int
	now := s.now().UTC()

	for i := range gatewayMethods {
		gm := &gatewayMethods[i]
		data := domain.AdditionalDataFromGateway(gm)

		existing, ok := existingByToken[gm.Token]
		delete(existingByToken, gm.Token)

		if !ok {
			if err := s.adoptGatewayMethod(ctx, accountID, gm, data, cc); err != nil {
				s.logger.Warn("skipping gateway payment method",
					"account_id", accountID,
					"gateway_token", gm.Token,
					"error", err,
				)
				skipped++
				continue
			}
			added++
			continue
		}

		existing.GatewayToken = gm.Token
		existing.IsDefault = gm.Default
		existing.AdditionalData = data
		existing.UpdatedAt = now
		if err := s.store.UpdatePaymentMethod(ctx, existing); err != nil {
			return fmt.Errorf("update payment method %s: %w", existing.PaymentMethodID, err)
		}
		updated++
	}

	for token, pm := range existingByToken {
		s.logger.Info("deactivating local payment method not found in gateway",
			"account_id", accountID,
			"payment_method_id", pm.PaymentMethodID,
			"gateway_token", token,
		)
		if err := s.store.DeactivatePaymentMethod(ctx, pm.PaymentMethodID, cc.TenantID, now); err != nil {
			if errors.Is(err, domain.ErrPaymentMethodNotFound) {
				continue
			}
			return fmt.Errorf("deactivate payment method %s: %w", pm.PaymentMethodID, err)
		}
		deactivated++
	}

	observability.RecordPaymentMethodSync("added", added)
	observability.RecordPaymentMethodSync("updated", updated)
	observability.RecordPaymentMethodSync("deactivated", deactivated)
	observability.RecordPaymentMethodSync("skipped", skipped)

	s.logger.Info("payment methods reconciled",
		"account_id", accountID,
		"added", added,
		"updated", updated,
		"deactivated", deactivated,
		"skipped", skipped,
	)
	return nil
}

// adoptGatewayMethod registers a gateway-only method with the billing platform and
// stores it under the id the platform assigned
func (s *PaymentMethodService) adoptGatewayMethod(ctx context.Context, accountID uuid.UUID, gm *domain.GatewayPaymentMethod, data map[string]any, cc domain.CallContext) error {
	s.logger.Info("creating local payment method from gateway", "account_id", accountID, "gateway_token", gm.Token)

	paymentMethodID, err := s.registry.RegisterPaymentMethod(ctx, accountID, gm.Token, gm.Default, domain.MapToProperties(data), cc)
	if err != nil {
		return fmt.Errorf("register with billing platform: %w", err)
	}

	now := s.now().UTC()
	return s.store.AddPaymentMethod(ctx, &domain.PaymentMethod{
		AccountID:       accountID,
		PaymentMethodID: paymentMethodID,
		GatewayToken:    gm.Token,
		IsDefault:       gm.Default,
		IsActive:        true,
		AdditionalData:  data,
		CreatedAt:       now,
		UpdatedAt:       now,
		TenantID:        cc.TenantID,
	})
}
