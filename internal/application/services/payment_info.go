package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/application"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/config"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/observability"
	"github.com/google/uuid"
)

// PaymentInfoService serves the transaction history of a payment. Every read first
// applies the expiry policy, then refreshes rows the gateway has not finished with.
type PaymentInfoService struct {
	responses     application.ResponseStore
	gateways      application.GatewayClientFactory
	gatewayConfig config.GatewayConfig
	logger        *slog.Logger
	now           func() time.Time
}

func NewPaymentInfoService(
	responses application.ResponseStore,
	gateways application.GatewayClientFactory,
	gatewayConfig config.GatewayConfig,
	logger *slog.Logger,
) *PaymentInfoService {
	return &PaymentInfoService{
		responses:     responses,
		gateways:      gateways,
		gatewayConfig: gatewayConfig,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *PaymentInfoService) GetPaymentInfo(ctx context.Context, accountID, paymentID uuid.UUID, cc domain.CallContext) ([]domain.TransactionInfo, error) {
	transactions, err := s.load(ctx, paymentID, cc.TenantID)
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		// unknown payment, e.g. aborted before reaching the gateway
		return transactions, nil
	}

	tenantCfg := s.gatewayConfig.ForTenant(cc.TenantID)
	policy := NewExpiredPaymentPolicy(s.now, tenantCfg.PendingExpirationPeriod, tenantCfg.AuthorizationExpirationPeriod)
	if expired := policy.IsExpired(transactions); expired != nil {
		if err := s.expire(ctx, expired.Response(), tenantCfg, cc); err != nil {
			return nil, err
		}
		return s.load(ctx, paymentID, cc.TenantID)
	}

	var client application.GatewayClient
	refreshed := false
	for _, t := range transactions {
		r := t.Response()
		if !needsRefresh(t) || r.GatewayTransactionID == "" {
			continue
		}

		if client == nil {
			client, err = s.gateways.ForTenant(ctx, cc.TenantID)
			if err != nil {
				return nil, application.NewConnectivityError(gatewayConnectivityMessage, err)
			}
		}

		s.logger.Info("refreshing transaction status",
			"account_id", accountID,
			"payment_id", paymentID,
			"transaction_id", r.TransactionID,
			"gateway_transaction_id", r.GatewayTransactionID,
		)

		status, err := client.GetTransactionStatus(ctx, r.GatewayTransactionID)
		if err != nil {
			observability.RecordStatusRefresh("error")
			return nil, application.NewConnectivityError(gatewayConnectivityMessage, err)
		}
		observability.RecordStatusRefresh("ok")

		if _, err := s.responses.MergeResponseMetadata(ctx, r.TransactionID, cc.TenantID, map[string]any{
			domain.PropertyGatewayTransactionStatus: string(status),
		}); err != nil {
			return nil, application.NewPersistenceError(err)
		}
		refreshed = true
	}

	if !refreshed {
		return transactions, nil
	}
	return s.load(ctx, paymentID, cc.TenantID)
}

// expire cancels the transaction locally and, when the tenant asks for it, voids the
// authorization at the gateway. The remote void is best effort.
func (s *PaymentInfoService) expire(ctx context.Context, r *domain.TransactionResponse, tenantCfg config.TenantConfig, cc domain.CallContext) error {
	s.logger.Info("canceling expired transaction",
		"transaction_id", r.TransactionID,
		"gateway_transaction_id", r.GatewayTransactionID,
		"created_at", r.CreatedAt,
	)

	if _, err := s.responses.MergeResponseMetadata(ctx, r.TransactionID, cc.TenantID, map[string]any{
		domain.PropertyOverriddenTransactionStatus: string(domain.PluginStatusCanceled),
		domain.PropertyMessage:                     janitorCancelMessage,
	}); err != nil {
		return application.NewPersistenceError(err)
	}
	observability.RecordJanitorExpiration(string(r.TransactionType))

	if r.TransactionType != domain.TransactionTypeAuthorize || r.GatewayTransactionID == "" || !tenantCfg.ShouldVoidExpiredAuthorizations() {
		return nil
	}

	client, err := s.gateways.ForTenant(ctx, cc.TenantID)
	if err != nil {
		s.logger.Warn("skipping void of expired authorization", "transaction_id", r.TransactionID, "error", err)
		return nil
	}
	result, err := client.Void(ctx, r.GatewayTransactionID)
	switch {
	case err != nil:
		s.logger.Warn("void of expired authorization failed", "transaction_id", r.TransactionID, "error", err)
	case result != nil && !result.Success:
		s.logger.Warn("void of expired authorization declined", "transaction_id", r.TransactionID, "message", result.Message)
	}
	return nil
}

func (s *PaymentInfoService) load(ctx context.Context, paymentID, tenantID uuid.UUID) ([]domain.TransactionInfo, error) {
	rows, err := s.responses.GetResponses(ctx, paymentID, tenantID)
	if err != nil {
		return nil, application.NewPersistenceError(err)
	}
	return domain.NewTransactionInfos(rows), nil
}

func needsRefresh(t domain.TransactionInfo) bool {
	switch t.Status {
	case domain.PluginStatusPending, domain.PluginStatusUndefined:
		return true
	case domain.PluginStatusProcessed:
		return !t.Response().GatewayStatus().IsDoneProcessing()
	}
	return false
}
