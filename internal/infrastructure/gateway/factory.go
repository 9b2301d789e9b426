package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/application"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/config"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
)

// Factory builds and caches one decorated client per tenant
type Factory struct {
	cfg       config.GatewayConfig
	retry     config.RetryConfig
	rateLimit config.RateLimitConfig
	validate  *validator.Validate
	logger    *slog.Logger

	mu      sync.Mutex
	clients map[uuid.UUID]application.GatewayClient
}

func NewFactory(cfg config.GatewayConfig, retry config.RetryConfig, rateLimit config.RateLimitConfig, logger *slog.Logger) *Factory {
	return &Factory{
		cfg:       cfg,
		retry:     retry,
		rateLimit: rateLimit,
		validate:  validator.New(),
		logger:    logger,
		clients:   make(map[uuid.UUID]application.GatewayClient),
	}
}

func (f *Factory) ForTenant(ctx context.Context, tenantID uuid.UUID) (application.GatewayClient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if client, ok := f.clients[tenantID]; ok {
		return client, nil
	}

	tenantCfg := f.cfg.ForTenant(tenantID)
	if err := f.validate.Struct(tenantCfg); err != nil {
		return nil, fmt.Errorf("invalid gateway configuration for tenant %s: %w", tenantID, err)
	}

	client := NewInstrumentedClient(
		NewRetryClient(NewClient(tenantCfg, f.rateLimit), f.retry),
		tenantID.String(),
	)
	f.clients[tenantID] = client

	f.logger.Info("gateway client created",
		"tenant_id", tenantID,
		"base_url", tenantCfg.BaseURL,
		"merchant_id", tenantCfg.MerchantID,
	)

	return client, nil
}
