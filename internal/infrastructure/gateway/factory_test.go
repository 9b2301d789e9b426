package gateway_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/config"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/infrastructure/gateway"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_CachesClientPerTenant(t *testing.T) {
	tenantA := uuid.New()
	tenantB := uuid.New()

	factory := gateway.NewFactory(config.GatewayConfig{
		Defaults: config.TenantConfig{BaseURL: "http://gateway.local"},
		Tenants: map[string]config.TenantConfig{
			tenantB.String(): {BaseURL: "http://other-gateway.local", MerchantID: "m-b"},
		},
	}, config.RetryConfig{MaxRetries: 1}, config.RateLimitConfig{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx := context.Background()

	first, err := factory.ForTenant(ctx, tenantA)
	require.NoError(t, err)
	second, err := factory.ForTenant(ctx, tenantA)
	require.NoError(t, err)
	other, err := factory.ForTenant(ctx, tenantB)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
}

func TestFactory_RejectsTenantWithoutGatewayURL(t *testing.T) {
	factory := gateway.NewFactory(config.GatewayConfig{}, config.RetryConfig{}, config.RateLimitConfig{},
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	client, err := factory.ForTenant(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "invalid gateway configuration")
}
