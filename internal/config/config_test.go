package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("PLUGIN_DATABASE__HOST", "localhost")
	t.Setenv("PLUGIN_DATABASE__PORT", "5432")
	t.Setenv("PLUGIN_DATABASE__USER", "plugin")
	t.Setenv("PLUGIN_DATABASE__PASSWORD", "secret")
	t.Setenv("PLUGIN_DATABASE__NAME", "plugin_db")
	t.Setenv("PLUGIN_GATEWAY__DEFAULTS__BASE_URL", "https://gateway.example.com")
	t.Setenv("PLUGIN_BILLING__BASE_URL", "https://billing.example.com")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 72*time.Hour, cfg.Gateway.Defaults.PendingExpirationPeriod)
	assert.Equal(t, 168*time.Hour, cfg.Gateway.Defaults.AuthorizationExpirationPeriod)
	assert.Equal(t, 3, cfg.Retry.MaxRetries)
	assert.Equal(t, 200*time.Millisecond, cfg.Retry.BaseDelay)
	assert.Equal(t, "https://gateway.example.com", cfg.Gateway.Defaults.BaseURL)
	assert.False(t, cfg.Gateway.Defaults.ShouldVoidExpiredAuthorizations())
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PLUGIN_BILLING__BASE_URL", "")

	_, err := config.LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_TenantOverridesFromFile(t *testing.T) {
	setRequiredEnv(t)
	tenantID := uuid.New()

	path := filepath.Join(t.TempDir(), "plugin.yaml")
	yamlDoc := "gateway:\n" +
		"  tenants:\n" +
		"    " + tenantID.String() + ":\n" +
		"      merchant_id: tenant-merchant\n" +
		"      authorization_expiration_period: 24h\n" +
		"      void_expired_authorizations: true\n"
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o600))
	t.Setenv("PLUGIN_CONFIG_FILE", path)

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	tenant := cfg.Gateway.ForTenant(tenantID)
	assert.Equal(t, "tenant-merchant", tenant.MerchantID)
	assert.Equal(t, "https://gateway.example.com", tenant.BaseURL)
	assert.Equal(t, 24*time.Hour, tenant.AuthorizationExpirationPeriod)
	assert.Equal(t, 72*time.Hour, tenant.PendingExpirationPeriod)
	assert.True(t, tenant.ShouldVoidExpiredAuthorizations())

	other := cfg.Gateway.ForTenant(uuid.New())
	assert.Equal(t, cfg.Gateway.Defaults, other)
}

func TestDatabaseConfig_URLs(t *testing.T) {
	db := config.DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "n", SSLMode: "disable"}

	assert.Equal(t, "postgres://u:p@db:5432/n?sslmode=disable", db.ConnString())
	assert.Equal(t, "pgx5://u:p@db:5432/n?sslmode=disable", db.MigrationURL())
}
