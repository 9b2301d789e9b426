package config

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// GatewayConfig holds the settings every tenant starts from plus per-tenant overrides
// keyed by tenant id.
type GatewayConfig struct {
	Defaults TenantConfig            `koanf:"defaults"`
	Tenants  map[string]TenantConfig `koanf:"tenants"`
}

type TenantConfig struct {
	BaseURL     string        `koanf:"base_url" validate:"required,url"`
	MerchantID  string        `koanf:"merchant_id"`
	PublicKey   string        `koanf:"public_key"`
	PrivateKey  string        `koanf:"private_key"`
	ConnTimeout time.Duration `koanf:"conn_timeout"`

	PendingExpirationPeriod       time.Duration `koanf:"pending_expiration_period"`
	AuthorizationExpirationPeriod time.Duration `koanf:"authorization_expiration_period"`
	VoidExpiredAuthorizations     *bool         `koanf:"void_expired_authorizations"`
}

// ShouldVoidExpiredAuthorizations reports whether expired authorizations are also voided
// at the gateway
func (c TenantConfig) ShouldVoidExpiredAuthorizations() bool {
	return c.VoidExpiredAuthorizations != nil && *c.VoidExpiredAuthorizations
}

// ForTenant returns the defaults overlaid with whatever the tenant sets
func (c GatewayConfig) ForTenant(tenantID uuid.UUID) TenantConfig {
	cfg := c.Defaults

	override, ok := c.Tenants[strings.ToLower(tenantID.String())]
	if !ok {
		return cfg
	}

	if override.BaseURL != "" {
		cfg.BaseURL = override.BaseURL
	}
	if override.MerchantID != "" {
		cfg.MerchantID = override.MerchantID
	}
	if override.PublicKey != "" {
		cfg.PublicKey = override.PublicKey
	}
	if override.PrivateKey != "" {
		cfg.PrivateKey = override.PrivateKey
	}
	if override.ConnTimeout > 0 {
		cfg.ConnTimeout = override.ConnTimeout
	}
	if override.PendingExpirationPeriod > 0 {
		cfg.PendingExpirationPeriod = override.PendingExpirationPeriod
	}
	if override.AuthorizationExpirationPeriod > 0 {
		cfg.AuthorizationExpirationPeriod = override.AuthorizationExpirationPeriod
	}
	if override.VoidExpiredAuthorizations != nil {
		cfg.VoidExpiredAuthorizations = override.VoidExpiredAuthorizations
	}

	return cfg
}
