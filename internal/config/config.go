package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
)

const (
	envPrefix     = "PLUGIN_"
	configFileEnv = "PLUGIN_CONFIG_FILE"
)

type Config struct {
	Primary   Primary         `koanf:"primary"`
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Gateway   GatewayConfig   `koanf:"gateway"`
	Billing   BillingConfig   `koanf:"billing"`
	Retry     RetryConfig     `koanf:"retry"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Logger    LoggerConfig    `koanf:"logger"`
	Tracing   TracingConfig   `koanf:"tracing"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

type DatabaseConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password" validate:"required"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time" validate:"required"`
	AutoMigrate     bool          `koanf:"auto_migrate"`
}

// BillingConfig points at the billing platform's account and payment method API
type BillingConfig struct {
	BaseURL     string        `koanf:"base_url" validate:"required,url"`
	Username    string        `koanf:"username"`
	Password    string        `koanf:"password"`
	ConnTimeout time.Duration `koanf:"conn_timeout" validate:"required"`
}

type RetryConfig struct {
	BaseDelay  time.Duration `koanf:"base_delay"`
	MaxRetries int           `koanf:"max_retries"`
}

// RateLimitConfig caps outbound gateway calls per tenant client
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second" validate:"gte=0"`
	Burst             int     `koanf:"burst" validate:"gte=0"`
}

type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type TracingConfig struct {
	Enabled     bool   `koanf:"enabled"`
	ServiceName string `koanf:"service_name"`
}

var defaults = map[string]interface{}{
	"primary.env":                                      "development",
	"server.port":                                      "8080",
	"server.read_timeout":                              "15s",
	"server.write_timeout":                             "30s",
	"server.idle_timeout":                              "60s",
	"database.ssl_mode":                                "disable",
	"database.max_open_conns":                          10,
	"database.max_idle_conns":                          2,
	"database.conn_max_lifetime":                       "1h",
	"database.conn_max_idle_time":                      "30m",
	"gateway.defaults.conn_timeout":                    "30s",
	"gateway.defaults.pending_expiration_period":       "72h",
	"gateway.defaults.authorization_expiration_period": "168h",
	"billing.conn_timeout":                             "10s",
	"retry.base_delay":                                 "200ms",
	"retry.max_retries":                                3,
	"rate_limit.requests_per_second":                   25,
	"rate_limit.burst":                                 50,
	"logger.level":                                     "info",
	"logger.format":                                    "json",
	"tracing.service_name":                             "payment-gateway-plugin",
}

// LoadConfig layers defaults, an optional YAML file and PLUGIN_ environment variables
func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		logger.Error("failed to load config defaults", "error", err)
		return nil, err
	}

	if path := os.Getenv(configFileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			logger.Error("failed to load config file", "path", path, "error", err)
			return nil, err
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
