package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/api"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/application/services"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/config"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/infrastructure/billing"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/infrastructure/gateway"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/infrastructure/persistence"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting payment gateway plugin",
		"env", cfg.Primary.Env,
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
	)

	shutdownTracing, err := observability.SetupTracing(cfg.Tracing)
	if err != nil {
		logger.Error("failed to set up tracing", "error", err)
		os.Exit(1)
	}

	if cfg.Database.AutoMigrate {
		if err := persistence.MigrateUp(&cfg.Database, logger); err != nil {
			logger.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	ctx := context.Background()
	db, err := persistence.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	responseRepo := postgres.NewResponseRepository(db)
	paymentMethodRepo := postgres.NewPaymentMethodRepository(db)

	gateways := gateway.NewFactory(cfg.Gateway, cfg.Retry, cfg.RateLimit, logger)
	billingClient := billing.NewClient(cfg.Billing)

	transactionService := services.NewTransactionService(responseRepo, paymentMethodRepo, billingClient, gateways, logger)
	paymentInfoService := services.NewPaymentInfoService(responseRepo, gateways, cfg.Gateway, logger)
	paymentMethodService := services.NewPaymentMethodService(paymentMethodRepo, billingClient, billingClient, gateways, logger)

	h := handlers.NewHandlers(
		transactionService,
		paymentInfoService,
		paymentMethodService,
		db,
		logger,
	)

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())
	h.Register(mux)

	doc, err := api.GetSwagger()
	if err != nil {
		logger.Error("failed to load openapi document", "error", err)
		os.Exit(1)
	}
	validate, err := middleware.OpenAPIValidator(doc, logger)
	if err != nil {
		logger.Error("failed to build request validator", "error", err)
		os.Exit(1)
	}

	handler := validate(mux)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.WriteTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("failed to flush traces", "error", err)
	}

	logger.Info("server exited")
}
