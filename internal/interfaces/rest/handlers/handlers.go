package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/application/services"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
	"github.com/go-playground/validator"
)

// HealthChecker reports whether a backing dependency is reachable
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Handlers exposes the plugin operations over HTTP
type Handlers struct {
	transactions   *services.TransactionService
	paymentInfo    *services.PaymentInfoService
	paymentMethods *services.PaymentMethodService
	unsupported    services.UnsupportedOperations
	health         HealthChecker
	validate       *validator.Validate
	logger         *slog.Logger
}

func NewHandlers(
	transactions *services.TransactionService,
	paymentInfo *services.PaymentInfoService,
	paymentMethods *services.PaymentMethodService,
	health HealthChecker,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		transactions:   transactions,
		paymentInfo:    paymentInfo,
		paymentMethods: paymentMethods,
		health:         health,
		validate:       validator.New(),
		logger:         logger,
	}
}

// Register mounts every route on mux
func (h *Handlers) Register(mux *http.ServeMux) {
	for path, txnType := range map[string]domain.TransactionType{
		"authorize": domain.TransactionTypeAuthorize,
		"capture":   domain.TransactionTypeCapture,
		"purchase":  domain.TransactionTypePurchase,
		"void":      domain.TransactionTypeVoid,
		"credit":    domain.TransactionTypeCredit,
		"refund":    domain.TransactionTypeRefund,
	} {
		mux.HandleFunc("POST /v1/payments/{paymentId}/"+path, h.executeTransaction(txnType))
	}
	mux.HandleFunc("GET /v1/payments/{paymentId}", h.GetPaymentInfo)

	mux.HandleFunc("POST /v1/accounts/{accountId}/payment-methods", h.AddPaymentMethod)
	mux.HandleFunc("GET /v1/accounts/{accountId}/payment-methods", h.GetPaymentMethods)
	mux.HandleFunc("GET /v1/accounts/{accountId}/payment-methods/{paymentMethodId}", h.GetPaymentMethodDetail)
	mux.HandleFunc("DELETE /v1/accounts/{accountId}/payment-methods/{paymentMethodId}", h.DeletePaymentMethod)

	mux.HandleFunc("POST /v1/accounts/{accountId}/form-descriptor", h.BuildFormDescriptor)
	mux.HandleFunc("POST /v1/notifications", h.ProcessNotification)

	mux.HandleFunc("GET /healthz", h.Health)
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.health.Ping(r.Context()); err != nil {
		h.logger.Warn("health check failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":"unavailable"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
