package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gatewayRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gateway_requests_total",
		Help: "Total calls made to the payment gateway",
	}, []string{
		"operation",
		"outcome", // ok, declined, error
	})

	gatewayRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gateway_request_duration_seconds",
		Help:    "Latency of payment gateway calls, retries included",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{
		"operation",
	})

	pluginTransactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "plugin_transactions_total",
		Help: "Transactions processed by the plugin",
	}, []string{
		"transaction_type",
		"status", // plugin status of the recorded response
	})

	janitorExpirationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "janitor_expirations_total",
		Help: "Transactions cancelled by the expiry policy on read",
	}, []string{
		"transaction_type",
	})

	statusRefreshesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "status_refreshes_total",
		Help: "Gateway status lookups triggered on read",
	}, []string{
		"result", // ok, error
	})

	paymentMethodSyncTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_method_sync_total",
		Help: "Payment method changes applied while reconciling with the gateway",
	}, []string{
		"action", // added, updated, deactivated, skipped
	})
)

// RecordGatewayRequest records one logical gateway call
func RecordGatewayRequest(operation, outcome string, duration float64) {
	gatewayRequestsTotal.WithLabelValues(operation, outcome).Inc()
	gatewayRequestDuration.WithLabelValues(operation).Observe(duration)
}

func RecordTransaction(transactionType, status string) {
	pluginTransactionsTotal.WithLabelValues(transactionType, status).Inc()
}

func RecordJanitorExpiration(transactionType string) {
	janitorExpirationsTotal.WithLabelValues(transactionType).Inc()
}

func RecordStatusRefresh(result string) {
	statusRefreshesTotal.WithLabelValues(result).Inc()
}

// RecordPaymentMethodSync adds count to the given reconcile action
func RecordPaymentMethodSync(action string, count int) {
	if count <= 0 {
		return
	}
	paymentMethodSyncTotal.WithLabelValues(action).Add(float64(count))
}
