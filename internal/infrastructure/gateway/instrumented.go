package gateway

import (
	"context"
	"time"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/application"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/observability"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "gateway"

const (
	outcomeOK       = "ok"
	outcomeDeclined = "declined"
	outcomeError    = "error"
)

// InstrumentedClient records a span and prometheus metrics around every gateway call
type InstrumentedClient struct {
	inner    application.GatewayClient
	tenantID string
}

func NewInstrumentedClient(inner application.GatewayClient, tenantID string) *InstrumentedClient {
	return &InstrumentedClient{inner: inner, tenantID: tenantID}
}

func (c *InstrumentedClient) CreateChargeToken(ctx context.Context, paymentMethodToken string) (string, error) {
	return observe(c, ctx, "CreateChargeToken", func(ctx context.Context) (string, error) {
		return c.inner.CreateChargeToken(ctx, paymentMethodToken)
	})
}

func (c *InstrumentedClient) Charge(ctx context.Context, req domain.ChargeRequest) (*domain.TransactionResult, error) {
	return observe(c, ctx, "Charge", func(ctx context.Context) (*domain.TransactionResult, error) {
		return c.inner.Charge(ctx, req)
	}, attribute.String("gateway.order_id", req.OrderID), attribute.Bool("gateway.submit_for_settlement", req.SubmitForSettlement))
}

func (c *InstrumentedClient) Credit(ctx context.Context, req domain.CreditRequest) (*domain.TransactionResult, error) {
	return observe(c, ctx, "Credit", func(ctx context.Context) (*domain.TransactionResult, error) {
		return c.inner.Credit(ctx, req)
	})
}

func (c *InstrumentedClient) Capture(ctx context.Context, gatewayTransactionID string, amount decimal.Decimal) (*domain.TransactionResult, error) {
	return observe(c, ctx, "Capture", func(ctx context.Context) (*domain.TransactionResult, error) {
		return c.inner.Capture(ctx, gatewayTransactionID, amount)
	}, attribute.String("gateway.transaction_id", gatewayTransactionID))
}

func (c *InstrumentedClient) Void(ctx context.Context, gatewayTransactionID string) (*domain.TransactionResult, error) {
	return observe(c, ctx, "Void", func(ctx context.Context) (*domain.TransactionResult, error) {
		return c.inner.Void(ctx, gatewayTransactionID)
	}, attribute.String("gateway.transaction_id", gatewayTransactionID))
}

func (c *InstrumentedClient) Refund(ctx context.Context, gatewayTransactionID string, amount decimal.Decimal) (*domain.TransactionResult, error) {
	return observe(c, ctx, "Refund", func(ctx context.Context) (*domain.TransactionResult, error) {
		return c.inner.Refund(ctx, gatewayTransactionID, amount)
	}, attribute.String("gateway.transaction_id", gatewayTransactionID))
}

func (c *InstrumentedClient) GetTransactionStatus(ctx context.Context, gatewayTransactionID string) (domain.GatewayStatus, error) {
	return observe(c, ctx, "GetTransactionStatus", func(ctx context.Context) (domain.GatewayStatus, error) {
		return c.inner.GetTransactionStatus(ctx, gatewayTransactionID)
	}, attribute.String("gateway.transaction_id", gatewayTransactionID))
}

func (c *InstrumentedClient) CreatePaymentMethod(ctx context.Context, req domain.CreatePaymentMethodRequest) (*domain.PaymentMethodResult, error) {
	return observe(c, ctx, "CreatePaymentMethod", func(ctx context.Context) (*domain.PaymentMethodResult, error) {
		return c.inner.CreatePaymentMethod(ctx, req)
	})
}

func (c *InstrumentedClient) GetPaymentMethod(ctx context.Context, token string) (*domain.GatewayPaymentMethod, error) {
	return observe(c, ctx, "GetPaymentMethod", func(ctx context.Context) (*domain.GatewayPaymentMethod, error) {
		return c.inner.GetPaymentMethod(ctx, token)
	})
}

func (c *InstrumentedClient) ListPaymentMethods(ctx context.Context, customerID string) ([]domain.GatewayPaymentMethod, error) {
	return observe(c, ctx, "ListPaymentMethods", func(ctx context.Context) ([]domain.GatewayPaymentMethod, error) {
		return c.inner.ListPaymentMethods(ctx, customerID)
	})
}

func (c *InstrumentedClient) DeletePaymentMethod(ctx context.Context, token string) (*domain.Result, error) {
	return observe(c, ctx, "DeletePaymentMethod", func(ctx context.Context) (*domain.Result, error) {
		return c.inner.DeletePaymentMethod(ctx, token)
	})
}

// declined reports whether resp is a gateway result the gateway refused
func declined(resp any) bool {
	switch r := resp.(type) {
	case *domain.TransactionResult:
		return r != nil && !r.Success
	case *domain.PaymentMethodResult:
		return r != nil && !r.Success
	case *domain.Result:
		return r != nil && !r.Success
	}
	return false
}

func observe[T any](c *InstrumentedClient, ctx context.Context, operation string, fn func(ctx context.Context) (T, error), attrs ...attribute.KeyValue) (T, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "Gateway."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(append(attrs, attribute.String("tenant.id", c.tenantID))...),
	)
	defer span.End()

	start := time.Now()
	resp, err := fn(ctx)

	outcome := outcomeOK
	switch {
	case err != nil:
		outcome = outcomeError
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	case declined(resp):
		outcome = outcomeDeclined
		span.SetAttributes(attribute.Bool("gateway.success", false))
	}

	observability.RecordGatewayRequest(operation, outcome, time.Since(start).Seconds())
	return resp, err
}
