package gateway

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/application"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/config"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrChargeOutcomeUnknown means a charge was resent and the gateway refused the resend
// without a transaction, so the first attempt may have gone through.
var ErrChargeOutcomeUnknown = errors.New("charge outcome unknown")

// RetryClient retries reads and nonce creation. Order-referenced charges are resent only
// when the gateway answered with a server error. Credits, captures, voids, refunds and
// payment-method writes go through once.
type RetryClient struct {
	inner      application.GatewayClient
	baseDelay  time.Duration
	maxRetries int
}

func NewRetryClient(inner application.GatewayClient, cfg config.RetryConfig) *RetryClient {
	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &RetryClient{
		inner:      inner,
		baseDelay:  cfg.BaseDelay,
		maxRetries: maxRetries,
	}
}

func (r *RetryClient) CreateChargeToken(ctx context.Context, paymentMethodToken string) (string, error) {
	return retry(r, ctx, isRetryable, func(ctx context.Context) (string, error) {
		return r.inner.CreateChargeToken(ctx, paymentMethodToken)
	})
}

func (r *RetryClient) Charge(ctx context.Context, req domain.ChargeRequest) (*domain.TransactionResult, error) {
	if req.OrderID == "" {
		return r.inner.Charge(ctx, req)
	}
	// a transport error or timeout may hide a processed sale, so only explicit
	// gateway server errors are resent
	attempts := 0
	return retry(r, ctx, isServerError, func(ctx context.Context) (*domain.TransactionResult, error) {
		attempts++
		result, err := r.inner.Charge(ctx, req)
		if err == nil && attempts > 1 && result != nil && !result.Success && result.Transaction == nil {
			return nil, fmt.Errorf("%w: order %s: %s", ErrChargeOutcomeUnknown, req.OrderID, result.Message)
		}
		return result, err
	})
}

func (r *RetryClient) Credit(ctx context.Context, req domain.CreditRequest) (*domain.TransactionResult, error) {
	return r.inner.Credit(ctx, req)
}

func (r *RetryClient) Capture(ctx context.Context, gatewayTransactionID string, amount decimal.Decimal) (*domain.TransactionResult, error) {
	return r.inner.Capture(ctx, gatewayTransactionID, amount)
}

func (r *RetryClient) Void(ctx context.Context, gatewayTransactionID string) (*domain.TransactionResult, error) {
	return r.inner.Void(ctx, gatewayTransactionID)
}

func (r *RetryClient) Refund(ctx context.Context, gatewayTransactionID string, amount decimal.Decimal) (*domain.TransactionResult, error) {
	return r.inner.Refund(ctx, gatewayTransactionID, amount)
}

func (r *RetryClient) GetTransactionStatus(ctx context.Context, gatewayTransactionID string) (domain.GatewayStatus, error) {
	return retry(r, ctx, isRetryable, func(ctx context.Context) (domain.GatewayStatus, error) {
		return r.inner.GetTransactionStatus(ctx, gatewayTransactionID)
	})
}

func (r *RetryClient) CreatePaymentMethod(ctx context.Context, req domain.CreatePaymentMethodRequest) (*domain.PaymentMethodResult, error) {
	return r.inner.CreatePaymentMethod(ctx, req)
}

func (r *RetryClient) GetPaymentMethod(ctx context.Context, token string) (*domain.GatewayPaymentMethod, error) {
	return retry(r, ctx, isRetryable, func(ctx context.Context) (*domain.GatewayPaymentMethod, error) {
		return r.inner.GetPaymentMethod(ctx, token)
	})
}

func (r *RetryClient) ListPaymentMethods(ctx context.Context, customerID string) ([]domain.GatewayPaymentMethod, error) {
	return retry(r, ctx, isRetryable, func(ctx context.Context) ([]domain.GatewayPaymentMethod, error) {
		return r.inner.ListPaymentMethods(ctx, customerID)
	})
}

func (r *RetryClient) DeletePaymentMethod(ctx context.Context, token string) (*domain.Result, error) {
	return r.inner.DeletePaymentMethod(ctx, token)
}

func retry[T any](r *RetryClient, ctx context.Context, retryable func(error) bool, operation func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt < r.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		resp, err := operation(ctx)
		if err == nil {
			return resp, nil
		}

		lastErr = err

		if !retryable(err) {
			return zero, err
		}

		if attempt < r.maxRetries-1 {
			timer := time.NewTimer(r.backoff(attempt))
			select {
			case <-ctx.Done():
				timer.Stop()
				return zero, ctx.Err()
			case <-timer.C:
			}
		}
	}

	return zero, fmt.Errorf("maximum retries exceeded: %w", lastErr)
}

func isRetryable(err error) bool {
	if gwErr, ok := IsGatewayError(err); ok {
		return gwErr.IsRetryable()
	}

	if errors.Is(err, context.Canceled) {
		return false
	}

	if errors.Is(err, domain.ErrPaymentMethodNotFound) {
		return false
	}

	// transport failures and timeouts
	return true
}

func isServerError(err error) bool {
	gwErr, ok := IsGatewayError(err)
	return ok && gwErr.IsRetryable()
}

// exponential delay plus up to one base delay of jitter
func (r *RetryClient) backoff(attempt int) time.Duration {
	base := r.baseDelay * time.Duration(1<<attempt)
	if r.baseDelay <= 0 {
		return base
	}

	jitter := time.Duration(rand.Int63n(int64(r.baseDelay)))

	return base + jitter
}
