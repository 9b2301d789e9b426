package services

import (
	"time"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
)

const janitorCancelMessage = "Payment Expired - Cancelled by Janitor"

// ExpiredPaymentPolicy decides, on read, whether the last transaction of a payment has
// been left pending or authorized for too long
type ExpiredPaymentPolicy struct {
	now                           func() time.Time
	pendingExpirationPeriod       time.Duration
	authorizationExpirationPeriod time.Duration
}

func NewExpiredPaymentPolicy(now func() time.Time, pendingExpirationPeriod, authorizationExpirationPeriod time.Duration) ExpiredPaymentPolicy {
	return ExpiredPaymentPolicy{
		now:                           now,
		pendingExpirationPeriod:       pendingExpirationPeriod,
		authorizationExpirationPeriod: authorizationExpirationPeriod,
	}
}

// IsExpired returns the transaction to cancel, or nil. Payments with any follow-up
// transaction are never expired.
func (p ExpiredPaymentPolicy) IsExpired(transactions []domain.TransactionInfo) *domain.TransactionInfo {
	if len(transactions) == 0 {
		return nil
	}

	for _, t := range transactions {
		if t.TransactionType != domain.TransactionTypeAuthorize && t.TransactionType != domain.TransactionTypePurchase {
			return nil
		}
	}

	latest := transactions[len(transactions)-1]
	now := p.now()

	if latest.Status == domain.PluginStatusPending &&
		now.After(latest.CreatedDate.Add(p.pendingExpirationPeriod)) {
		return &latest
	}

	if latest.TransactionType == domain.TransactionTypeAuthorize &&
		latest.Status == domain.PluginStatusProcessed &&
		isAwaitingCapture(latest) &&
		now.After(latest.CreatedDate.Add(p.authorizationExpirationPeriod)) {
		return &latest
	}

	return nil
}

func isAwaitingCapture(t domain.TransactionInfo) bool {
	r := t.Response()
	if r == nil {
		return false
	}
	status := r.GatewayStatus()
	return status == domain.GatewayStatusAuthorized || status == domain.GatewayStatusAuthorizing
}
