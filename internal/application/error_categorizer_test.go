package application_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/application"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
	"github.com/stretchr/testify/assert"
)

type fakeRetryable struct{ retry bool }

func (f fakeRetryable) Error() string     { return "gateway said no" }
func (f fakeRetryable) IsRetryable() bool { return f.retry }

func TestCategorizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want application.ErrorCategory
	}{
		{"nil", nil, ""},
		{"deadline", context.DeadlineExceeded, application.CategoryTransient},
		{"precondition", application.NewPreconditionError("no auth"), application.CategoryBusinessRule},
		{"persistence", application.NewPersistenceError(errors.New("down")), application.CategoryInfrastructure},
		{"unsupported", application.NewUnsupportedOperationError("x"), application.CategoryClientError},
		{"domain error", domain.NewMissingRequiredFieldError("amount"), application.CategoryClientError},
		{"not found", fmt.Errorf("lookup: %w", domain.ErrPaymentMethodNotFound), application.CategoryClientError},
		{"retryable gateway", fakeRetryable{retry: true}, application.CategoryTransient},
		{"permanent gateway", fakeRetryable{retry: false}, application.CategoryPermanent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, application.CategorizeError(tt.err))
		})
	}
}

func TestToHTTPStatusAndCode(t *testing.T) {
	connErr := application.NewConnectivityError("error connecting to gateway", errors.New("dial tcp"))
	assert.Equal(t, http.StatusBadGateway, application.ToHTTPStatus(connErr))
	assert.Equal(t, application.ErrCodeConnectivity, application.ToErrorCode(connErr))

	notRecorded := application.NewPaymentNotRecordedError("txn-1", errors.New("insert failed"))
	assert.Equal(t, http.StatusInternalServerError, application.ToHTTPStatus(notRecorded))
	assert.Contains(t, notRecorded.Error(), "Payment went through")

	assert.Equal(t, http.StatusNotImplemented, application.ToHTTPStatus(application.NewUnsupportedOperationError("notifications")))
	assert.Equal(t, http.StatusBadRequest, application.ToHTTPStatus(domain.NewInvalidAmountError("-1")))
	assert.Equal(t, domain.ErrCodeInvalidAmount, application.ToErrorCode(domain.NewInvalidAmountError("-1")))
	assert.Equal(t, http.StatusNotFound, application.ToHTTPStatus(domain.ErrAccountNotFound))
	assert.Equal(t, "ACCOUNT_NOT_FOUND", application.ToErrorCode(domain.ErrAccountNotFound))
	assert.Equal(t, http.StatusInternalServerError, application.ToHTTPStatus(errors.New("boom")))
	assert.Equal(t, application.ErrCodeInternal, application.ToErrorCode(errors.New("boom")))

	assert.True(t, application.HasCode(fmt.Errorf("wrapped: %w", connErr), application.ErrCodeConnectivity))
}
