package services

import (
	"context"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/application"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
	"github.com/google/uuid"
)

// UnsupportedOperations answers the plugin entry points this gateway integration does
// not offer
type UnsupportedOperations struct{}

func (UnsupportedOperations) BuildFormDescriptor(_ context.Context, _ uuid.UUID, _ []domain.PluginProperty, _ domain.CallContext) error {
	return application.NewUnsupportedOperationError("buildFormDescriptor")
}

func (UnsupportedOperations) ProcessNotification(_ context.Context, _ string, _ []domain.PluginProperty, _ domain.CallContext) error {
	return application.NewUnsupportedOperationError("processNotification")
}
