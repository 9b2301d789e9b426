package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/application"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
	"github.com/google/uuid"
)

// PaymentMethodService keeps the local payment methods of an account in line with the
// gateway
type PaymentMethodService struct {
	store     application.PaymentMethodStore
	customers customerMapping
	registry  application.PaymentMethodRegistry
	gateways  application.GatewayClientFactory
	logger    *slog.Logger
	now       func() time.Time
}

func NewPaymentMethodService(
	store application.PaymentMethodStore,
	accounts application.AccountDirectory,
	registry application.PaymentMethodRegistry,
	gateways application.GatewayClientFactory,
	logger *slog.Logger,
) *PaymentMethodService {
	return &PaymentMethodService{
		store:     store,
		customers: customerMapping{accounts: accounts},
		registry:  registry,
		gateways:  gateways,
		logger:    logger,
		now:       time.Now,
	}
}

// AddPaymentMethod vaults a nonce at the gateway under the billing payment method id, or,
// without a nonce, adopts a method that already exists at the gateway.
func (s *PaymentMethodService) AddPaymentMethod(ctx context.Context, cmd AddPaymentMethodCommand, cc domain.CallContext) (*domain.PaymentMethodDetail, error) {
	properties := domain.MergeProperties(cmd.Properties, cmd.QueryProperties)

	client, err := s.gateways.ForTenant(ctx, cc.TenantID)
	if err != nil {
		return nil, application.NewConnectivityError(gatewayConnectivityMessage, err)
	}

	var gatewayMethod *domain.GatewayPaymentMethod
	if nonce := domain.FindPropertyValue(domain.PropertyNonce, properties); nonce != "" {
		gatewayMethod, err = s.createAtGateway(ctx, client, cmd, nonce, properties, cc)
	} else {
		gatewayMethod, err = s.fetchFromGateway(ctx, client, cmd.ExternalPaymentMethodID)
	}
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	pm := &domain.PaymentMethod{
		AccountID:       cmd.AccountID,
		PaymentMethodID: cmd.PaymentMethodID,
		GatewayToken:    gatewayMethod.Token,
		IsDefault:       cmd.SetDefault,
		IsActive:        true,
		AdditionalData:  domain.AdditionalDataFromGateway(gatewayMethod),
		CreatedAt:       now,
		UpdatedAt:       now,
		TenantID:        cc.TenantID,
	}
	if err := s.store.AddPaymentMethod(ctx, pm); err != nil {
		return nil, application.NewPersistenceError(err)
	}

	s.logger.Info("payment method added",
		"account_id", cmd.AccountID,
		"payment_method_id", cmd.PaymentMethodID,
		"gateway_token", pm.GatewayToken,
	)

	detail := domain.NewPaymentMethodDetail(pm)
	return &detail, nil
}

func (s *PaymentMethodService) createAtGateway(ctx context.Context, client application.GatewayClient, cmd AddPaymentMethodCommand, nonce string, properties []domain.PluginProperty, cc domain.CallContext) (*domain.GatewayPaymentMethod, error) {
	customerID, err := s.customers.resolve(ctx, cmd.AccountID, properties, cc)
	if err != nil {
		return nil, err
	}
	if customerID == "" {
		return nil, application.NewPreconditionError(fmt.Sprintf("could not create payment method in gateway: missing %s plugin property", domain.PropertyCustomerID))
	}

	methodType, err := domain.ParsePaymentMethodType(domain.FindPropertyValue(domain.PropertyPaymentMethodType, properties))
	if err != nil {
		return nil, application.NewInvalidInputError(err)
	}

	token := cmd.PaymentMethodID.String()
	s.logger.Info("creating payment method at gateway",
		"payment_method_id", cmd.PaymentMethodID,
		"payment_method_type", methodType,
	)

	result, err := client.CreatePaymentMethod(ctx, domain.CreatePaymentMethodRequest{
		CustomerID:         customerID,
		Token:              token,
		PaymentMethodNonce: nonce,
		Type:               methodType,
	})
	if err != nil {
		return nil, application.NewConnectivityError("could not create payment method in gateway", err)
	}
	if !result.Success || result.PaymentMethod == nil {
		return nil, application.NewConnectivityError("could not create payment method in gateway: "+result.Message, nil)
	}
	if result.PaymentMethod.Token != token {
		return nil, application.NewPreconditionError(fmt.Sprintf("gateway returned token %s, expected %s", result.PaymentMethod.Token, token))
	}
	return result.PaymentMethod, nil
}

func (s *PaymentMethodService) fetchFromGateway(ctx context.Context, client application.GatewayClient, externalID string) (*domain.GatewayPaymentMethod, error) {
	if externalID == "" {
		return nil, application.NewInvalidInputError(domain.NewMissingRequiredFieldError("external_payment_method_id"))
	}

	gatewayMethod, err := client.GetPaymentMethod(ctx, externalID)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentMethodNotFound) {
			return nil, application.NewNotFoundError(fmt.Sprintf("payment method %s not found in gateway", externalID), err)
		}
		return nil, application.NewConnectivityError(gatewayConnectivityMessage, err)
	}
	return gatewayMethod, nil
}

// DeletePaymentMethod deletes at the gateway first and deactivates locally only once the
// gateway accepted
func (s *PaymentMethodService) DeletePaymentMethod(ctx context.Context, accountID, paymentMethodID uuid.UUID, cc domain.CallContext) error {
	pm, err := s.store.GetPaymentMethod(ctx, paymentMethodID, cc.TenantID)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentMethodNotFound) {
			return application.NewNotFoundError(fmt.Sprintf("payment method %s not found", paymentMethodID), err)
		}
		return application.NewPersistenceError(err)
	}

	client, err := s.gateways.ForTenant(ctx, cc.TenantID)
	if err != nil {
		return application.NewConnectivityError(gatewayConnectivityMessage, err)
	}

	result, err := client.DeletePaymentMethod(ctx, pm.GatewayToken)
	if err != nil {
		return application.NewConnectivityError("could not delete payment method in gateway", err)
	}
	if !result.Success {
		return application.NewConnectivityError("could not delete payment method in gateway: "+result.Message, nil)
	}

	if err := s.store.DeactivatePaymentMethod(ctx, paymentMethodID, cc.TenantID, s.now().UTC()); err != nil {
		return application.NewPersistenceError(err)
	}

	s.logger.Info("payment method deleted",
		"account_id", accountID,
		"payment_method_id", paymentMethodID,
		"gateway_token", pm.GatewayToken,
	)
	return nil
}

// GetPaymentMethodDetail never fails for an unknown id: the platform may still know a
// method that is gone locally
func (s *PaymentMethodService) GetPaymentMethodDetail(ctx context.Context, accountID, paymentMethodID uuid.UUID, cc domain.CallContext) (*domain.PaymentMethodDetail, error) {
	pm, err := s.store.GetPaymentMethod(ctx, paymentMethodID, cc.TenantID)
	if err != nil {
		if !errors.Is(err, domain.ErrPaymentMethodNotFound) {
			return nil, application.NewPersistenceError(err)
		}
		pm = domain.EmptyPaymentMethod(paymentMethodID)
		pm.AccountID = accountID
	}

	detail := domain.NewPaymentMethodDetail(pm)
	return &detail, nil
}

// GetPaymentMethods lists the account's active methods. With refresh set and a gateway
// customer on file, the local set is reconciled against the gateway first.
func (s *PaymentMethodService) GetPaymentMethods(ctx context.Context, accountID uuid.UUID, refresh bool, cc domain.CallContext) ([]domain.PaymentMethodInfo, error) {
	if !refresh {
		return s.list(ctx, accountID, cc.TenantID)
	}

	customerID, err := s.customers.get(ctx, accountID, cc)
	if err != nil {
		return nil, err
	}
	if customerID == "" {
		return s.list(ctx, accountID, cc.TenantID)
	}

	existing, err := s.store.ListPaymentMethods(ctx, accountID, cc.TenantID)
	if err != nil {
		return nil, application.NewPersistenceError(err)
	}
	existingByToken := make(map[string]*domain.PaymentMethod, len(existing))
	for _, pm := range existing {
		existingByToken[pm.GatewayToken] = pm
	}

	client, err := s.gateways.ForTenant(ctx, cc.TenantID)
	if err != nil {
		return nil, application.NewConnectivityError(gatewayConnectivityMessage, err)
	}

	gatewayMethods, err := client.ListPaymentMethods(ctx, customerID)
	if err != nil {
		return nil, application.NewConnectivityError(gatewayConnectivityMessage, err)
	}

	if err := s.reconcilePaymentMethods(ctx, accountID, gatewayMethods, existingByToken, cc); err != nil {
		return nil, application.NewPersistenceError(err)
	}

	return s.list(ctx, accountID, cc.TenantID)
}

func (s *PaymentMethodService) list(ctx context.Context, accountID, tenantID uuid.UUID) ([]domain.PaymentMethodInfo, error) {
	methods, err := s.store.ListPaymentMethods(ctx, accountID, tenantID)
	if err != nil {
		return nil, application.NewPersistenceError(err)
	}

	infos := make([]domain.PaymentMethodInfo, 0, len(methods))
	for _, pm := range methods {
		infos = append(infos, domain.NewPaymentMethodInfo(pm))
	}
	return infos, nil
}
