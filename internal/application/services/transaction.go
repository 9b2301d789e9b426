package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/application"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/observability"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

const gatewayConnectivityMessage = "error connecting to gateway"

// recordTimeout bounds the write of a gateway outcome once the caller has gone away
const recordTimeout = 5 * time.Second

// initialRequest is what an initial executor needs to start a payment at the gateway
type initialRequest struct {
	orderID    string
	money      domain.Money
	customerID string
	nonce      string
}

type initialExecutor func(ctx context.Context, client application.GatewayClient, req initialRequest) (*domain.TransactionResult, error)

type followUpExecutor func(ctx context.Context, client application.GatewayClient, predecessor *domain.TransactionResponse, money domain.Money) (*domain.TransactionResult, error)

var initialExecutors = map[domain.TransactionType]initialExecutor{
	domain.TransactionTypeAuthorize: func(ctx context.Context, client application.GatewayClient, req initialRequest) (*domain.TransactionResult, error) {
		return client.Charge(ctx, domain.ChargeRequest{
			OrderID:             req.orderID,
			Amount:              req.money.Amount,
			CustomerID:          req.customerID,
			PaymentMethodNonce:  req.nonce,
			SubmitForSettlement: false,
		})
	},
	domain.TransactionTypePurchase: func(ctx context.Context, client application.GatewayClient, req initialRequest) (*domain.TransactionResult, error) {
		return client.Charge(ctx, domain.ChargeRequest{
			OrderID:             req.orderID,
			Amount:              req.money.Amount,
			CustomerID:          req.customerID,
			PaymentMethodNonce:  req.nonce,
			SubmitForSettlement: true,
		})
	},
	domain.TransactionTypeCredit: func(ctx context.Context, client application.GatewayClient, req initialRequest) (*domain.TransactionResult, error) {
		return client.Credit(ctx, domain.CreditRequest{
			Amount:             req.money.Amount,
			CustomerID:         req.customerID,
			PaymentMethodNonce: req.nonce,
		})
	},
}

var followUpExecutors = map[domain.TransactionType]followUpExecutor{
	domain.TransactionTypeCapture: func(ctx context.Context, client application.GatewayClient, predecessor *domain.TransactionResponse, money domain.Money) (*domain.TransactionResult, error) {
		return client.Capture(ctx, predecessor.GatewayTransactionID, money.Amount)
	},
	domain.TransactionTypeVoid: func(ctx context.Context, client application.GatewayClient, predecessor *domain.TransactionResponse, _ domain.Money) (*domain.TransactionResult, error) {
		return client.Void(ctx, predecessor.GatewayTransactionID)
	},
	domain.TransactionTypeRefund: func(ctx context.Context, client application.GatewayClient, predecessor *domain.TransactionResponse, money domain.Money) (*domain.TransactionResult, error) {
		return client.Refund(ctx, predecessor.GatewayTransactionID, money.Amount)
	},
}

// TransactionService turns billing transactions into gateway calls and records every
// outcome, successful or not, as one response row per billing transaction.
type TransactionService struct {
	responses      application.ResponseStore
	paymentMethods application.PaymentMethodStore
	accounts       application.AccountDirectory
	customers      customerMapping
	gateways       application.GatewayClientFactory
	logger         *slog.Logger
	now            func() time.Time
}

func NewTransactionService(
	responses application.ResponseStore,
	paymentMethods application.PaymentMethodStore,
	accounts application.AccountDirectory,
	gateways application.GatewayClientFactory,
	logger *slog.Logger,
) *TransactionService {
	return &TransactionService{
		responses:      responses,
		paymentMethods: paymentMethods,
		accounts:       accounts,
		customers:      customerMapping{accounts: accounts},
		gateways:       gateways,
		logger:         logger,
		now:            time.Now,
	}
}

// Execute runs the flow for txnType. PURCHASE and CREDIT replay an already recorded
// transaction id instead of moving money twice.
func (s *TransactionService) Execute(ctx context.Context, txnType domain.TransactionType, cmd TransactionCommand, cc domain.CallContext) (*domain.TransactionInfo, error) {
	ctx, span := otel.Tracer("services").Start(ctx, "TransactionService."+string(txnType))
	defer span.End()
	span.SetAttributes(
		attribute.String("payment.id", cmd.PaymentID.String()),
		attribute.String("payment.transaction_id", cmd.TransactionID.String()),
		attribute.String("tenant.id", cc.TenantID.String()),
	)

	var money domain.Money
	if txnType != domain.TransactionTypeVoid {
		m, err := domain.NewMoney(cmd.Amount, cmd.Currency)
		if err != nil {
			return nil, application.NewInvalidInputError(err)
		}
		money = m
	}

	switch txnType {
	case domain.TransactionTypePurchase, domain.TransactionTypeCredit:
		return s.replayOrExecute(ctx, txnType, cmd, money, cc)
	case domain.TransactionTypeAuthorize:
		return s.executeInitial(ctx, txnType, cmd, money, cc)
	case domain.TransactionTypeCapture, domain.TransactionTypeVoid, domain.TransactionTypeRefund:
		return s.executeFollowUp(ctx, txnType, cmd, money, cc)
	}

	return nil, application.NewInvalidInputError(fmt.Errorf("unsupported transaction type %q", txnType))
}

func (s *TransactionService) replayOrExecute(ctx context.Context, txnType domain.TransactionType, cmd TransactionCommand, money domain.Money, cc domain.CallContext) (*domain.TransactionInfo, error) {
	existing, err := s.responses.MergeResponseMetadata(ctx, cmd.TransactionID, cc.TenantID, domain.PropertiesToMap(cmd.Properties))
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return s.executeInitial(ctx, txnType, cmd, money, cc)
		}
		return nil, application.NewPersistenceError(err)
	}

	s.logger.Info("transaction already recorded, merged properties",
		"transaction_id", cmd.TransactionID,
		"transaction_type", existing.TransactionType,
		"tenant_id", cc.TenantID,
	)

	info := domain.NewTransactionInfo(existing)
	return &info, nil
}

func (s *TransactionService) executeInitial(ctx context.Context, txnType domain.TransactionType, cmd TransactionCommand, money domain.Money, cc domain.CallContext) (*domain.TransactionInfo, error) {
	if _, err := s.accounts.GetAccount(ctx, cmd.AccountID, cc); err != nil {
		return nil, err
	}

	paymentMethod, err := s.resolvePaymentMethod(ctx, cmd.PaymentMethodID, cc.TenantID)
	if err != nil {
		return nil, err
	}

	customerID, err := s.customers.resolve(ctx, cmd.AccountID, cmd.Properties, cc)
	if err != nil {
		return nil, err
	}
	if customerID == "" {
		return nil, application.NewPreconditionError(fmt.Sprintf("no gateway customer mapped to account %s", cmd.AccountID))
	}

	client, err := s.gateways.ForTenant(ctx, cc.TenantID)
	if err != nil {
		return nil, application.NewConnectivityError(gatewayConnectivityMessage, err)
	}

	nonce, err := client.CreateChargeToken(ctx, paymentMethod.GatewayToken)
	if err != nil {
		return nil, application.NewConnectivityError(gatewayConnectivityMessage, err)
	}

	result, err := initialExecutors[txnType](ctx, client, initialRequest{
		orderID:    cmd.TransactionID.String(),
		money:      money,
		customerID: customerID,
		nonce:      nonce,
	})
	if err != nil {
		return nil, application.NewConnectivityError(gatewayConnectivityMessage, err)
	}

	return s.record(ctx, txnType, cmd, money, result, cc)
}

func (s *TransactionService) executeFollowUp(ctx context.Context, txnType domain.TransactionType, cmd TransactionCommand, money domain.Money, cc domain.CallContext) (*domain.TransactionInfo, error) {
	if _, err := s.accounts.GetAccount(ctx, cmd.AccountID, cc); err != nil {
		return nil, err
	}

	predecessor, err := s.responses.GetSuccessfulAuthorization(ctx, cmd.PaymentID, cc.TenantID)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return nil, application.NewPreconditionError(fmt.Sprintf("unable to retrieve previous payment response for kbTransactionId %s", cmd.TransactionID))
		}
		return nil, application.NewPersistenceError(err)
	}

	client, err := s.gateways.ForTenant(ctx, cc.TenantID)
	if err != nil {
		return nil, application.NewConnectivityError(gatewayConnectivityMessage, err)
	}

	result, err := followUpExecutors[txnType](ctx, client, predecessor, money)
	if err != nil {
		return nil, application.NewConnectivityError(gatewayConnectivityMessage, err)
	}

	return s.record(ctx, txnType, cmd, money, result, cc)
}

// resolvePaymentMethod falls back to an empty placeholder when the id is absent or unknown
func (s *TransactionService) resolvePaymentMethod(ctx context.Context, paymentMethodID *uuid.UUID, tenantID uuid.UUID) (*domain.PaymentMethod, error) {
	if paymentMethodID == nil {
		return domain.EmptyPaymentMethod(uuid.Nil), nil
	}

	pm, err := s.paymentMethods.GetPaymentMethod(ctx, *paymentMethodID, tenantID)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentMethodNotFound) {
			return domain.EmptyPaymentMethod(*paymentMethodID), nil
		}
		return nil, application.NewPersistenceError(err)
	}
	return pm, nil
}

// record persists the gateway outcome. Failing to save a successful outcome is reported
// with the gateway details so the payment can be reconciled by hand.
func (s *TransactionService) record(ctx context.Context, txnType domain.TransactionType, cmd TransactionCommand, money domain.Money, result *domain.TransactionResult, cc domain.CallContext) (*domain.TransactionInfo, error) {
	response := &domain.TransactionResponse{
		AccountID:            cmd.AccountID,
		PaymentID:            cmd.PaymentID,
		TransactionID:        cmd.TransactionID,
		TransactionType:      txnType,
		GatewayTransactionID: result.GatewayTransactionID(),
		Success:              result.Success,
		GatewayResponse:      result.ToMap(),
		AdditionalData:       map[string]any{},
		CreatedAt:            s.now().UTC(),
		TenantID:             cc.TenantID,
	}
	if txnType != domain.TransactionTypeVoid {
		amount := money.Amount
		currency := money.Currency
		response.Amount = &amount
		response.Currency = &currency
	}

	// the gateway already acted, so the write outlives the request
	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	saved, err := s.responses.AddResponse(recordCtx, response)
	if err != nil {
		if result.Success {
			details, _ := json.Marshal(result)
			s.logger.Error("gateway outcome not recorded",
				"transaction_id", cmd.TransactionID,
				"transaction_type", txnType,
				"gateway_transaction_id", response.GatewayTransactionID,
				"tenant_id", cc.TenantID,
				"error", err,
			)
			return nil, application.NewPaymentNotRecordedError(string(details), err)
		}
		return nil, application.NewPersistenceError(err)
	}

	info := domain.NewTransactionInfo(saved)
	observability.RecordTransaction(string(txnType), string(info.Status))

	s.logger.Info("transaction recorded",
		"transaction_id", saved.TransactionID,
		"transaction_type", txnType,
		"gateway_transaction_id", saved.GatewayTransactionID,
		"success", saved.Success,
		"status", info.Status,
	)

	return &info, nil
}
