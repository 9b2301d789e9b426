package services

import (
	"context"
	"testing"
	"time"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/application/mocks"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/application/services/testhelpers"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/config"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ScenarioTestSuite drives the services together against shared in-memory stores
type ScenarioTestSuite struct {
	suite.Suite
	mockGateway  *mocks.MockGatewayClient
	transactions *TransactionService
	paymentInfo  *PaymentInfoService
	methods      *PaymentMethodService

	cc        domain.CallContext
	accountID uuid.UUID
	ten       decimal.Decimal
}

func TestScenarioSuite(t *testing.T) {
	suite.Run(t, new(ScenarioTestSuite))
}

func (suite *ScenarioTestSuite) SetupTest() {
	responses := testhelpers.NewMemoryResponseStore()
	store := testhelpers.NewMemoryPaymentMethodStore()
	accounts := testhelpers.NewMemoryAccountDirectory()
	suite.mockGateway = mocks.NewMockGatewayClient(suite.T())
	factory := &testhelpers.StaticGatewayFactory{Client: suite.mockGateway}
	gatewayCfg := config.GatewayConfig{Defaults: config.TenantConfig{
		BaseURL:                       "http://gateway.test",
		PendingExpirationPeriod:       12 * time.Hour,
		AuthorizationExpirationPeriod: 7 * 24 * time.Hour,
	}}

	suite.transactions = NewTransactionService(responses, store, accounts, factory, discardLogger())
	suite.paymentInfo = NewPaymentInfoService(responses, factory, gatewayCfg, discardLogger())
	suite.methods = NewPaymentMethodService(store, accounts, testhelpers.NewMemoryRegistry(), factory, discardLogger())

	suite.cc = domain.CallContext{TenantID: uuid.New(), CreatedBy: "test"}
	suite.accountID = uuid.New()
	suite.ten = decimal.NewFromInt(10)
	accounts.MapCustomer(suite.accountID, "cust-1")
}

func (suite *ScenarioTestSuite) addCard() uuid.UUID {
	pmID := uuid.New()
	created := testhelpers.GatewayPaymentMethod("cust-1", pmID.String())

	suite.mockGateway.EXPECT().
		CreatePaymentMethod(mock.Anything, mock.Anything).
		Return(&domain.PaymentMethodResult{Success: true, PaymentMethod: &created}, nil).
		Once()
	suite.mockGateway.EXPECT().
		CreateChargeToken(mock.Anything, pmID.String()).
		Return("nonce-"+pmID.String(), nil).
		Once()

	_, err := suite.methods.AddPaymentMethod(context.Background(), AddPaymentMethodCommand{
		AccountID:       suite.accountID,
		PaymentMethodID: pmID,
		Properties: []domain.PluginProperty{
			{Key: domain.PropertyNonce, Value: "fake-valid-nonce"},
			{Key: domain.PropertyPaymentMethodType, Value: "CARD"},
		},
	}, suite.cc)
	require.NoError(suite.T(), err)
	return pmID
}

func (suite *ScenarioTestSuite) command(paymentID, pmID uuid.UUID, amount *decimal.Decimal) TransactionCommand {
	cmd := TransactionCommand{
		AccountID:       suite.accountID,
		PaymentID:       paymentID,
		TransactionID:   uuid.New(),
		PaymentMethodID: &pmID,
		Amount:          amount,
	}
	if amount != nil {
		cmd.Currency = "USD"
	}
	return cmd
}

func (suite *ScenarioTestSuite) Test_AddCardThenPurchase() {
	ctx := context.Background()
	t := suite.T()
	pmID := suite.addCard()
	paymentID := uuid.New()

	suite.mockGateway.EXPECT().
		Charge(mock.Anything, mock.MatchedBy(func(req domain.ChargeRequest) bool { return req.SubmitForSettlement })).
		Return(testhelpers.TransactionResult(domain.GatewayStatusSettled, suite.ten), nil).
		Once()

	_, err := suite.transactions.Execute(ctx, domain.TransactionTypePurchase, suite.command(paymentID, pmID, &suite.ten), suite.cc)
	require.NoError(t, err)

	infos, err := suite.paymentInfo.GetPaymentInfo(ctx, suite.accountID, paymentID, suite.cc)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, domain.TransactionTypePurchase, infos[0].TransactionType)
	assert.Equal(t, domain.PluginStatusProcessed, infos[0].Status)
	assert.True(t, suite.ten.Equal(*infos[0].Amount))
}

func (suite *ScenarioTestSuite) Test_AuthorizeThenCapture() {
	ctx := context.Background()
	t := suite.T()
	pmID := suite.addCard()
	paymentID := uuid.New()

	auth := testhelpers.TransactionResult(domain.GatewayStatusAuthorized, suite.ten)
	suite.mockGateway.EXPECT().Charge(mock.Anything, mock.Anything).Return(auth, nil).Once()
	suite.mockGateway.EXPECT().
		Capture(mock.Anything, auth.Transaction.ID, mock.Anything).
		Return(testhelpers.TransactionResult(domain.GatewayStatusSettled, suite.ten), nil).
		Once()

	_, err := suite.transactions.Execute(ctx, domain.TransactionTypeAuthorize, suite.command(paymentID, pmID, &suite.ten), suite.cc)
	require.NoError(t, err)
	_, err = suite.transactions.Execute(ctx, domain.TransactionTypeCapture, suite.command(paymentID, pmID, &suite.ten), suite.cc)
	require.NoError(t, err)

	infos, err := suite.paymentInfo.GetPaymentInfo(ctx, suite.accountID, paymentID, suite.cc)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, domain.TransactionTypeAuthorize, infos[0].TransactionType)
	assert.Equal(t, domain.TransactionTypeCapture, infos[1].TransactionType)
	assert.True(t, suite.ten.Equal(*infos[1].Amount))
	assert.Equal(t, domain.PluginStatusProcessed, infos[1].Status)
}

func (suite *ScenarioTestSuite) Test_AuthorizeThenVoid() {
	ctx := context.Background()
	t := suite.T()
	pmID := suite.addCard()
	paymentID := uuid.New()

	auth := testhelpers.TransactionResult(domain.GatewayStatusAuthorized, suite.ten)
	suite.mockGateway.EXPECT().Charge(mock.Anything, mock.Anything).Return(auth, nil).Once()
	suite.mockGateway.EXPECT().
		Void(mock.Anything, auth.Transaction.ID).
		Return(testhelpers.TransactionResult(domain.GatewayStatusVoided, suite.ten), nil).
		Once()

	_, err := suite.transactions.Execute(ctx, domain.TransactionTypeAuthorize, suite.command(paymentID, pmID, &suite.ten), suite.cc)
	require.NoError(t, err)
	_, err = suite.transactions.Execute(ctx, domain.TransactionTypeVoid, suite.command(paymentID, pmID, nil), suite.cc)
	require.NoError(t, err)

	infos, err := suite.paymentInfo.GetPaymentInfo(ctx, suite.accountID, paymentID, suite.cc)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, domain.TransactionTypeVoid, infos[1].TransactionType)
	assert.Nil(t, infos[1].Amount)
	assert.Nil(t, infos[1].Currency)
}
