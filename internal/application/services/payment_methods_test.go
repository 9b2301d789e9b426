package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/application"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/application/mocks"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/application/services/testhelpers"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PaymentMethodServiceTestSuite struct {
	suite.Suite
	methods     *testhelpers.MemoryPaymentMethodStore
	accounts    *testhelpers.MemoryAccountDirectory
	registry    *testhelpers.MemoryRegistry
	mockGateway *mocks.MockGatewayClient
	factory     *testhelpers.StaticGatewayFactory
	service     *PaymentMethodService

	cc        domain.CallContext
	accountID uuid.UUID
}

func TestPaymentMethodServiceSuite(t *testing.T) {
	suite.Run(t, new(PaymentMethodServiceTestSuite))
}

func (suite *PaymentMethodServiceTestSuite) SetupTest() {
	suite.methods = testhelpers.NewMemoryPaymentMethodStore()
	suite.accounts = testhelpers.NewMemoryAccountDirectory()
	suite.registry = testhelpers.NewMemoryRegistry()
	suite.mockGateway = mocks.NewMockGatewayClient(suite.T())
	suite.factory = &testhelpers.StaticGatewayFactory{Client: suite.mockGateway}

	suite.service = NewPaymentMethodService(suite.methods, suite.accounts, suite.registry, suite.factory, discardLogger())
	suite.service.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }

	suite.cc = domain.CallContext{TenantID: uuid.New(), CreatedBy: "test"}
	suite.accountID = uuid.New()
}

func (suite *PaymentMethodServiceTestSuite) addLocal(token string) *domain.PaymentMethod {
	pm := testhelpers.NewPaymentMethod(suite.cc.TenantID, suite.accountID, token)
	require.NoError(suite.T(), suite.methods.AddPaymentMethod(context.Background(), pm))
	return pm
}

func (suite *PaymentMethodServiceTestSuite) activeTokens() []string {
	list, err := suite.methods.ListPaymentMethods(context.Background(), suite.accountID, suite.cc.TenantID)
	require.NoError(suite.T(), err)
	tokens := make([]string, 0, len(list))
	for _, pm := range list {
		tokens = append(tokens, pm.GatewayToken)
	}
	return tokens
}

// ============================================================================
// ADD
// ============================================================================

func (suite *PaymentMethodServiceTestSuite) Test_Add_WithNonce() {
	ctx := context.Background()
	t := suite.T()
	suite.accounts.MapCustomer(suite.accountID, "cust-1")
	pmID := uuid.New()
	created := testhelpers.GatewayPaymentMethod("cust-1", pmID.String())

	suite.mockGateway.EXPECT().
		CreatePaymentMethod(mock.Anything, mock.MatchedBy(func(req domain.CreatePaymentMethodRequest) bool {
			return req.Token == pmID.String() &&
				req.CustomerID == "cust-1" &&
				req.PaymentMethodNonce == "nonce-1" &&
				req.Type == domain.PaymentMethodTypeCard
		})).
		Return(&domain.PaymentMethodResult{Success: true, PaymentMethod: &created}, nil).
		Once()

	detail, err := suite.service.AddPaymentMethod(ctx, AddPaymentMethodCommand{
		AccountID:       suite.accountID,
		PaymentMethodID: pmID,
		SetDefault:      true,
		Properties:      []domain.PluginProperty{{Key: domain.PropertyNonce, Value: "nonce-1"}},
	}, suite.cc)

	require.NoError(t, err)
	assert.Equal(t, pmID.String(), detail.ExternalPaymentMethodID)
	assert.True(t, detail.IsDefault)
	assert.Equal(t, "1111", detail.Properties["last4"])

	stored, err := suite.methods.GetPaymentMethod(ctx, pmID, suite.cc.TenantID)
	require.NoError(t, err)
	assert.Equal(t, pmID.String(), stored.GatewayToken)
	assert.Equal(t, "cust-1", stored.AdditionalData[domain.PropertyCustomerID])
}

func (suite *PaymentMethodServiceTestSuite) Test_Add_QueryPropertiesWin() {
	t := suite.T()
	pmID := uuid.New()
	created := testhelpers.GatewayPaymentMethod("cust-q", pmID.String())
	created.Type = domain.PaymentMethodTypePayPal

	suite.mockGateway.EXPECT().
		CreatePaymentMethod(mock.Anything, mock.MatchedBy(func(req domain.CreatePaymentMethodRequest) bool {
			return req.PaymentMethodNonce == "nonce-query" && req.Type == domain.PaymentMethodTypePayPal && req.CustomerID == "cust-q"
		})).
		Return(&domain.PaymentMethodResult{Success: true, PaymentMethod: &created}, nil).
		Once()

	_, err := suite.service.AddPaymentMethod(context.Background(), AddPaymentMethodCommand{
		AccountID:       suite.accountID,
		PaymentMethodID: pmID,
		Properties: []domain.PluginProperty{
			{Key: domain.PropertyNonce, Value: "nonce-body"},
			{Key: domain.PropertyPaymentMethodType, Value: "CARD"},
		},
		QueryProperties: []domain.PluginProperty{
			{Key: domain.PropertyNonce, Value: "nonce-query"},
			{Key: domain.PropertyPaymentMethodType, Value: "paypal"},
			{Key: domain.PropertyCustomerID, Value: "cust-q"},
		},
	}, suite.cc)

	require.NoError(t, err)
}

func (suite *PaymentMethodServiceTestSuite) Test_Add_NonceWithoutCustomer() {
	_, err := suite.service.AddPaymentMethod(context.Background(), AddPaymentMethodCommand{
		AccountID:       suite.accountID,
		PaymentMethodID: uuid.New(),
		Properties:      []domain.PluginProperty{{Key: domain.PropertyNonce, Value: "nonce-1"}},
	}, suite.cc)

	assert.True(suite.T(), application.HasCode(err, application.ErrCodePrecondition))
}

func (suite *PaymentMethodServiceTestSuite) Test_Add_TokenMismatch() {
	t := suite.T()
	suite.accounts.MapCustomer(suite.accountID, "cust-1")
	created := testhelpers.GatewayPaymentMethod("cust-1", "some-other-token")

	suite.mockGateway.EXPECT().
		CreatePaymentMethod(mock.Anything, mock.Anything).
		Return(&domain.PaymentMethodResult{Success: true, PaymentMethod: &created}, nil).
		Once()

	_, err := suite.service.AddPaymentMethod(context.Background(), AddPaymentMethodCommand{
		AccountID:       suite.accountID,
		PaymentMethodID: uuid.New(),
		Properties:      []domain.PluginProperty{{Key: domain.PropertyNonce, Value: "nonce-1"}},
	}, suite.cc)

	assert.True(t, application.HasCode(err, application.ErrCodePrecondition))
	assert.Empty(t, suite.activeTokens())
}

func (suite *PaymentMethodServiceTestSuite) Test_Add_GatewayRejects() {
	t := suite.T()
	suite.accounts.MapCustomer(suite.accountID, "cust-1")

	suite.mockGateway.EXPECT().
		CreatePaymentMethod(mock.Anything, mock.Anything).
		Return(&domain.PaymentMethodResult{Success: false, Message: "Unknown or expired payment_method_nonce."}, nil).
		Once()

	_, err := suite.service.AddPaymentMethod(context.Background(), AddPaymentMethodCommand{
		AccountID:       suite.accountID,
		PaymentMethodID: uuid.New(),
		Properties:      []domain.PluginProperty{{Key: domain.PropertyNonce, Value: "nonce-1"}},
	}, suite.cc)

	require.Error(t, err)
	assert.True(t, application.HasCode(err, application.ErrCodeConnectivity))
	assert.Contains(t, err.Error(), "expired payment_method_nonce")
}

func (suite *PaymentMethodServiceTestSuite) Test_Add_AdoptsExistingGatewayMethod() {
	t := suite.T()
	pmID := uuid.New()
	existing := testhelpers.GatewayPaymentMethod("cust-1", "tok-ext")

	suite.mockGateway.EXPECT().GetPaymentMethod(mock.Anything, "tok-ext").Return(&existing, nil).Once()

	detail, err := suite.service.AddPaymentMethod(context.Background(), AddPaymentMethodCommand{
		AccountID:               suite.accountID,
		PaymentMethodID:         pmID,
		ExternalPaymentMethodID: "tok-ext",
	}, suite.cc)

	require.NoError(t, err)
	assert.Equal(t, "tok-ext", detail.ExternalPaymentMethodID)
	assert.Equal(t, []string{"tok-ext"}, suite.activeTokens())
}

func (suite *PaymentMethodServiceTestSuite) Test_Add_ExistingGatewayMethodMissing() {
	suite.mockGateway.EXPECT().
		GetPaymentMethod(mock.Anything, "tok-gone").
		Return(nil, domain.ErrPaymentMethodNotFound).
		Once()

	_, err := suite.service.AddPaymentMethod(context.Background(), AddPaymentMethodCommand{
		AccountID:               suite.accountID,
		PaymentMethodID:         uuid.New(),
		ExternalPaymentMethodID: "tok-gone",
	}, suite.cc)

	assert.True(suite.T(), application.HasCode(err, application.ErrCodeNotFound))
}

// ============================================================================
// DELETE / DETAIL
// ============================================================================

func (suite *PaymentMethodServiceTestSuite) Test_Delete_DeactivatesAfterGateway() {
	t := suite.T()
	pm := suite.addLocal("tok-a")

	suite.mockGateway.EXPECT().DeletePaymentMethod(mock.Anything, "tok-a").Return(&domain.Result{Success: true}, nil).Once()

	err := suite.service.DeletePaymentMethod(context.Background(), suite.accountID, pm.PaymentMethodID, suite.cc)

	require.NoError(t, err)
	stored := suite.methods.Find(suite.cc.TenantID, pm.PaymentMethodID)
	require.NotNil(t, stored)
	assert.False(t, stored.IsActive)
}

func (suite *PaymentMethodServiceTestSuite) Test_Delete_GatewayFailureKeepsLocalRow() {
	t := suite.T()
	pm := suite.addLocal("tok-a")

	suite.mockGateway.EXPECT().DeletePaymentMethod(mock.Anything, "tok-a").Return(nil, errors.New("timeout")).Once()

	err := suite.service.DeletePaymentMethod(context.Background(), suite.accountID, pm.PaymentMethodID, suite.cc)

	assert.True(t, application.HasCode(err, application.ErrCodeConnectivity))
	assert.Equal(t, []string{"tok-a"}, suite.activeTokens())
}

func (suite *PaymentMethodServiceTestSuite) Test_Delete_Unknown() {
	err := suite.service.DeletePaymentMethod(context.Background(), suite.accountID, uuid.New(), suite.cc)

	assert.True(suite.T(), application.HasCode(err, application.ErrCodeNotFound))
	assert.Zero(suite.T(), suite.factory.Calls)
}

func (suite *PaymentMethodServiceTestSuite) Test_Detail_PlaceholderWhenMissing() {
	t := suite.T()
	pmID := uuid.New()

	detail, err := suite.service.GetPaymentMethodDetail(context.Background(), suite.accountID, pmID, suite.cc)

	require.NoError(t, err)
	assert.Equal(t, pmID, detail.PaymentMethodID)
	assert.Empty(t, detail.ExternalPaymentMethodID)
	assert.False(t, detail.IsDefault)
	assert.Empty(t, detail.Properties)
}

// ============================================================================
// LIST / SYNC
// ============================================================================

func (suite *PaymentMethodServiceTestSuite) Test_List_WithoutRefresh() {
	suite.addLocal("tok-a")

	infos, err := suite.service.GetPaymentMethods(context.Background(), suite.accountID, false, suite.cc)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), infos, 1)
	assert.Equal(suite.T(), "tok-a", infos[0].ExternalPaymentMethodID)
	assert.Zero(suite.T(), suite.factory.Calls)
}

func (suite *PaymentMethodServiceTestSuite) Test_List_RefreshWithoutCustomer() {
	suite.addLocal("tok-a")

	infos, err := suite.service.GetPaymentMethods(context.Background(), suite.accountID, true, suite.cc)

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), infos, 1)
	assert.Zero(suite.T(), suite.factory.Calls)
}

func (suite *PaymentMethodServiceTestSuite) Test_List_RefreshIsOuterJoin() {
	t := suite.T()
	suite.accounts.MapCustomer(suite.accountID, "cust-1")
	a := suite.addLocal("tok-a")
	suite.addLocal("tok-b")

	b := testhelpers.GatewayPaymentMethod("cust-1", "tok-b")
	b.Default = true
	b.Details["last4"] = "4242"
	c := testhelpers.GatewayPaymentMethod("cust-1", "tok-c")

	suite.mockGateway.EXPECT().
		ListPaymentMethods(mock.Anything, "cust-1").
		Return([]domain.GatewayPaymentMethod{b, c}, nil).
		Once()

	infos, err := suite.service.GetPaymentMethods(context.Background(), suite.accountID, true, suite.cc)

	require.NoError(t, err)
	assert.Equal(t, []string{"tok-b", "tok-c"}, suite.activeTokens())
	require.Len(t, infos, 2)

	assert.False(t, suite.methods.Find(suite.cc.TenantID, a.PaymentMethodID).IsActive)

	registeredID, ok := suite.registry.Registered["tok-c"]
	require.True(t, ok)
	assert.Equal(t, registeredID, infos[1].PaymentMethodID)

	assert.True(t, infos[0].IsDefault)
	updated, err := suite.methods.GetPaymentMethod(context.Background(), infos[0].PaymentMethodID, suite.cc.TenantID)
	require.NoError(t, err)
	assert.Equal(t, "4242", updated.AdditionalData["last4"])
}

func (suite *PaymentMethodServiceTestSuite) Test_List_RegistrationFailureIsSkipped() {
	t := suite.T()
	suite.accounts.MapCustomer(suite.accountID, "cust-1")
	suite.addLocal("tok-b")
	suite.registry.RegisterPaymentMethodFn = func(context.Context, uuid.UUID, string, bool, []domain.PluginProperty, domain.CallContext) (uuid.UUID, error) {
		return uuid.Nil, errors.New("billing platform unavailable")
	}

	suite.mockGateway.EXPECT().
		ListPaymentMethods(mock.Anything, "cust-1").
		Return([]domain.GatewayPaymentMethod{
			testhelpers.GatewayPaymentMethod("cust-1", "tok-b"),
			testhelpers.GatewayPaymentMethod("cust-1", "tok-c"),
		}, nil).
		Once()

	infos, err := suite.service.GetPaymentMethods(context.Background(), suite.accountID, true, suite.cc)

	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "tok-b", infos[0].ExternalPaymentMethodID)
}

func (suite *PaymentMethodServiceTestSuite) Test_List_UpdateFailure() {
	suite.accounts.MapCustomer(suite.accountID, "cust-1")
	suite.addLocal("tok-b")
	suite.methods.UpdatePaymentMethodFn = func(context.Context, *domain.PaymentMethod) error {
		return errors.New("connection reset")
	}

	suite.mockGateway.EXPECT().
		ListPaymentMethods(mock.Anything, "cust-1").
		Return([]domain.GatewayPaymentMethod{testhelpers.GatewayPaymentMethod("cust-1", "tok-b")}, nil).
		Once()

	_, err := suite.service.GetPaymentMethods(context.Background(), suite.accountID, true, suite.cc)

	assert.True(suite.T(), application.HasCode(err, application.ErrCodePersistence))
}

func (suite *PaymentMethodServiceTestSuite) Test_List_GatewayUnreachable() {
	suite.accounts.MapCustomer(suite.accountID, "cust-1")

	suite.mockGateway.EXPECT().
		ListPaymentMethods(mock.Anything, "cust-1").
		Return(nil, errors.New("connection refused")).
		Once()

	_, err := suite.service.GetPaymentMethods(context.Background(), suite.accountID, true, suite.cc)

	assert.True(suite.T(), application.HasCode(err, application.ErrCodeConnectivity))
}
