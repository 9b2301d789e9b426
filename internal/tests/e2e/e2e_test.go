package e2e

import (
	"net/http"
	"testing"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/tests/e2e/testdata"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	createTransactionCall = "POST /v1/transactions"
	transactionStatusCall = "GET /v1/transactions/{id}"
)

type E2ETestSuite struct {
	suite.Suite
	stack  *Stack
	client *TestClient

	customerID string
	accountID  uuid.UUID
}

func TestE2ESuite(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}

func (suite *E2ETestSuite) SetupSuite() {
	suite.stack = StartStack(suite.T())
}

func (suite *E2ETestSuite) TearDownSuite() {
	if suite.stack != nil {
		suite.stack.Close(suite.T())
	}
}

func (suite *E2ETestSuite) SetupTest() {
	suite.client = NewTestClient(suite.stack.Server.URL, uuid.New())
	suite.customerID = "cust-" + uuid.NewString()[:8]
	suite.accountID = suite.stack.Billing.AddAccount(suite.customerID)
}

func (suite *E2ETestSuite) TearDownTest() {
	suite.stack.DB.CleanTables(suite.T())
}

// addVaultedCard stores the card at the gateway and links it to the account
func (suite *E2ETestSuite) addVaultedCard(card testdata.TestCard) uuid.UUID {
	t := suite.T()
	suite.stack.Gateway.Vault(suite.customerID, card)

	pmID := uuid.New()
	resp := suite.client.AddPaymentMethod(t, suite.accountID, pmID, card.Token)
	require.Equal(t, http.StatusCreated, resp.StatusCode, resp.ErrorCode)
	return pmID
}

func (suite *E2ETestSuite) transaction(op string, paymentID uuid.UUID, pmID *uuid.UUID, amount string) (domain.TransactionInfo, Response) {
	resp := suite.client.Transaction(suite.T(), op, paymentID, suite.accountID, uuid.New(), pmID, amount)

	var info domain.TransactionInfo
	if resp.StatusCode == http.StatusOK {
		resp.Decode(suite.T(), &info)
	}
	return info, resp
}

// ============================================================================
// HAPPY PATHS
// ============================================================================

func (suite *E2ETestSuite) TestHappyPath_AuthorizeAndCapture() {
	t := suite.T()
	pmID := suite.addVaultedCard(testdata.VisaCard)
	paymentID := uuid.New()

	auth, resp := suite.transaction("authorize", paymentID, &pmID, testdata.ApprovedAmount)
	require.Equal(t, http.StatusOK, resp.StatusCode, resp.ErrorCode)
	assert.Equal(t, domain.PluginStatusProcessed, auth.Status)
	assert.NotEmpty(t, auth.FirstPaymentReferenceID)
	assert.Equal(t, "AUTHORIZED", auth.Properties["status"])

	capture, resp := suite.transaction("capture", paymentID, nil, testdata.ApprovedAmount)
	require.Equal(t, http.StatusOK, resp.StatusCode, resp.ErrorCode)
	assert.Equal(t, domain.PluginStatusProcessed, capture.Status)
	assert.Equal(t, auth.FirstPaymentReferenceID, capture.FirstPaymentReferenceID)

	infos := suite.client.PaymentInfo(t, paymentID, suite.accountID)
	require.Len(t, infos, 2)
	assert.Equal(t, domain.TransactionTypeAuthorize, infos[0].TransactionType)
	assert.Equal(t, domain.TransactionTypeCapture, infos[1].TransactionType)
}

func (suite *E2ETestSuite) TestHappyPath_AuthorizeAndVoid() {
	t := suite.T()
	pmID := suite.addVaultedCard(testdata.VisaCard)
	paymentID := uuid.New()

	_, resp := suite.transaction("authorize", paymentID, &pmID, testdata.ApprovedAmount)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	void, resp := suite.transaction("void", paymentID, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode, resp.ErrorCode)
	assert.Equal(t, domain.PluginStatusProcessed, void.Status)
	assert.Nil(t, void.Amount)
	assert.Nil(t, void.Currency)
}

func (suite *E2ETestSuite) TestHappyPath_PurchaseAndRefund() {
	t := suite.T()
	pmID := suite.addVaultedCard(testdata.VisaCard)
	paymentID := uuid.New()

	purchase, resp := suite.transaction("purchase", paymentID, &pmID, testdata.ApprovedAmount)
	require.Equal(t, http.StatusOK, resp.StatusCode, resp.ErrorCode)
	assert.Equal(t, "SUBMITTED_FOR_SETTLEMENT", purchase.Properties["status"])

	refund, resp := suite.transaction("refund", paymentID, nil, "4.00")
	require.Equal(t, http.StatusOK, resp.StatusCode, resp.ErrorCode)
	assert.Equal(t, domain.PluginStatusProcessed, refund.Status)
	assert.NotEqual(t, purchase.FirstPaymentReferenceID, refund.FirstPaymentReferenceID)
}

func (suite *E2ETestSuite) TestPurchase_SettlementObservedOnRead() {
	t := suite.T()
	pmID := suite.addVaultedCard(testdata.VisaCard)
	paymentID := uuid.New()

	purchase, resp := suite.transaction("purchase", paymentID, &pmID, testdata.ApprovedAmount)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	suite.stack.Gateway.Settle(purchase.FirstPaymentReferenceID)

	infos := suite.client.PaymentInfo(t, paymentID, suite.accountID)
	require.Len(t, infos, 1)
	assert.Equal(t, "SETTLED", infos[0].Properties[domain.PropertyGatewayTransactionStatus])
	refreshes := suite.stack.Gateway.Calls(transactionStatusCall)

	infos = suite.client.PaymentInfo(t, paymentID, suite.accountID)
	require.Len(t, infos, 1)
	assert.Equal(t, refreshes, suite.stack.Gateway.Calls(transactionStatusCall))
}

// ============================================================================
// IDEMPOTENCY AND FAILURES
// ============================================================================

func (suite *E2ETestSuite) TestPurchase_ReplayDoesNotChargeTwice() {
	t := suite.T()
	pmID := suite.addVaultedCard(testdata.VisaCard)
	paymentID := uuid.New()
	transactionID := uuid.New()
	before := suite.stack.Gateway.Calls(createTransactionCall)

	first := suite.client.Transaction(t, "purchase", paymentID, suite.accountID, transactionID, &pmID, testdata.ApprovedAmount)
	second := suite.client.Transaction(t, "purchase", paymentID, suite.accountID, transactionID, &pmID, testdata.ApprovedAmount)
	require.Equal(t, http.StatusOK, first.StatusCode)
	require.Equal(t, http.StatusOK, second.StatusCode)

	var a, b domain.TransactionInfo
	first.Decode(t, &a)
	second.Decode(t, &b)
	assert.Equal(t, a.FirstPaymentReferenceID, b.FirstPaymentReferenceID)
	assert.Equal(t, before+1, suite.stack.Gateway.Calls(createTransactionCall))
}

func (suite *E2ETestSuite) TestDeclinedAuthorization_CannotBeCaptured() {
	t := suite.T()
	pmID := suite.addVaultedCard(testdata.VisaCard)
	paymentID := uuid.New()

	auth, resp := suite.transaction("authorize", paymentID, &pmID, testdata.DeclinedAmount)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.PluginStatusError, auth.Status)
	assert.Equal(t, testdata.DeclinedResponseCode, auth.GatewayErrorCode)
	assert.Equal(t, testdata.DeclinedResponseText, auth.GatewayError)

	_, resp = suite.transaction("capture", paymentID, nil, testdata.DeclinedAmount)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "PRECONDITION_FAILED", resp.ErrorCode)
}

func (suite *E2ETestSuite) TestPaymentInfo_TenantIsolation() {
	t := suite.T()
	pmID := suite.addVaultedCard(testdata.VisaCard)
	paymentID := uuid.New()

	_, resp := suite.transaction("purchase", paymentID, &pmID, testdata.ApprovedAmount)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	other := NewTestClient(suite.stack.Server.URL, uuid.New())
	assert.Empty(t, other.PaymentInfo(t, paymentID, suite.accountID))
}

// ============================================================================
// PAYMENT METHODS
// ============================================================================

func (suite *E2ETestSuite) TestAddCardWithNonce_MapsCustomer() {
	t := suite.T()
	accountID := suite.stack.Billing.AddAccount("")
	pmID := uuid.New()

	resp := suite.client.AddPaymentMethod(t, accountID, pmID, "",
		domain.PluginProperty{Key: domain.PropertyNonce, Value: "fake-valid-nonce"},
		domain.PluginProperty{Key: domain.PropertyCustomerID, Value: suite.customerID},
	)
	require.Equal(t, http.StatusCreated, resp.StatusCode, resp.ErrorCode)

	var detail domain.PaymentMethodDetail
	resp.Decode(t, &detail)
	assert.Equal(t, pmID.String(), detail.ExternalPaymentMethodID)
	assert.True(t, suite.stack.Gateway.HasPaymentMethod(pmID.String()))
	assert.Equal(t, suite.customerID, suite.stack.Billing.CustomField(accountID, domain.CustomerIDCustomField))
}

func (suite *E2ETestSuite) TestRefreshPaymentMethods_AdoptsAndDeletes() {
	t := suite.T()
	visaID := suite.addVaultedCard(testdata.VisaCard)
	suite.stack.Gateway.Vault(suite.customerID, testdata.MasterCard)

	assert.Len(t, suite.client.PaymentMethods(t, suite.accountID, false), 1)

	methods := suite.client.PaymentMethods(t, suite.accountID, true)
	require.Len(t, methods, 2)
	assert.Contains(t, suite.stack.Billing.RegisteredKeys(), testdata.MasterCard.Token)

	resp := suite.client.DeletePaymentMethod(t, suite.accountID, visaID)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.False(t, suite.stack.Gateway.HasPaymentMethod(testdata.VisaCard.Token))

	methods = suite.client.PaymentMethods(t, suite.accountID, true)
	require.Len(t, methods, 1)
	assert.Equal(t, testdata.MasterCard.Token, methods[0].ExternalPaymentMethodID)
}
