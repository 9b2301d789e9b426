package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/api"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/application/services"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/application/services/testhelpers"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/config"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/infrastructure/billing"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/infrastructure/gateway"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/interfaces/rest/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Stack is the plugin wired the way cmd/plugin wires it, against a throwaway Postgres
// and fake gateway and billing servers
type Stack struct {
	DB      *testhelpers.TestDatabase
	Gateway *FakeGateway
	Billing *FakeBilling
	Server  *httptest.Server
}

func StartStack(t *testing.T) *Stack {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db := testhelpers.SetupTestDatabase(t)
	gw := NewFakeGateway()
	billingServer := NewFakeBilling()

	gatewayCfg := config.GatewayConfig{Defaults: config.TenantConfig{
		BaseURL:                       gw.URL,
		MerchantID:                    "e2e-merchant",
		ConnTimeout:                   5 * time.Second,
		PendingExpirationPeriod:       72 * time.Hour,
		AuthorizationExpirationPeriod: 7 * 24 * time.Hour,
	}}
	gateways := gateway.NewFactory(gatewayCfg, config.RetryConfig{BaseDelay: 10 * time.Millisecond, MaxRetries: 1}, config.RateLimitConfig{}, logger)
	billingClient := billing.NewClient(config.BillingConfig{BaseURL: billingServer.URL, ConnTimeout: 5 * time.Second})

	responseRepo := postgres.NewResponseRepository(db.DB)
	paymentMethodRepo := postgres.NewPaymentMethodRepository(db.DB)

	h := handlers.NewHandlers(
		services.NewTransactionService(responseRepo, paymentMethodRepo, billingClient, gateways, logger),
		services.NewPaymentInfoService(responseRepo, gateways, gatewayCfg, logger),
		services.NewPaymentMethodService(paymentMethodRepo, billingClient, billingClient, gateways, logger),
		db.DB,
		logger,
	)

	mux := http.NewServeMux()
	h.Register(mux)

	doc, err := api.GetSwagger()
	require.NoError(t, err)
	validate, err := middleware.OpenAPIValidator(doc, logger)
	require.NoError(t, err)

	handler := validate(mux)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.Timeout(10 * time.Second)(handler)

	return &Stack{
		DB:      db,
		Gateway: gw,
		Billing: billingServer,
		Server:  httptest.NewServer(handler),
	}
}

func (s *Stack) Close(t *testing.T) {
	s.Server.Close()
	s.Gateway.Close()
	s.Billing.Close()
	s.DB.Cleanup(t)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// TestClient wraps HTTP calls to the plugin for one tenant
type TestClient struct {
	baseURL    string
	tenantID   uuid.UUID
	httpClient *http.Client
}

func NewTestClient(baseURL string, tenantID uuid.UUID) *TestClient {
	return &TestClient{
		baseURL:  baseURL,
		tenantID: tenantID,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Response is a decoded plugin answer
type Response struct {
	StatusCode int
	ErrorCode  string
	data       json.RawMessage
}

func (r Response) Decode(t *testing.T, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.data, dest), string(r.data))
}

func (c *TestClient) do(t *testing.T, method, path string, body any) Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Tenant-ID", c.tenantID.String())
	req.Header.Set("X-Created-By", "e2e")

	resp, err := c.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := Response{StatusCode: resp.StatusCode}
	if len(raw) > 0 {
		var env envelope
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
		out.ErrorCode = env.Error.Code
		out.data = env.Data
	}
	return out
}

// Transaction submits one operation for a payment. A nil amount is left out of the body.
func (c *TestClient) Transaction(t *testing.T, op string, paymentID, accountID, transactionID uuid.UUID, paymentMethodID *uuid.UUID, amount string) Response {
	body := map[string]any{
		"account_id":     accountID,
		"transaction_id": transactionID,
	}
	if paymentMethodID != nil {
		body["payment_method_id"] = paymentMethodID
	}
	if amount != "" {
		body["amount"] = amount
		body["currency"] = "USD"
	}
	return c.do(t, http.MethodPost, "/v1/payments/"+paymentID.String()+"/"+op, body)
}

func (c *TestClient) PaymentInfo(t *testing.T, paymentID, accountID uuid.UUID) []domain.TransactionInfo {
	resp := c.do(t, http.MethodGet, "/v1/payments/"+paymentID.String()+"?accountId="+accountID.String(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var infos []domain.TransactionInfo
	resp.Decode(t, &infos)
	return infos
}

func (c *TestClient) AddPaymentMethod(t *testing.T, accountID, paymentMethodID uuid.UUID, externalID string, properties ...domain.PluginProperty) Response {
	body := map[string]any{
		"payment_method_id":          paymentMethodID,
		"external_payment_method_id": externalID,
		"is_default":                 true,
	}
	if len(properties) > 0 {
		body["properties"] = properties
	}
	return c.do(t, http.MethodPost, "/v1/accounts/"+accountID.String()+"/payment-methods", body)
}

func (c *TestClient) PaymentMethods(t *testing.T, accountID uuid.UUID, refresh bool) []domain.PaymentMethodInfo {
	path := "/v1/accounts/" + accountID.String() + "/payment-methods"
	if refresh {
		path += "?refresh=true"
	}
	resp := c.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var infos []domain.PaymentMethodInfo
	resp.Decode(t, &infos)
	return infos
}

func (c *TestClient) DeletePaymentMethod(t *testing.T, accountID, paymentMethodID uuid.UUID) Response {
	return c.do(t, http.MethodDelete, "/v1/accounts/"+accountID.String()+"/payment-methods/"+paymentMethodID.String(), nil)
}
