package billing_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/config"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/infrastructure/billing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *billing.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return billing.NewClient(config.BillingConfig{
		BaseURL:     server.URL,
		Username:    "admin",
		Password:    "password",
		ConnTimeout: 5 * time.Second,
	})
}

func callContext() domain.CallContext {
	return domain.CallContext{TenantID: uuid.New(), CreatedBy: "tests"}
}

func TestClient_GetAccount(t *testing.T) {
	accountID := uuid.New()
	cc := callContext()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1.0/kb/accounts/"+accountID.String(), r.URL.Path)
		assert.Equal(t, cc.TenantID.String(), r.Header.Get("X-Tenant-ID"))
		assert.Equal(t, "tests", r.Header.Get("X-Created-By"))
		user, _, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "admin", user)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"accountId":   accountID,
			"externalKey": "ext-1",
			"email":       "jane@example.com",
			"currency":    "USD",
		})
	})

	account, err := client.GetAccount(context.Background(), accountID, cc)

	require.NoError(t, err)
	assert.Equal(t, accountID, account.ID)
	assert.Equal(t, "ext-1", account.ExternalKey)
	assert.Equal(t, "USD", account.Currency)
}

func TestClient_GetAccount_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"ACCOUNT_DOES_NOT_EXIST","message":"account does not exist"}`))
	})

	_, err := client.GetAccount(context.Background(), uuid.New(), callContext())

	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestClient_GetCustomField(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]string{
			{"name": "OTHER", "value": "x"},
			{"name": domain.CustomerIDCustomField, "value": "cust-1"},
		})
	})

	value, err := client.GetCustomField(context.Background(), uuid.New(), domain.CustomerIDCustomField, callContext())
	require.NoError(t, err)
	assert.Equal(t, "cust-1", value)

	missing, err := client.GetCustomField(context.Background(), uuid.New(), "NOT_SET", callContext())
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestClient_AddCustomField(t *testing.T) {
	accountID := uuid.New()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var fields []map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
		require.Len(t, fields, 1)
		assert.Equal(t, domain.CustomerIDCustomField, fields[0]["name"])
		assert.Equal(t, "cust-1", fields[0]["value"])
		assert.Equal(t, accountID.String(), fields[0]["objectId"])
		w.WriteHeader(http.StatusCreated)
	})

	err := client.AddCustomField(context.Background(), accountID, domain.CustomerIDCustomField, "cust-1", callContext())

	require.NoError(t, err)
}

func TestClient_RegisterPaymentMethod(t *testing.T) {
	accountID := uuid.New()
	created := uuid.New()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1.0/kb/accounts/"+accountID.String()+"/paymentMethods", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("isDefault"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "tok-a", body["externalKey"])
		assert.Equal(t, billing.PluginName, body["pluginName"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"paymentMethodId": created.String()})
	})

	id, err := client.RegisterPaymentMethod(context.Background(), accountID, "tok-a", true,
		[]domain.PluginProperty{{Key: "token", Value: "tok-a"}}, callContext())

	require.NoError(t, err)
	assert.Equal(t, created, id)
}

func TestClient_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	})

	_, err := client.GetCustomField(context.Background(), uuid.New(), "X", callContext())

	billingErr, ok := billing.IsBillingError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, billingErr.StatusCode)
	assert.True(t, billingErr.IsRetryable())
}
