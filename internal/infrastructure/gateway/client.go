package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/config"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

// HTTPClient talks to the gateway REST API with one tenant's credentials
type HTTPClient struct {
	baseURL    string
	merchantID string
	publicKey  string
	privateKey string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(cfg config.TenantConfig, rl config.RateLimitConfig) *HTTPClient {
	limit := rate.Inf
	if rl.RequestsPerSecond > 0 {
		limit = rate.Limit(rl.RequestsPerSecond)
	}
	burst := rl.Burst
	if burst < 1 {
		burst = 1
	}

	return &HTTPClient{
		baseURL:    cfg.BaseURL,
		merchantID: cfg.MerchantID,
		publicKey:  cfg.PublicKey,
		privateKey: cfg.PrivateKey,
		httpClient: &http.Client{
			Timeout: cfg.ConnTimeout,
		},
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (c *HTTPClient) CreateChargeToken(ctx context.Context, paymentMethodToken string) (string, error) {
	url := fmt.Sprintf("%s/v1/payment_method_nonces", c.baseURL)
	resp, err := sendRequest[nonceRequest, nonceResponse](c, ctx, http.MethodPost, url, &nonceRequest{PaymentMethodToken: paymentMethodToken}, "")
	if err != nil {
		return "", err
	}
	if resp.Nonce == "" {
		return "", fmt.Errorf("gateway returned no nonce for token %s", paymentMethodToken)
	}
	return resp.Nonce, nil
}

// Charge creates a sale. The order id doubles as the idempotency key so a replayed
// submission is rejected by the gateway as a duplicate.
func (c *HTTPClient) Charge(ctx context.Context, req domain.ChargeRequest) (*domain.TransactionResult, error) {
	url := fmt.Sprintf("%s/v1/transactions", c.baseURL)
	body := transactionRequest{
		Type:               transactionTypeSale,
		Amount:             req.Amount,
		OrderID:            req.OrderID,
		CustomerID:         req.CustomerID,
		PaymentMethodNonce: req.PaymentMethodNonce,
		Options:            transactionOptions{SubmitForSettlement: req.SubmitForSettlement},
	}
	return sendRequest[transactionRequest, domain.TransactionResult](c, ctx, http.MethodPost, url, &body, req.OrderID)
}

func (c *HTTPClient) Credit(ctx context.Context, req domain.CreditRequest) (*domain.TransactionResult, error) {
	url := fmt.Sprintf("%s/v1/transactions", c.baseURL)
	body := transactionRequest{
		Type:               transactionTypeCredit,
		Amount:             req.Amount,
		CustomerID:         req.CustomerID,
		PaymentMethodNonce: req.PaymentMethodNonce,
	}
	return sendRequest[transactionRequest, domain.TransactionResult](c, ctx, http.MethodPost, url, &body, "")
}

func (c *HTTPClient) Capture(ctx context.Context, gatewayTransactionID string, amount decimal.Decimal) (*domain.TransactionResult, error) {
	url := fmt.Sprintf("%s/v1/transactions/%s/submit_for_settlement", c.baseURL, escape(gatewayTransactionID))
	return sendRequest[amountRequest, domain.TransactionResult](c, ctx, http.MethodPost, url, &amountRequest{Amount: amount}, "")
}

func (c *HTTPClient) Void(ctx context.Context, gatewayTransactionID string) (*domain.TransactionResult, error) {
	url := fmt.Sprintf("%s/v1/transactions/%s/void", c.baseURL, escape(gatewayTransactionID))
	return sendRequest[any, domain.TransactionResult](c, ctx, http.MethodPut, url, nil, "")
}

func (c *HTTPClient) Refund(ctx context.Context, gatewayTransactionID string, amount decimal.Decimal) (*domain.TransactionResult, error) {
	url := fmt.Sprintf("%s/v1/transactions/%s/refund", c.baseURL, escape(gatewayTransactionID))
	return sendRequest[amountRequest, domain.TransactionResult](c, ctx, http.MethodPost, url, &amountRequest{Amount: amount}, "")
}

func (c *HTTPClient) GetTransactionStatus(ctx context.Context, gatewayTransactionID string) (domain.GatewayStatus, error) {
	url := fmt.Sprintf("%s/v1/transactions/%s", c.baseURL, escape(gatewayTransactionID))
	resp, err := sendRequest[any, domain.TransactionResult](c, ctx, http.MethodGet, url, nil, "")
	if err != nil {
		return "", err
	}
	if resp.Transaction == nil {
		return "", fmt.Errorf("gateway returned no transaction for %s", gatewayTransactionID)
	}
	return resp.Transaction.Status, nil
}

func (c *HTTPClient) CreatePaymentMethod(ctx context.Context, req domain.CreatePaymentMethodRequest) (*domain.PaymentMethodResult, error) {
	url := fmt.Sprintf("%s/v1/payment_methods", c.baseURL)
	body := paymentMethodRequest{
		CustomerID:         req.CustomerID,
		Token:              req.Token,
		PaymentMethodNonce: req.PaymentMethodNonce,
		Type:               string(req.Type),
	}
	return sendRequest[paymentMethodRequest, domain.PaymentMethodResult](c, ctx, http.MethodPost, url, &body, req.Token)
}

func (c *HTTPClient) GetPaymentMethod(ctx context.Context, token string) (*domain.GatewayPaymentMethod, error) {
	url := fmt.Sprintf("%s/v1/payment_methods/%s", c.baseURL, escape(token))
	resp, err := sendRequest[any, paymentMethodEnvelope](c, ctx, http.MethodGet, url, nil, "")
	if err != nil {
		if gwErr, ok := IsGatewayError(err); ok && gwErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: gateway token %s", domain.ErrPaymentMethodNotFound, token)
		}
		return nil, err
	}
	return &resp.PaymentMethod, nil
}

func (c *HTTPClient) ListPaymentMethods(ctx context.Context, customerID string) ([]domain.GatewayPaymentMethod, error) {
	url := fmt.Sprintf("%s/v1/customers/%s/payment_methods", c.baseURL, escape(customerID))
	resp, err := sendRequest[any, paymentMethodListResponse](c, ctx, http.MethodGet, url, nil, "")
	if err != nil {
		return nil, err
	}
	return resp.PaymentMethods, nil
}

func (c *HTTPClient) DeletePaymentMethod(ctx context.Context, token string) (*domain.Result, error) {
	url := fmt.Sprintf("%s/v1/payment_methods/%s", c.baseURL, escape(token))
	return sendRequest[any, domain.Result](c, ctx, http.MethodDelete, url, nil, "")
}

func escape(segment string) string {
	return url.PathEscape(segment)
}

var noContentResult = []byte(`{"success":true}`)

// sendRequest decodes 2xx and 422 bodies into Resp. A 422 carries an unsuccessful
// result, anything else becomes an *Error.
func sendRequest[Req any, Resp any](c *HTTPClient, ctx context.Context, method, url string, reqBody *Req, idempotencyKey string) (*Resp, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if reqBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.merchantID != "" {
		httpReq.Header.Set("X-Merchant-ID", c.merchantID)
	}
	if c.publicKey != "" {
		httpReq.SetBasicAuth(c.publicKey, c.privateKey)
	}
	if idempotencyKey != "" {
		httpReq.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	var out Resp
	switch {
	case resp.StatusCode == http.StatusNoContent:
		// no body to decode, the call itself succeeded
		if err := json.Unmarshal(noContentResult, &out); err != nil {
			return nil, fmt.Errorf("error decoding empty response: %w", err)
		}
		return &out, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300, resp.StatusCode == http.StatusUnprocessableEntity:
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			if errors.Is(err, io.EOF) {
				return &out, nil
			}
			return nil, fmt.Errorf("error decoding json response: %w", err)
		}
		return &out, nil
	}

	body, _ := io.ReadAll(resp.Body)
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return nil, &Error{
			Code:       http.StatusText(resp.StatusCode),
			Message:    string(body),
			StatusCode: resp.StatusCode,
		}
	}
	return nil, &Error{
		Code:       errResp.Err,
		Message:    errResp.Message,
		StatusCode: resp.StatusCode,
	}
}
