package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/config"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
	"github.com/google/uuid"
)

// PluginName is how payment methods created by this plugin are tagged on the platform
const PluginName = "payment-gateway-plugin"

// Client reads accounts and custom fields from the billing platform and registers
// payment methods discovered at the gateway
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
}

func NewClient(cfg config.BillingConfig) *Client {
	return &Client{
		baseURL:  cfg.BaseURL,
		username: cfg.Username,
		password: cfg.Password,
		httpClient: &http.Client{
			Timeout: cfg.ConnTimeout,
		},
	}
}

func (c *Client) GetAccount(ctx context.Context, accountID uuid.UUID, cc domain.CallContext) (*domain.Account, error) {
	url := fmt.Sprintf("%s/1.0/kb/accounts/%s", c.baseURL, accountID)
	account, err := sendRequest[any, domain.Account](c, ctx, http.MethodGet, url, nil, cc)
	if err != nil {
		if billingErr, ok := IsBillingError(err); ok && billingErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, accountID)
		}
		return nil, err
	}
	return account, nil
}

func (c *Client) GetCustomField(ctx context.Context, accountID uuid.UUID, name string, cc domain.CallContext) (string, error) {
	url := fmt.Sprintf("%s/1.0/kb/accounts/%s/customFields", c.baseURL, accountID)
	fields, err := sendRequest[any, []customField](c, ctx, http.MethodGet, url, nil, cc)
	if err != nil {
		return "", err
	}
	for _, f := range *fields {
		if f.Name == name {
			return f.Value, nil
		}
	}
	return "", nil
}

func (c *Client) AddCustomField(ctx context.Context, accountID uuid.UUID, name, value string, cc domain.CallContext) error {
	url := fmt.Sprintf("%s/1.0/kb/accounts/%s/customFields", c.baseURL, accountID)
	body := []customField{{ObjectID: accountID.String(), ObjectType: "ACCOUNT", Name: name, Value: value}}
	_, err := sendRequest[[]customField, []customField](c, ctx, http.MethodPost, url, &body, cc)
	return err
}

func (c *Client) RegisterPaymentMethod(ctx context.Context, accountID uuid.UUID, externalKey string, isDefault bool, properties []domain.PluginProperty, cc domain.CallContext) (uuid.UUID, error) {
	query := url.Values{}
	query.Set("isDefault", strconv.FormatBool(isDefault))
	endpoint := fmt.Sprintf("%s/1.0/kb/accounts/%s/paymentMethods?%s", c.baseURL, accountID, query.Encode())

	body := paymentMethodRequest{
		AccountID:   accountID.String(),
		ExternalKey: externalKey,
		PluginName:  PluginName,
		PluginInfo: pluginInfo{
			ExternalPaymentMethodID: externalKey,
			IsDefaultPaymentMethod:  isDefault,
			Properties:              properties,
		},
	}

	resp, err := sendRequest[paymentMethodRequest, paymentMethodResponse](c, ctx, http.MethodPost, endpoint, &body, cc)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.Parse(resp.PaymentMethodID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("billing platform returned invalid payment method id %q: %w", resp.PaymentMethodID, err)
	}
	return id, nil
}

func sendRequest[Req any, Resp any](c *Client, ctx context.Context, method, url string, reqBody *Req, cc domain.CallContext) (*Resp, error) {
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
	httpReq.Header.Set("X-Tenant-ID", cc.TenantID.String())
	if cc.CreatedBy != "" {
		httpReq.Header.Set("X-Created-By", cc.CreatedBy)
	}
	if c.username != "" {
		httpReq.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err != nil || errResp.Message == "" {
			return nil, &Error{StatusCode: resp.StatusCode, Message: string(body)}
		}
		return nil, &Error{StatusCode: resp.StatusCode, Code: errResp.Code, Message: errResp.Message}
	}

	var out Resp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("error decoding json response: %w", err)
	}
	return &out, nil
}
