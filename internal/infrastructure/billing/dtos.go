package billing

import "github.com/DanielPopoola/payment-gateway-plugin/internal/domain"

type customField struct {
	CustomFieldID string `json:"customFieldId,omitempty"`
	ObjectID      string `json:"objectId,omitempty"`
	ObjectType    string `json:"objectType,omitempty"`
	Name          string `json:"name"`
	Value         string `json:"value"`
}

type pluginInfo struct {
	ExternalPaymentMethodID string                  `json:"externalPaymentMethodId"`
	IsDefaultPaymentMethod  bool                    `json:"isDefaultPaymentMethod"`
	Properties              []domain.PluginProperty `json:"properties"`
}

type paymentMethodRequest struct {
	AccountID   string     `json:"accountId"`
	ExternalKey string     `json:"externalKey"`
	PluginName  string     `json:"pluginName"`
	PluginInfo  pluginInfo `json:"pluginInfo"`
}

type paymentMethodResponse struct {
	PaymentMethodID string `json:"paymentMethodId"`
}
