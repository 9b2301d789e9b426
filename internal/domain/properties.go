package domain

import "fmt"

// Well-known plugin property keys
const (
	PropertyCustomerID                  = "gateway_customer_id"
	PropertyNonce                       = "gateway_nonce"
	PropertyPaymentMethodType           = "payment_method_type"
	PropertyGatewayTransactionStatus    = "gateway_transaction_status"
	PropertyOverriddenTransactionStatus = "overridden_transaction_status"
	PropertyMessage                     = "message"

	// PropertyFallbackValue marks a property explicitly set to nothing
	PropertyFallbackValue = "NULL"
)

// PluginProperty is a free-form key/value passed by the billing platform
type PluginProperty struct {
	Key         string `json:"key"`
	Value       any    `json:"value"`
	IsUpdatable bool   `json:"is_updatable,omitempty"`
}

// FindPropertyValue returns the string form of the first property with the given key.
// Missing keys, nil values and the fallback value all yield "".
func FindPropertyValue(key string, properties []PluginProperty) string {
	for _, p := range properties {
		if p.Key != key || p.Value == nil {
			continue
		}
		value := fmt.Sprint(p.Value)
		if value == PropertyFallbackValue {
			return ""
		}
		return value
	}
	return ""
}

// MergeProperties returns base overlaid with overrides; later keys win.
func MergeProperties(base, overrides []PluginProperty) []PluginProperty {
	merged := make([]PluginProperty, 0, len(base)+len(overrides))
	index := make(map[string]int, len(base)+len(overrides))
	for _, list := range [][]PluginProperty{base, overrides} {
		for _, p := range list {
			if i, ok := index[p.Key]; ok {
				merged[i] = p
				continue
			}
			index[p.Key] = len(merged)
			merged = append(merged, p)
		}
	}
	return merged
}

// PropertiesToMap flattens properties into a metadata bag
func PropertiesToMap(properties []PluginProperty) map[string]any {
	m := make(map[string]any, len(properties))
	for _, p := range properties {
		m[p.Key] = p.Value
	}
	return m
}

// MapToProperties is the inverse of PropertiesToMap, with keys in no particular order
func MapToProperties(m map[string]any) []PluginProperty {
	props := make([]PluginProperty, 0, len(m))
	for k, v := range m {
		props = append(props, PluginProperty{Key: k, Value: v})
	}
	return props
}
