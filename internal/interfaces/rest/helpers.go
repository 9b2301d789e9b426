package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/application"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/domain"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
)

const (
	TenantHeader    = "X-Tenant-ID"
	CreatedByHeader = "X-Created-By"

	pluginPropertyParam = "pluginProperty"
)

type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// WriteJSON writes data inside the success envelope
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(SuccessResponse{Success: true, Data: data})
}

// CallContext reads the tenant and caller headers
func CallContext(r *http.Request) (domain.CallContext, error) {
	var tenantID uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", TenantHeader, r.Header.Get(TenantHeader), &tenantID, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationHeader,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return domain.CallContext{}, application.NewInvalidInputError(fmt.Errorf("invalid format for header %s: %w", TenantHeader, err))
	}

	createdBy := r.Header.Get(CreatedByHeader)
	if createdBy == "" {
		createdBy = "payment-gateway-plugin"
	}
	return domain.CallContext{TenantID: tenantID, CreatedBy: createdBy}, nil
}

// PathUUID binds a uuid path segment registered on the mux pattern
func PathUUID(r *http.Request, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, r.PathValue(name), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return uuid.Nil, application.NewInvalidInputError(fmt.Errorf("invalid format for parameter %s: %w", name, err))
	}
	return id, nil
}

// QueryParam binds an optional or required form-style query parameter into dest
func QueryParam(r *http.Request, name string, required bool, dest any) error {
	if err := runtime.BindQueryParameter("form", true, required, name, r.URL.Query(), dest); err != nil {
		return application.NewInvalidInputError(fmt.Errorf("invalid format for parameter %s: %w", name, err))
	}
	return nil
}

// QueryProperties parses repeated pluginProperty=key=value query parameters
func QueryProperties(r *http.Request) ([]domain.PluginProperty, error) {
	var raw []string
	if err := QueryParam(r, pluginPropertyParam, false, &raw); err != nil {
		return nil, err
	}

	properties := make([]domain.PluginProperty, 0, len(raw))
	for _, entry := range raw {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			return nil, application.NewInvalidInputError(fmt.Errorf("plugin property %q is not key=value", entry))
		}
		properties = append(properties, domain.PluginProperty{Key: key, Value: value})
	}
	return properties, nil
}

// DecodeJSON decodes and validates a request body
func DecodeJSON(r *http.Request, validate *validator.Validate, dest any) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return application.NewInvalidInputError(fmt.Errorf("malformed request body: %w", err))
	}
	if err := validate.Struct(dest); err != nil {
		return application.NewInvalidInputError(err)
	}
	return nil
}
