package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/api"
	"github.com/DanielPopoola/payment-gateway-plugin/internal/interfaces/rest/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRecovery_WritesInternalError(t *testing.T) {
	handler := middleware.Recovery(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/payments/x", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}

func TestTimeout_AnswersWithEnvelope(t *testing.T) {
	handler := middleware.Timeout(10 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "TIMEOUT")
}

func TestLogging_PassesStatusThrough(t *testing.T) {
	handler := middleware.Logging(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestOpenAPIValidator(t *testing.T) {
	doc, err := api.GetSwagger()
	require.NoError(t, err)
	validate, err := middleware.OpenAPIValidator(doc, discardLogger())
	require.NoError(t, err)
	handler := validate(okHandler())

	purchase := "/v1/payments/" + uuid.NewString() + "/purchase"
	validBody := `{"account_id":"` + uuid.NewString() + `","transaction_id":"` + uuid.NewString() + `","amount":"10","currency":"USD"}`

	tests := []struct {
		name       string
		target     string
		body       string
		tenant     string
		wantStatus int
	}{
		{name: "valid request", target: purchase, body: validBody, tenant: uuid.NewString(), wantStatus: http.StatusOK},
		{name: "missing tenant header", target: purchase, body: validBody, wantStatus: http.StatusBadRequest},
		{name: "tenant is not a uuid", target: purchase, body: validBody, tenant: "acme", wantStatus: http.StatusBadRequest},
		{name: "body missing account", target: purchase, body: `{"transaction_id":"` + uuid.NewString() + `"}`, tenant: uuid.NewString(), wantStatus: http.StatusBadRequest},
		{name: "undocumented route passes", target: "/internal/debug", tenant: uuid.NewString(), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(http.MethodPost, tt.target, body)
			req.Header.Set("Content-Type", "application/json")
			if tt.tenant != "" {
				req.Header.Set("X-Tenant-ID", tt.tenant)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}
