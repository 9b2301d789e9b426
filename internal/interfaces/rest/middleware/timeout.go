package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/interfaces/rest"
)

var timeoutBody = func() string {
	body, _ := json.Marshal(rest.ErrorResponse{
		Error: rest.ErrorDetail{Code: "TIMEOUT", Message: "Request timeout"},
	})
	return string(body)
}()

// Timeout bounds the request context. Gateway calls still in flight are canceled with it.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			http.TimeoutHandler(next, timeout, timeoutBody).ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
