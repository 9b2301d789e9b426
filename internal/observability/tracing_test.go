package observability

import (
	"context"
	"testing"

	"github.com/DanielPopoola/payment-gateway-plugin/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTracing_Disabled(t *testing.T) {
	shutdown, err := SetupTracing(config.TracingConfig{Enabled: false})

	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
