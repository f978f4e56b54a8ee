package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, c.HTTPPort)
	assert.Equal(t, "visits", c.Tables.Visits)
	assert.Equal(t, "visit_counters", c.Tables.VisitCounters)
	assert.Equal(t, "json", c.LogFormat)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("VISITS_TABLE", "visits-dev")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, c.HTTPPort)
	assert.Equal(t, "visits-dev", c.Tables.Visits)
	assert.True(t, c.PaymentGatewayMock)
	assert.Equal(t, "http://localhost:8000", c.DynamoDBEndpoint)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "eighty")

	_, err := Load()
	assert.Error(t, err)
}
