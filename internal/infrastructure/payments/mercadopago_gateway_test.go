package payments

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	g, err := NewMercadoPagoGateway("")
	require.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
	assert.Nil(t, g)
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
	require.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)

	_, _, _, err = (&MercadoPagoGateway{}).CreatePayment(context.Background(), json.RawMessage(`{}`))
	require.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
}
