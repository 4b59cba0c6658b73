package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() PaymentRequest {
	return PaymentRequest{
		Method:     "credit_card",
		CardNumber: "4532123456789012",
		ExpiryDate: "12/25",
		CVV:        "123",
	}
}

func TestMockGatewaySuccess(t *testing.T) {
	gateway := NewMockGateway(0)

	result := gateway.Process(validRequest())

	assert.True(t, result.Success)
	assert.Equal(t, "Payment processed successfully", result.Message)
	require.True(t, strings.HasPrefix(result.TransactionID, "TXN"))
	assert.Greater(t, len(result.TransactionID), 3)
}

func TestMockGatewayDeclinesSentinelCard(t *testing.T) {
	gateway := NewMockGateway(0)

	req := validRequest()
	req.CardNumber = "4532123456781111"
	result := gateway.Process(req)

	assert.False(t, result.Success)
	assert.Contains(t, strings.ToLower(result.Message), "fail")
	assert.Empty(t, result.TransactionID)
}

func TestMockGatewayRejectsMissingCardNumber(t *testing.T) {
	gateway := NewMockGateway(0)

	req := validRequest()
	req.CardNumber = ""
	result := gateway.Process(req)

	assert.False(t, result.Success)
	assert.Empty(t, result.TransactionID)
}

func TestMockGatewayIgnoresSpacesInCardNumber(t *testing.T) {
	gateway := NewMockGateway(0)

	req := validRequest()
	req.CardNumber = "4532 1234 5678 1111"
	assert.False(t, gateway.Process(req).Success)

	req.CardNumber = "4532 1234 5678 9012"
	assert.True(t, gateway.Process(req).Success)
}

func TestMockGatewayTransactionIDsDistinct(t *testing.T) {
	gateway := NewMockGateway(0)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		result := gateway.Process(validRequest())
		require.True(t, result.Success)
		assert.False(t, seen[result.TransactionID], "duplicate transaction id %s", result.TransactionID)
		seen[result.TransactionID] = true
	}
}

func TestMockGatewayHonorsDelay(t *testing.T) {
	gateway := NewMockGateway(20 * time.Millisecond)

	start := time.Now()
	gateway.Process(validRequest())

	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}
