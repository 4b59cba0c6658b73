package utils

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// failingCardSuffix marks the test card that always fails.
const failingCardSuffix = "1111"

// PaymentRequest carries the card details submitted at checkout. It never
// leaves the gateway; orders only keep the resulting transaction id.
type PaymentRequest struct {
	Method     string
	CardNumber string
	ExpiryDate string
	CVV        string
}

// PaymentResult is the outcome of a single payment attempt.
type PaymentResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	TransactionID string `json:"transaction_id,omitempty"`
}

// PaymentGateway processes payments. Checkout depends on this interface so
// a real gateway can replace the mock without touching the orchestration.
type PaymentGateway interface {
	Process(req PaymentRequest) PaymentResult
}

// MockGateway is a deterministic stand-in for a payment processor: cards
// ending in 1111 are declined, everything else succeeds with a fresh
// transaction id. A fixed delay simulates gateway latency.
type MockGateway struct {
	Delay time.Duration
}

// NewMockGateway creates a mock gateway with the given simulated latency.
func NewMockGateway(delay time.Duration) *MockGateway {
	return &MockGateway{Delay: delay}
}

// Process runs a single synchronous payment attempt. There is no retry.
func (g *MockGateway) Process(req PaymentRequest) PaymentResult {
	if g.Delay > 0 {
		time.Sleep(g.Delay)
	}

	card := strings.ReplaceAll(req.CardNumber, " ", "")
	if len(card) < 4 {
		return PaymentResult{
			Success: false,
			Message: "Payment failed: invalid card number",
		}
	}
	if strings.HasSuffix(card, failingCardSuffix) {
		return PaymentResult{
			Success: false,
			Message: "Payment failed: card declined",
		}
	}

	return PaymentResult{
		Success:       true,
		Message:       "Payment processed successfully",
		TransactionID: newTransactionID(),
	}
}

func newTransactionID() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "TXN" + strings.ToUpper(raw[:12])
}
