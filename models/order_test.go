package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderSnapshotsCartItems(t *testing.T) {
	books := sampleBooks()
	cart := NewCart()
	require.NoError(t, cart.Add(books[0], 2))
	require.NoError(t, cart.Add(books[1], 1))

	order := NewOrder("TEST0001", "test@example.com", cart.Items(),
		ShippingInfo{Name: "Test User", Email: "test@example.com", Address: "123 Test St", City: "Test City", ZipCode: "12345"},
		PaymentInfo{Method: "credit_card", TransactionID: "TXN123456"},
		decimal.NewFromFloat(69.97))

	require.Len(t, order.Items, 2)
	assert.Equal(t, StatusConfirmed, order.Status)
	assert.False(t, order.CreatedAt.IsZero())

	// Clearing the cart must not change the order.
	cart.Clear()
	assert.Len(t, order.Items, 2)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.True(t, order.Items[0].Subtotal.Equal(decimal.NewFromFloat(39.98)))
}

func TestOrderPaymentInfoHoldsNoCardData(t *testing.T) {
	order := NewOrder("TEST0002", "test@example.com", nil, ShippingInfo{},
		PaymentInfo{Method: "credit_card", TransactionID: "TXNABC"}, decimal.Zero)

	assert.Equal(t, "credit_card", order.Payment.Method)
	assert.Equal(t, "TXNABC", order.Payment.TransactionID)
}
