package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderAt(id string, created time.Time) *Order {
	order := NewOrder(id, "test@example.com", nil, ShippingInfo{}, PaymentInfo{}, decimal.Zero)
	order.CreatedAt = created
	return order
}

func TestOrderHistorySortedNewestFirst(t *testing.T) {
	now := time.Now()
	user := NewUser("test@example.com", "hash", "Test User", "123 Test St")

	// Insert out of chronological order.
	user.AddOrder(orderAt("ORDER002", now.Add(-time.Hour)))
	user.AddOrder(orderAt("ORDER003", now))
	user.AddOrder(orderAt("ORDER001", now.Add(-2*time.Hour)))

	history := user.OrderHistory()
	require.Len(t, history, 3)
	assert.Equal(t, "ORDER003", history[0].OrderID)
	assert.Equal(t, "ORDER002", history[1].OrderID)
	assert.Equal(t, "ORDER001", history[2].OrderID)

	// A second read sees the same ordering.
	again := user.OrderHistory()
	assert.Equal(t, history[0].OrderID, again[0].OrderID)
}

func TestOrderHistoryIsACopy(t *testing.T) {
	user := NewUser("test@example.com", "hash", "Test User", "")
	user.AddOrder(orderAt("AAAA1111", time.Now()))

	history := user.OrderHistory()
	history[0] = nil

	assert.NotNil(t, user.OrderHistory()[0])
}

func TestOrderCount(t *testing.T) {
	user := NewUser("test@example.com", "hash", "Test User", "")
	assert.Equal(t, 0, user.OrderCount())

	user.AddOrder(orderAt("AAAA1111", time.Now()))
	user.AddOrder(orderAt("BBBB2222", time.Now()))
	assert.Equal(t, 2, user.OrderCount())
}
