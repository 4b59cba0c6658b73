package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-bookstore/models"
	"go-bookstore/utils"
)

func TestOrderStoreInsertAndGet(t *testing.T) {
	orders := NewOrderStore()
	order := models.NewOrder("AAAA1111", "test@example.com", nil, models.ShippingInfo{}, models.PaymentInfo{}, decimal.Zero)

	require.NoError(t, orders.Insert(order))

	got, err := orders.Get("AAAA1111")
	require.NoError(t, err)
	assert.Equal(t, order, got)
	assert.Equal(t, 1, orders.Count())
}

func TestOrderStoreInsertRejectsDuplicateID(t *testing.T) {
	orders := NewOrderStore()
	first := models.NewOrder("AAAA1111", "a@example.com", nil, models.ShippingInfo{}, models.PaymentInfo{}, decimal.Zero)
	second := models.NewOrder("AAAA1111", "b@example.com", nil, models.ShippingInfo{}, models.PaymentInfo{}, decimal.Zero)

	require.NoError(t, orders.Insert(first))
	assert.ErrorIs(t, orders.Insert(second), ErrOrderExists)

	// The original stays.
	got, err := orders.Get("AAAA1111")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", got.UserEmail)
}

func TestOrderStoreGetUnknown(t *testing.T) {
	orders := NewOrderStore()
	_, err := orders.Get("NOPE0000")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestGeneratedOrderIDsUniqueAcrossRegistry(t *testing.T) {
	orders := NewOrderStore()

	for i := 0; i < 1000; i++ {
		for {
			id := utils.GenerateOrderID()
			require.Len(t, id, 8)
			for _, c := range id {
				require.True(t, (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9'), "unexpected character %q", c)
			}

			order := models.NewOrder(id, "test@example.com", nil, models.ShippingInfo{}, models.PaymentInfo{}, decimal.Zero)
			if err := orders.Insert(order); err == nil {
				break
			}
		}
	}

	assert.Equal(t, 1000, orders.Count())
}
