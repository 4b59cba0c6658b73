package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-bookstore/models"
)

func TestCartStoreScopesCartsPerSession(t *testing.T) {
	carts := NewCartStore()
	book := models.NewBook("The Great Gatsby", "Fiction", 19.99, "gatsby.jpg")

	a := carts.Get("session-a")
	b := carts.Get("session-b")
	require.NoError(t, a.Add(book, 2))

	assert.True(t, b.IsEmpty(), "one session's cart must not leak into another")
	assert.Same(t, a, carts.Get("session-a"))
}

func TestCartStoreDelete(t *testing.T) {
	carts := NewCartStore()
	book := models.NewBook("1984", "Fiction", 29.99, "1984.jpg")
	require.NoError(t, carts.Get("session-a").Add(book, 1))

	carts.Delete("session-a")

	assert.True(t, carts.Get("session-a").IsEmpty())
}
