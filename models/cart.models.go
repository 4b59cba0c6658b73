package models

import (
	"sort"
	"sync"

	"github.com/shopspring/decimal"
)

// CartItem pairs a book with a quantity.
type CartItem struct {
	Book     Book `json:"book"`
	Quantity int  `json:"quantity"`
}

// Subtotal returns price multiplied by quantity for this line.
func (ci CartItem) Subtotal() decimal.Decimal {
	return ci.Book.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

// Cart holds the books a visitor has selected, keyed by title. A cart
// belongs to a single session; its own lock covers concurrent requests
// racing on that session.
type Cart struct {
	mu    sync.RWMutex
	items map[string]*CartItem
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{items: make(map[string]*CartItem)}
}

// Add puts a book in the cart. Adding a title that is already present
// increments its quantity. A zero or negative quantity is rejected.
func (c *Cart) Add(book Book, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if item, ok := c.items[book.Title]; ok {
		item.Quantity += quantity
		return nil
	}
	c.items[book.Title] = &CartItem{Book: book, Quantity: quantity}
	return nil
}

// Update sets the quantity for an existing item. A quantity of zero or
// less removes the item.
func (c *Cart) Update(title string, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[title]
	if !ok {
		return ErrItemNotFound
	}
	if quantity <= 0 {
		delete(c.items, title)
		return nil
	}
	item.Quantity = quantity
	return nil
}

// Remove deletes an item. Removing an absent title is a no-op.
func (c *Cart) Remove(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, title)
}

// TotalPrice sums price times quantity over the distinct items.
func (c *Cart) TotalPrice() decimal.Decimal {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// TotalItems sums the quantities of all items.
func (c *Cart) TotalItems() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no items.
func (c *Cart) IsEmpty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items) == 0
}

// Clear removes every item.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*CartItem)
}

// Get returns the item for a title if present.
func (c *Cart) Get(title string) (CartItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[title]
	if !ok {
		return CartItem{}, false
	}
	return *item, true
}

// Items returns a copy of the cart contents sorted by title.
func (c *Cart) Items() []CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]CartItem, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Book.Title < items[j].Book.Title
	})
	return items
}
