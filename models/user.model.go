package models

import (
	"sort"
	"sync"
)

// User represents a registered account. Orders are appended as they are
// placed; sorting happens lazily when the history is read.
type User struct {
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Address      string `json:"address"`

	mu     sync.Mutex
	orders []*Order
}

// NewUser creates an account. The password must already be hashed.
func NewUser(email, passwordHash, name, address string) *User {
	return &User{
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		Address:      address,
	}
}

// AddOrder appends an order to the user's history in O(1).
func (u *User) AddOrder(order *Order) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.orders = append(u.orders, order)
}

// OrderHistory returns the user's orders sorted by creation time, newest
// first. The sort runs once per call rather than on every insert.
func (u *User) OrderHistory() []*Order {
	u.mu.Lock()
	defer u.mu.Unlock()

	history := make([]*Order, len(u.orders))
	copy(history, u.orders)
	sort.Slice(history, func(i, j int) bool {
		return history[i].CreatedAt.After(history[j].CreatedAt)
	})
	return history
}

// OrderCount returns how many orders the user has placed.
func (u *User) OrderCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.orders)
}
