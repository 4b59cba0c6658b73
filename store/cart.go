package store

import (
	"sync"

	"go-bookstore/models"
)

// CartStore keeps one cart per browsing session, so two visitors can never
// interleave on the same cart.
type CartStore struct {
	mu    sync.RWMutex
	carts map[string]*models.Cart
}

// NewCartStore creates an empty cart registry.
func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string]*models.Cart)}
}

// Get returns the cart for a session, creating it on first use.
func (s *CartStore) Get(sessionID string) *models.Cart {
	s.mu.RLock()
	cart, ok := s.carts[sessionID]
	s.mu.RUnlock()
	if ok {
		return cart
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if cart, ok := s.carts[sessionID]; ok {
		return cart
	}
	cart = models.NewCart()
	s.carts[sessionID] = cart
	return cart
}

// Delete drops the cart for a session.
func (s *CartStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
