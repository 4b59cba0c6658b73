package store

import (
	"sync"

	"go-bookstore/models"
)

// OrderStore is the process-wide order registry. Insert is atomic
// insert-if-absent, which makes it the collision check for generated
// order ids.
type OrderStore struct {
	mu     sync.Mutex
	orders map[string]*models.Order
}

// NewOrderStore creates an empty order registry.
func NewOrderStore() *OrderStore {
	return &OrderStore{orders: make(map[string]*models.Order)}
}

// Insert stores an order, failing if its id is already taken.
func (s *OrderStore) Insert(order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[order.OrderID]; ok {
		return ErrOrderExists
	}
	s.orders[order.OrderID] = order
	return nil
}

// Get returns the order with the given id.
func (s *OrderStore) Get(orderID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[orderID]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// Count returns how many orders have been placed.
func (s *OrderStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}
