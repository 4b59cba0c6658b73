package store

import (
	"sync"

	"go-bookstore/models"
)

// UserStore holds registered accounts in memory, keyed by email.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

// NewUserStore creates an empty user registry.
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]*models.User)}
}

// Create registers a new account. The email must not be taken.
func (s *UserStore) Create(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Email]; ok {
		return ErrDuplicateEmail
	}
	s.users[user.Email] = user
	return nil
}

// Get returns the account for an email.
func (s *UserStore) Get(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Update applies fn to the account for an email while holding the store
// lock, so profile updates cannot interleave.
func (s *UserStore) Update(email string, fn func(*models.User)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[email]
	if !ok {
		return ErrUserNotFound
	}
	fn(user)
	return nil
}
