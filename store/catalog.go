package store

import (
	"sort"
	"sync"

	"go-bookstore/models"
)

// CatalogStore holds the book catalog in memory, keyed by title. Entries
// are loaded once at startup and never mutated afterwards.
type CatalogStore struct {
	mu    sync.RWMutex
	books map[string]models.Book
}

// NewCatalogStore creates a catalog seeded with the given books.
func NewCatalogStore(books []models.Book) *CatalogStore {
	s := &CatalogStore{books: make(map[string]models.Book, len(books))}
	for _, book := range books {
		s.books[book.Title] = book
	}
	return s
}

// Get returns the book with the given title.
func (s *CatalogStore) Get(title string) (models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[title]
	if !ok {
		return models.Book{}, ErrBookNotFound
	}
	return book, nil
}

// List returns all books sorted by title.
func (s *CatalogStore) List() []models.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := make([]models.Book, 0, len(s.books))
	for _, book := range s.books {
		books = append(books, book)
	}
	sort.Slice(books, func(i, j int) bool {
		return books[i].Title < books[j].Title
	})
	return books
}
