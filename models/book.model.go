package models

import (
	"github.com/shopspring/decimal"
)

// Book represents an immutable catalog entry. The title uniquely identifies
// a book within the catalog.
type Book struct {
	Title    string          `json:"title"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
}

// NewBook creates a catalog entry from a float price.
func NewBook(title, category string, price float64, image string) Book {
	return Book{
		Title:    title,
		Category: category,
		Price:    decimal.NewFromFloat(price),
		Image:    image,
	}
}
