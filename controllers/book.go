package controllers

import (
	"net/http"

	"go-bookstore/store"

	"github.com/gorilla/mux"
)

// BookController handles catalog browsing requests
type BookController struct {
	Catalog *store.CatalogStore
}

// NewBookController creates a new BookController
func NewBookController(catalog *store.CatalogStore) *BookController {
	return &BookController{Catalog: catalog}
}

// GetBooks returns the full catalog
func (bc *BookController) GetBooks(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, bc.Catalog.List())
}

// GetBook returns a single catalog entry by title
func (bc *BookController) GetBook(w http.ResponseWriter, r *http.Request) {
	title := mux.Vars(r)["title"]
	book, err := bc.Catalog.Get(title)
	if err != nil {
		respondError(w, http.StatusNotFound, "Book not found")
		return
	}
	respondJSON(w, http.StatusOK, book)
}
