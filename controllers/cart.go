package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-bookstore/middleware"
	"go-bookstore/models"
	"go-bookstore/store"
)

// CartController handles cart-related requests
type CartController struct {
	Catalog *store.CatalogStore
	Carts   *store.CartStore
}

// NewCartController creates a new CartController
func NewCartController(catalog *store.CatalogStore, carts *store.CartStore) *CartController {
	return &CartController{Catalog: catalog, Carts: carts}
}

type cartView struct {
	Items      []models.CartItem `json:"items"`
	TotalPrice string            `json:"total_price"`
	TotalItems int               `json:"total_items"`
}

func viewOf(cart *models.Cart) cartView {
	return cartView{
		Items:      cart.Items(),
		TotalPrice: cart.TotalPrice().StringFixed(2),
		TotalItems: cart.TotalItems(),
	}
}

// GetCart returns the contents of the session's cart
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	cart := cc.Carts.Get(middleware.CartSessionID(r))
	respondJSON(w, http.StatusOK, viewOf(cart))
}

// AddToCart adds a book to the session's cart
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title    string `json:"title"`
		Quantity int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	book, err := cc.Catalog.Get(req.Title)
	if err != nil {
		respondError(w, http.StatusNotFound, "Book not found")
		return
	}

	cart := cc.Carts.Get(middleware.CartSessionID(r))
	if err := cart.Add(book, req.Quantity); err != nil {
		respondFieldError(w, "quantity", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Item added to cart",
		"cart":    viewOf(cart),
	})
}

// UpdateCart sets the quantity of an item already in the cart. A quantity
// of zero or less removes it.
func (cc *CartController) UpdateCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title    string `json:"title"`
		Quantity int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	cart := cc.Carts.Get(middleware.CartSessionID(r))
	if err := cart.Update(req.Title, req.Quantity); err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			respondError(w, http.StatusNotFound, "Item not found in cart")
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Cart updated",
		"cart":    viewOf(cart),
	})
}

// RemoveFromCart deletes an item from the cart
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	cart := cc.Carts.Get(middleware.CartSessionID(r))
	cart.Remove(req.Title)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Item removed from cart",
		"cart":    viewOf(cart),
	})
}
