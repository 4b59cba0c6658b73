package models

import "errors"

var (
	// ErrInvalidQuantity is returned when an item is added with a zero or
	// negative quantity.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")

	// ErrItemNotFound is returned when a cart operation targets a title
	// that is not in the cart.
	ErrItemNotFound = errors.New("item not found in cart")
)
