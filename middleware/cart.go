package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// CartCookieName identifies the browsing session that owns a cart. It is
// separate from the auth cookie so anonymous visitors get a cart too.
const CartCookieName = "bookstore_cart"

const cartContextKey = contextKey("cart_session")

// CartSessionMiddleware ensures every request carries a cart session id,
// minting one on first contact.
func CartSessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID string
		if cookie, err := r.Cookie(CartCookieName); err == nil && cookie.Value != "" {
			sessionID = cookie.Value
		} else {
			sessionID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     CartCookieName,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
			})
		}

		ctx := context.WithValue(r.Context(), cartContextKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CartSessionID returns the cart session id for the request.
func CartSessionID(r *http.Request) string {
	id, _ := r.Context().Value(cartContextKey).(string)
	return id
}
