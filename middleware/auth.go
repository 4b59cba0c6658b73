package middleware

import (
	"context"
	"net/http"

	"go-bookstore/utils"
)

// SessionCookieName carries the signed session token for a logged-in user.
const SessionCookieName = "bookstore_session"

// Key type for context
type contextKey string

const UserContextKey = contextKey("user")

// AuthMiddleware verifies the session cookie and attaches the claims to
// the request context. Requests without a valid session are rejected.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := SessionClaims(r)
		if claims == nil {
			http.Error(w, "Authentication required", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionClaims returns the claims for the current session, or nil when
// the request carries no valid session cookie. Handlers on optional-auth
// routes call this directly instead of going through AuthMiddleware.
func SessionClaims(r *http.Request) *utils.Claims {
	if claims, ok := r.Context().Value(UserContextKey).(*utils.Claims); ok {
		return claims
	}

	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil
	}
	claims, err := utils.ParseJWT(cookie.Value)
	if err != nil {
		return nil
	}
	return claims
}
