package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"go-bookstore/middleware"
	"go-bookstore/models"
	"go-bookstore/store"
	"go-bookstore/utils"

	"golang.org/x/time/rate"
)

// UserController handles account-related requests
type UserController struct {
	Users           *store.UserStore
	registerLimiter *rate.Limiter
	loginLimiter    *rate.Limiter
}

// NewUserController creates a new UserController
func NewUserController(users *store.UserStore) *UserController {
	return &UserController{
		Users:           users,
		registerLimiter: rate.NewLimiter(rate.Every(time.Second), 20),
		loginLimiter:    rate.NewLimiter(rate.Every(time.Second), 20),
	}
}

// Register handles user registration
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	if !uc.registerLimiter.Allow() {
		respondError(w, http.StatusTooManyRequests, "Too many registration attempts")
		return
	}

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Address  string `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		respondFieldError(w, "email", "a valid email is required")
		return
	}
	if req.Password == "" {
		respondFieldError(w, "password", "password is required")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		respondFieldError(w, "name", "name is required")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error hashing password")
		return
	}

	user := models.NewUser(req.Email, hash, req.Name, req.Address)
	if err := uc.Users.Create(user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			respondError(w, http.StatusConflict, "User already exists")
			return
		}
		respondError(w, http.StatusInternalServerError, "Error creating user")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{
		"message": "Registration successful. Please log in.",
	})
}

// Login handles user authentication and sets the session cookie
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	if !uc.loginLimiter.Allow() {
		respondError(w, http.StatusTooManyRequests, "Too many login attempts")
		return
	}

	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	// The same response for unknown email and wrong password, so the two
	// cases cannot be told apart.
	user, err := uc.Users.Get(strings.TrimSpace(strings.ToLower(creds.Email)))
	if err != nil || !utils.CheckPassword(user.PasswordHash, creds.Password) {
		respondError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := utils.GenerateJWT(user.Email, user.Name)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"user": map[string]string{
			"email": user.Email,
			"name":  user.Name,
		},
	})
}

// Logout clears the session cookies
func (uc *UserController) Logout(w http.ResponseWriter, r *http.Request) {
	for _, name := range []string{middleware.SessionCookieName, middleware.CartCookieName} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// GetAccount returns the authenticated user's profile
func (uc *UserController) GetAccount(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := uc.Users.Get(claims.Email)
	if err != nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"email":       user.Email,
		"name":        user.Name,
		"address":     user.Address,
		"order_count": user.OrderCount(),
	})
}

// UpdateProfile updates name, address and optionally the password
func (uc *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req struct {
		Name        string `json:"name"`
		Address     string `json:"address"`
		NewPassword string `json:"new_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	var hash string
	if req.NewPassword != "" {
		var err error
		hash, err = utils.HashPassword(req.NewPassword)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Error hashing password")
			return
		}
	}

	err := uc.Users.Update(claims.Email, func(user *models.User) {
		if strings.TrimSpace(req.Name) != "" {
			user.Name = req.Name
		}
		if strings.TrimSpace(req.Address) != "" {
			user.Address = req.Address
		}
		if hash != "" {
			user.PasswordHash = hash
		}
	})
	if err != nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Profile updated"})
}
