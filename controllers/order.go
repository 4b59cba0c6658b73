// controllers/order.go
package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"go-bookstore/middleware"
	"go-bookstore/models"
	"go-bookstore/store"
	"go-bookstore/utils"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

// OrderController handles checkout and order-related requests
type OrderController struct {
	Carts   *store.CartStore
	Orders  *store.OrderStore
	Users   *store.UserStore
	Gateway utils.PaymentGateway
	Email   utils.EmailSender
}

// NewOrderController creates a new OrderController
func NewOrderController(carts *store.CartStore, orders *store.OrderStore, users *store.UserStore, gateway utils.PaymentGateway, email utils.EmailSender) *OrderController {
	return &OrderController{
		Carts:   carts,
		Orders:  orders,
		Users:   users,
		Gateway: gateway,
		Email:   email,
	}
}

// checkoutRequest is the full checkout form.
type checkoutRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	City          string `json:"city"`
	ZipCode       string `json:"zip_code"`
	PaymentMethod string `json:"payment_method"`
	CardNumber    string `json:"card_number"`
	ExpiryDate    string `json:"expiry_date"`
	CVV           string `json:"cvv"`
	DiscountCode  string `json:"discount_code"`
}

// validate returns the first missing required field.
func (req *checkoutRequest) validate() (string, bool) {
	required := []struct {
		field string
		value string
	}{
		{"name", req.Name},
		{"email", req.Email},
		{"address", req.Address},
		{"city", req.City},
		{"zip_code", req.ZipCode},
		{"payment_method", req.PaymentMethod},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return f.field, false
		}
	}
	return "", true
}

// GetCheckout returns the cart summary shown on the checkout page
func (oc *OrderController) GetCheckout(w http.ResponseWriter, r *http.Request) {
	cart := oc.Carts.Get(middleware.CartSessionID(r))
	if cart.IsEmpty() {
		respondError(w, http.StatusBadRequest, "Cart is empty")
		return
	}
	respondJSON(w, http.StatusOK, viewOf(cart))
}

// ProcessCheckout turns the session's cart into an order: validate the
// form, resolve the discount, charge the gateway, snapshot the order,
// clear the cart, and send the confirmation email.
func (oc *OrderController) ProcessCheckout(w http.ResponseWriter, r *http.Request) {
	cart := oc.Carts.Get(middleware.CartSessionID(r))
	if cart.IsEmpty() {
		respondError(w, http.StatusBadRequest, "Cart is empty")
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if field, ok := req.validate(); !ok {
		respondFieldError(w, field, field+" is required")
		return
	}

	// An unknown code does not block checkout; the order just proceeds
	// without a discount.
	warning := ""
	fraction, ok := utils.LookupDiscount(req.DiscountCode)
	if !ok {
		warning = "Invalid discount code"
	}

	result := oc.Gateway.Process(utils.PaymentRequest{
		Method:     req.PaymentMethod,
		CardNumber: req.CardNumber,
		ExpiryDate: req.ExpiryDate,
		CVV:        req.CVV,
	})
	if !result.Success {
		slog.Warn("payment declined", "email", req.Email)
		respondError(w, http.StatusPaymentRequired, result.Message)
		return
	}

	total := cart.TotalPrice().
		Mul(decimal.NewFromInt(1).Sub(fraction)).
		Round(2)

	shipping := models.ShippingInfo{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		City:    req.City,
		ZipCode: req.ZipCode,
	}
	payment := models.PaymentInfo{
		Method:        req.PaymentMethod,
		TransactionID: result.TransactionID,
	}

	// Regenerate the id until the registry accepts it.
	var order *models.Order
	for {
		order = models.NewOrder(utils.GenerateOrderID(), req.Email, cart.Items(), shipping, payment, total)
		if err := oc.Orders.Insert(order); err == nil {
			break
		} else if !errors.Is(err, store.ErrOrderExists) {
			respondError(w, http.StatusInternalServerError, "Failed to create order")
			return
		}
	}

	if claims := middleware.SessionClaims(r); claims != nil {
		if user, err := oc.Users.Get(claims.Email); err == nil {
			user.AddOrder(order)
		}
	}

	cart.Clear()

	if err := oc.Email.SendOrderConfirmation(order.UserEmail, order); err != nil {
		slog.Error("failed to send confirmation email", "order_id", order.OrderID, "error", err)
	}

	slog.Info("order confirmed", "order_id", order.OrderID, "total", total.StringFixed(2))

	resp := map[string]interface{}{
		"message":      "Order created successfully",
		"order_id":     order.OrderID,
		"status":       order.Status,
		"total_amount": total.StringFixed(2),
	}
	if warning != "" {
		resp["warning"] = warning
	}
	respondJSON(w, http.StatusOK, resp)
}

// GetOrderConfirmation returns the order for the confirmation page
func (oc *OrderController) GetOrderConfirmation(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["order_id"]
	order, err := oc.Orders.Get(orderID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Order not found")
		return
	}
	respondJSON(w, http.StatusOK, order)
}

// GetOrders returns the authenticated user's order history, newest first
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := oc.Users.Get(claims.Email)
	if err != nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	respondJSON(w, http.StatusOK, user.OrderHistory())
}
