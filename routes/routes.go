// routes/routes.go
package routes

import (
	"go-bookstore/controllers"
	"go-bookstore/middleware"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, bookController *controllers.BookController, cartController *controllers.CartController, orderController *controllers.OrderController, userController *controllers.UserController) {
	// Every request gets a cart session
	router.Use(middleware.CartSessionMiddleware)

	// Catalog routes
	router.HandleFunc("/", bookController.GetBooks).Methods("GET")
	router.HandleFunc("/books/{title}", bookController.GetBook).Methods("GET")

	// Cart routes
	router.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	router.HandleFunc("/add-to-cart", cartController.AddToCart).Methods("POST")
	router.HandleFunc("/update-cart", cartController.UpdateCart).Methods("POST")
	router.HandleFunc("/remove-from-cart", cartController.RemoveFromCart).Methods("POST")

	// Checkout routes (login optional; a session just links the order to
	// the account)
	router.HandleFunc("/checkout", orderController.GetCheckout).Methods("GET")
	router.HandleFunc("/process-checkout", orderController.ProcessCheckout).Methods("POST")
	router.HandleFunc("/order-confirmation/{order_id}", orderController.GetOrderConfirmation).Methods("GET")

	// Account routes
	router.HandleFunc("/register", userController.Register).Methods("POST")
	router.HandleFunc("/login", userController.Login).Methods("POST")
	router.HandleFunc("/logout", userController.Logout).Methods("GET")

	// Protected routes
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/account", userController.GetAccount).Methods("GET")
	protected.HandleFunc("/update-profile", userController.UpdateProfile).Methods("POST")
	protected.HandleFunc("/orders", orderController.GetOrders).Methods("GET")
}
