// main.go
package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"go-bookstore/controllers"
	"go-bookstore/models"
	"go-bookstore/routes"
	"go-bookstore/store"
	"go-bookstore/utils"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

// defaultCatalog is loaded at startup; books are immutable for the
// process lifetime.
var defaultCatalog = []models.Book{
	models.NewBook("The Great Gatsby", "Fiction", 19.99, "gatsby.jpg"),
	models.NewBook("1984", "Fiction", 29.99, "1984.jpg"),
	models.NewBook("I Ching", "Philosophy", 39.99, "iching.jpg"),
	models.NewBook("Moby Dick", "Fiction", 24.99, "mobydick.jpg"),
	models.NewBook("The Art of War", "Philosophy", 14.99, "artofwar.jpg"),
	models.NewBook("Brave New World", "Fiction", 17.99, "bravenewworld.jpg"),
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	// Set the JWT secret key
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		utils.JwtKey = []byte(secret)
	}

	// Initialize stores
	catalog := store.NewCatalogStore(defaultCatalog)
	carts := store.NewCartStore()
	users := store.NewUserStore()
	orders := store.NewOrderStore()

	// Payment gateway mock with simulated latency
	delay := 200 * time.Millisecond
	if ms, err := strconv.Atoi(os.Getenv("PAYMENT_DELAY_MS")); err == nil && ms >= 0 {
		delay = time.Duration(ms) * time.Millisecond
	}
	gateway := utils.NewMockGateway(delay)

	// Email sender: console mock by default, Postmark when configured
	var email utils.EmailSender = utils.NewConsoleSender()
	if os.Getenv("EMAIL_MODE") == "postmark" {
		email = utils.NewPostmarkSender(os.Getenv("POSTMARK_API_TOKEN"), os.Getenv("EMAIL_SENDER"))
	}

	// Initialize controllers
	bookController := controllers.NewBookController(catalog)
	cartController := controllers.NewCartController(catalog, carts)
	orderController := controllers.NewOrderController(carts, orders, users, gateway, email)
	userController := controllers.NewUserController(users)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, bookController, cartController, orderController, userController)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	fmt.Printf("Bookstore is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
