package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusConfirmed is the status assigned to an order at successful checkout.
const StatusConfirmed = "Confirmed"

// ShippingInfo is the delivery information collected at checkout.
type ShippingInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zip_code"`
}

// PaymentInfo records how an order was paid. Only the method and the
// gateway transaction id are kept; raw card data never reaches an order.
type PaymentInfo struct {
	Method        string `json:"method"`
	TransactionID string `json:"transaction_id"`
}

// OrderItem is a snapshot of a cart line at purchase time. It captures the
// price so later catalog changes cannot alter a completed order.
type OrderItem struct {
	Title    string          `json:"title"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// Order represents a completed purchase. It is immutable after creation.
type Order struct {
	OrderID     string          `json:"order_id"`
	UserEmail   string          `json:"user_email"`
	Items       []OrderItem     `json:"items"`
	Shipping    ShippingInfo    `json:"shipping"`
	Payment     PaymentInfo     `json:"payment"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewOrder builds an order from the given cart lines. The items are copied
// into snapshots, not referenced, so clearing the cart afterwards leaves
// the order intact.
func NewOrder(orderID, userEmail string, items []CartItem, shipping ShippingInfo, payment PaymentInfo, total decimal.Decimal) *Order {
	snapshots := make([]OrderItem, 0, len(items))
	for _, item := range items {
		snapshots = append(snapshots, OrderItem{
			Title:    item.Book.Title,
			Category: item.Book.Category,
			Price:    item.Book.Price,
			Quantity: item.Quantity,
			Subtotal: item.Subtotal(),
		})
	}

	return &Order{
		OrderID:     orderID,
		UserEmail:   userEmail,
		Items:       snapshots,
		Shipping:    shipping,
		Payment:     payment,
		TotalAmount: total,
		Status:      StatusConfirmed,
		CreatedAt:   time.Now(),
	}
}
