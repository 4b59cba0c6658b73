// utils/email.go
package utils

import (
	"fmt"
	"strings"

	"github.com/keighl/postmark"

	"go-bookstore/models"
)

// EmailSender delivers order confirmations. Checkout depends on this
// interface so a real mail provider can replace the console mock.
type EmailSender interface {
	SendOrderConfirmation(toEmail string, order *models.Order) error
}

// ConsoleSender writes confirmation mail to standard output instead of
// sending it. This is the default in development and tests.
type ConsoleSender struct{}

// NewConsoleSender creates a console-backed sender.
func NewConsoleSender() *ConsoleSender {
	return &ConsoleSender{}
}

// SendOrderConfirmation prints the confirmation and always succeeds for a
// valid order.
func (s *ConsoleSender) SendOrderConfirmation(toEmail string, order *models.Order) error {
	fmt.Printf("--- Order Confirmation Email ---\nTo: %s\n%s\n--------------------------------\n",
		toEmail, formatOrderConfirmation(order))
	return nil
}

// PostmarkSender sends confirmation mail through Postmark.
type PostmarkSender struct {
	client *postmark.Client
	from   string
}

// NewPostmarkSender creates a Postmark-backed sender.
func NewPostmarkSender(apiToken, from string) *PostmarkSender {
	return &PostmarkSender{
		client: postmark.NewClient(apiToken, ""),
		from:   from,
	}
}

// SendOrderConfirmation sends the confirmation email to the customer.
func (s *PostmarkSender) SendOrderConfirmation(toEmail string, order *models.Order) error {
	body := formatOrderConfirmation(order)
	_, err := s.client.SendEmail(postmark.Email{
		From:     s.from,
		To:       toEmail,
		Subject:  fmt.Sprintf("Order Confirmation - %s", order.OrderID),
		TextBody: body,
		HtmlBody: strings.ReplaceAll(body, "\n", "<br>"),
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func formatOrderConfirmation(order *models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", order.Shipping.Name)
	fmt.Fprintf(&b, "Thank you for your purchase! Your order %s has been confirmed.\n\n", order.OrderID)
	b.WriteString("Items:\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "  %s x%d - $%s\n", item.Title, item.Quantity, item.Subtotal.StringFixed(2))
	}
	fmt.Fprintf(&b, "\nTotal Amount: $%s\n", order.TotalAmount.StringFixed(2))
	fmt.Fprintf(&b, "Payment Method: %s\n", order.Payment.Method)
	fmt.Fprintf(&b, "Transaction ID: %s\n", order.Payment.TransactionID)
	fmt.Fprintf(&b, "Shipping To: %s, %s, %s %s\n\n", order.Shipping.Name, order.Shipping.Address, order.Shipping.City, order.Shipping.ZipCode)
	b.WriteString("Thank you for shopping with us!")
	return b.String()
}
