package store

import (
	"fmt"
	"io"

	"github.com/fjod/go_cart/console-shop/internal/domain"
)

const NoOrdersMessage = "No orders have been placed yet."

// RenderOrders writes the order history table used by "View Orders".
func RenderOrders(w io.Writer, orders []domain.Order) error {
	if len(orders) == 0 {
		_, err := fmt.Fprintf(w, "\n%s\n", NoOrdersMessage)
		return err
	}

	for _, o := range orders {
		if _, err := fmt.Fprintf(w, "Order ID: %d\nTotal Amount: %d\nPayment Method: %s\nOrder Details:\n",
			o.ID, o.TotalAmount, o.PaymentMethod); err != nil {
			return err
		}
		if err := RenderItems(w, o.Items); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// RenderItems writes the Product ID / Name / Price / Quantity table shared by
// the cart view and the order history.
func RenderItems(w io.Writer, items []domain.CartItem) error {
	if _, err := fmt.Fprintf(w, "%-15s%-20s%10s%10s\n", "Product ID", "Name", "Price", "Quantity"); err != nil {
		return err
	}
	for _, item := range items {
		if _, err := fmt.Fprintf(w, "%-15d%-20s%10d%10d\n", item.ProductID, item.Name, item.Price, item.Quantity); err != nil {
			return err
		}
	}
	return nil
}
