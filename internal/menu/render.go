package menu

import (
	"fmt"
	"io"

	"github.com/fjod/go_cart/console-shop/internal/domain"
	"github.com/fjod/go_cart/console-shop/internal/store"
)

const mainMenuText = `
E-Commerce System Menu:
1. View Products
2. View Shopping Cart
3. View Orders
4. Exit
`

func renderProducts(w io.Writer, products []domain.Product) {
	fmt.Fprintln(w, "Available Products:")
	fmt.Fprintf(w, "%-10s%-15s%10s\n", "Product ID", "Name", "Price")
	for _, p := range products {
		fmt.Fprintf(w, "%-10d%-15s%10d\n", p.ID, p.Name, p.Price)
	}
	fmt.Fprintln(w)
}

func renderCart(w io.Writer, items []domain.CartItem, total int) {
	fmt.Fprintln(w, "Your Shopping Cart:")
	store.RenderItems(w, items)
	fmt.Fprintf(w, "\nTotal Amount: %d\n", total)
}

func renderPaymentMenu(w io.Writer) {
	fmt.Fprintln(w, "\nSelect Payment Method:")
	for _, m := range domain.PaymentMethods {
		fmt.Fprintf(w, "%d. %s\n", int(m), m.MenuName())
	}
}
