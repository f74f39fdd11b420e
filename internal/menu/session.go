// Package menu runs the interactive shop session on a console.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fjod/go_cart/console-shop/internal/domain"
	"github.com/fjod/go_cart/console-shop/internal/prompt"
	"github.com/fjod/go_cart/console-shop/internal/repository"
	"github.com/fjod/go_cart/console-shop/internal/service"
	"github.com/fjod/go_cart/console-shop/internal/store"
	"go.uber.org/zap"
)

type State int

const (
	StateMainMenu State = iota
	StateViewingProducts
	StateViewingCart
	StateViewingOrders
	StateExited
)

func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "main_menu"
	case StateViewingProducts:
		return "viewing_products"
	case StateViewingCart:
		return "viewing_cart"
	case StateViewingOrders:
		return "viewing_orders"
	case StateExited:
		return "exited"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Catalog is what the session needs to list and validate products
type Catalog interface {
	All() []domain.Product
	Get(id int64) (domain.Product, error)
}

type Session struct {
	in       *prompt.Reader
	out      io.Writer
	catalog  Catalog
	cart     *service.Cart
	checkout *service.CheckoutService
	ledger   store.OrderLedger
	log      *zap.Logger
}

func NewSession(
	in *prompt.Reader,
	out io.Writer,
	catalog Catalog,
	cart *service.Cart,
	checkout *service.CheckoutService,
	ledger store.OrderLedger,
	log *zap.Logger,
) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		in:       in,
		out:      out,
		catalog:  catalog,
		cart:     cart,
		checkout: checkout,
		ledger:   ledger,
		log:      log,
	}
}

// Run drives the menu until the user exits. Closed input is treated as Exit.
// It returns ctx.Err() when the context is done, and errors from prompting or
// from listing orders. Other console writes are best effort.
func (s *Session) Run(ctx context.Context) error {
	state := StateMainMenu
	for state != StateExited {
		if err := ctx.Err(); err != nil {
			return err
		}

		next, err := s.step(state)
		if errors.Is(err, io.EOF) {
			s.log.Info("input closed, ending session", zap.Stringer("state", state))
			next = StateExited
		} else if err != nil {
			return err
		}

		if next != state {
			s.log.Debug("state change", zap.Stringer("from", state), zap.Stringer("to", next))
		}
		state = next
	}

	fmt.Fprintln(s.out, "Exiting the E-Commerce System. Thank you!")
	return nil
}

func (s *Session) step(state State) (State, error) {
	switch state {
	case StateMainMenu:
		return s.mainMenu()
	case StateViewingProducts:
		return StateMainMenu, s.viewProducts()
	case StateViewingCart:
		return StateMainMenu, s.viewCart()
	case StateViewingOrders:
		return StateMainMenu, s.ledger.ListAll(s.out)
	default:
		return StateExited, nil
	}
}

func (s *Session) mainMenu() (State, error) {
	choice, err := ask(s, func() (int, error) {
		fmt.Fprint(s.out, mainMenuText)
		return s.in.Choice("Enter your choice: ", 1, 4)
	})
	if err != nil {
		return StateMainMenu, err
	}

	switch choice {
	case 1:
		return StateViewingProducts, nil
	case 2:
		return StateViewingCart, nil
	case 3:
		return StateViewingOrders, nil
	default:
		return StateExited, nil
	}
}

func (s *Session) viewProducts() error {
	renderProducts(s.out, s.catalog.All())

	for {
		productID, err := s.askProductID()
		if err != nil {
			return err
		}
		if productID == 0 {
			return nil
		}

		quantity, err := ask(s, func() (int, error) {
			q, err := s.in.Int("Enter quantity: ")
			if err == nil && (q < 1 || q > domain.MaxQuantity) {
				err = fmt.Errorf("%w: quantity %d", prompt.ErrInvalidInput, q)
			}
			return q, err
		})
		if err != nil {
			return err
		}

		_, err = s.cart.Add(productID, quantity)
		switch {
		case err == nil:
			fmt.Fprintln(s.out, "Product added successfully!")
		case errors.Is(err, service.ErrCartFull):
			fmt.Fprintln(s.out, "Shopping cart is full!")
		default:
			s.log.Error("add to cart failed", zap.Int64("product_id", productID), zap.Error(err))
			fmt.Fprintln(s.out, "Error: could not add product to cart.")
		}

		more, err := ask(s, func() (bool, error) {
			return s.in.YesNo("Add another product? (Y/N): ")
		})
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// askProductID re-prompts until the user enters 0 or an id present in the catalog.
func (s *Session) askProductID() (int64, error) {
	for {
		id, err := ask(s, func() (int, error) {
			return s.in.Int("Enter Product ID to add to cart (0 to go back): ")
		})
		if err != nil || id == 0 {
			return 0, err
		}

		if _, err := s.catalog.Get(int64(id)); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				fmt.Fprintln(s.out, "Invalid Product ID. Please enter a valid ID from the list.")
				continue
			}
			return 0, err
		}
		return int64(id), nil
	}
}

func (s *Session) viewCart() error {
	if s.cart.IsEmpty() {
		fmt.Fprintln(s.out, "\nYour Shopping Cart is empty.")
		return nil
	}

	renderCart(s.out, s.cart.Items(), s.cart.Total())

	checkout, err := ask(s, func() (bool, error) {
		return s.in.YesNo("Do you want to check out? (Y/N): ")
	})
	if err != nil || !checkout {
		return err
	}

	choice, err := ask(s, func() (int, error) {
		renderPaymentMenu(s.out)
		return s.in.Choice("Enter choice: ", 1, len(domain.PaymentMethods))
	})
	if err != nil {
		return err
	}

	method, err := domain.ParsePaymentMethod(choice)
	if err != nil {
		fmt.Fprintln(s.out, "Error: Invalid payment method.")
		return nil
	}

	result, err := s.checkout.Checkout(method)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrEmptyCart):
		fmt.Fprintln(s.out, "Your cart is empty. Nothing to checkout.")
		return nil
	case errors.Is(err, store.ErrLedgerFull):
		fmt.Fprintln(s.out, "Warning: Maximum number of orders reached.")
		return nil
	case errors.Is(err, store.ErrAuditLog):
		s.log.Warn("order saved without audit line", zap.Int("order_id", result.Order.ID), zap.Error(err))
	default:
		s.log.Error("checkout failed", zap.Error(err))
		fmt.Fprintln(s.out, "Error: checkout failed, your cart was kept.")
		return nil
	}

	fmt.Fprintln(s.out, result.Receipt.Message)
	if errors.Is(err, store.ErrAuditLog) {
		fmt.Fprintf(s.out, "Warning: order %d could not be written to the order log.\n", result.Order.ID)
	}
	fmt.Fprintln(s.out, "\nYou have successfully checked out the products!")
	return nil
}

// ask repeats read until it returns something other than prompt.ErrInvalidInput.
func ask[T any](s *Session, read func() (T, error)) (T, error) {
	for {
		v, err := read()
		if errors.Is(err, prompt.ErrInvalidInput) {
			s.log.Debug("invalid input", zap.Error(err))
			fmt.Fprintln(s.out, prompt.InvalidInputMessage)
			continue
		}
		return v, err
	}
}
