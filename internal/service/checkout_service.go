package service

import (
	"errors"
	"fmt"

	"github.com/fjod/go_cart/console-shop/internal/domain"
	"github.com/fjod/go_cart/console-shop/internal/store"
	"go.uber.org/zap"
)

// OrderSaver is the part of the order ledger checkout depends on
type OrderSaver interface {
	Save(order domain.Order) (domain.Order, error)
	Full() bool
}

type CheckoutResult struct {
	Order   domain.Order
	Receipt domain.Receipt
}

type CheckoutService struct {
	cart   *Cart
	ledger OrderSaver
	log    *zap.Logger
}

func NewCheckoutService(cart *Cart, ledger OrderSaver, log *zap.Logger) *CheckoutService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CheckoutService{
		cart:   cart,
		ledger: ledger,
		log:    log,
	}
}

// Checkout pays for the cart with method, records the order and clears the cart.
//
// An empty cart or a full ledger is rejected before payment and leaves the cart
// untouched. When only the audit log write fails the checkout still completes:
// the result is valid and the returned error wraps store.ErrAuditLog.
func (s *CheckoutService) Checkout(method domain.PaymentMethod) (*CheckoutResult, error) {
	if s.cart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	if s.ledger.Full() {
		return nil, store.ErrLedgerFull
	}

	receipt, err := domain.Pay(method, s.cart.Total())
	if err != nil {
		return nil, err
	}

	order := domain.NewOrder(receipt.Label, s.cart.Items())
	saved, saveErr := s.ledger.Save(order)
	if saveErr != nil && !errors.Is(saveErr, store.ErrAuditLog) {
		return nil, fmt.Errorf("failed to save order: %w", saveErr)
	}

	s.cart.Clear()
	s.log.Info("checkout completed",
		zap.Int("order_id", saved.ID),
		zap.String("payment_method", receipt.Label),
		zap.Int("amount", receipt.Amount))

	return &CheckoutResult{Order: saved, Receipt: receipt}, saveErr
}
