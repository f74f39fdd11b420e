package domain

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID            int
	CheckoutID    uuid.UUID
	PaymentMethod string
	Items         []CartItem
	TotalAmount   int
	CreatedAt     time.Time
}

// NewOrder snapshots items into an order with no id assigned yet.
// TotalAmount is computed here once and never recomputed.
func NewOrder(paymentMethod string, items []CartItem) Order {
	snapshot := make([]CartItem, len(items))
	copy(snapshot, items)

	return Order{
		CheckoutID:    uuid.New(),
		PaymentMethod: paymentMethod,
		Items:         snapshot,
		TotalAmount:   SumItems(snapshot),
		CreatedAt:     time.Now(),
	}
}

func (o Order) ItemCount() int {
	return len(o.Items)
}
