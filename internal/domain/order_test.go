package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewOrder_SnapshotsItemsAndTotal(t *testing.T) {
	items := []CartItem{
		NewCartItem(Product{ID: 1, Name: "Laptop", Price: 1200}, 1),
		NewCartItem(Product{ID: 2, Name: "Mouse", Price: 25}, 2),
	}

	order := NewOrder("Credit / Debit Card", items)

	assert.Equal(t, 0, order.ID)
	assert.NotEqual(t, uuid.Nil, order.CheckoutID)
	assert.Equal(t, 1250, order.TotalAmount)
	assert.Equal(t, 2, order.ItemCount())

	// mutating the source slice must not leak into the order
	items[0].Quantity = 10
	assert.Equal(t, 1, order.Items[0].Quantity)
	assert.Equal(t, 1250, order.TotalAmount)
}

func TestSumItems_Empty(t *testing.T) {
	assert.Equal(t, 0, SumItems(nil))
}
