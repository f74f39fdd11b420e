package service

import (
	"fmt"

	"github.com/fjod/go_cart/console-shop/internal/domain"
	"go.uber.org/zap"
)

// DefaultCartCapacity is the maximum number of lines a cart holds
const DefaultCartCapacity = 100

// ProductCatalog is the lookup the cart needs from the catalog
type ProductCatalog interface {
	Get(id int64) (domain.Product, error)
}

type Cart struct {
	catalog  ProductCatalog
	capacity int
	items    []domain.CartItem
	log      *zap.Logger
}

func NewCart(catalog ProductCatalog, capacity int, log *zap.Logger) *Cart {
	if capacity < 1 {
		capacity = DefaultCartCapacity
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Cart{
		catalog:  catalog,
		capacity: capacity,
		log:      log,
	}
}

// Add appends a snapshot line for the product. Adding the same product again
// creates a second line.
func (c *Cart) Add(productID int64, quantity int) (domain.CartItem, error) {
	if quantity < 1 || quantity > domain.MaxQuantity {
		return domain.CartItem{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	product, err := c.catalog.Get(productID)
	if err != nil {
		return domain.CartItem{}, err
	}

	if len(c.items) >= c.capacity {
		c.log.Warn("cart full, item dropped",
			zap.Int64("product_id", productID),
			zap.Int("capacity", c.capacity))
		return domain.CartItem{}, ErrCartFull
	}

	item := domain.NewCartItem(product, quantity)
	c.items = append(c.items, item)

	c.log.Debug("item added to cart",
		zap.Int64("product_id", item.ProductID),
		zap.Int("quantity", item.Quantity),
		zap.Int("lines", len(c.items)))
	return item, nil
}

func (c *Cart) Total() int {
	return domain.SumItems(c.items)
}

func (c *Cart) Items() []domain.CartItem {
	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) Clear() {
	c.items = nil
}
