package repository

import (
	"context"
	"errors"

	"github.com/fjod/go_cart/console-shop/internal/domain"
)

// MaxProducts is the largest catalog the shop accepts.
const MaxProducts = 100

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCatalogTooLarge  = errors.New("catalog exceeds maximum number of products")
	ErrInvalidProduct   = errors.New("invalid product")
	ErrDuplicateProduct = errors.New("duplicate product id")
)

// ProductSource loads the product list once at startup.
type ProductSource interface {
	GetAllProducts(ctx context.Context) ([]*domain.Product, error)
}
