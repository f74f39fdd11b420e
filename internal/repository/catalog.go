package repository

import (
	"context"
	"fmt"

	"github.com/fjod/go_cart/console-shop/internal/domain"
)

// Catalog is the read-only product list. It is not modified after NewCatalog.
type Catalog struct {
	products []domain.Product
}

func DefaultProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Laptop", Price: 1200},
		{ID: 2, Name: "Mouse", Price: 25},
		{ID: 3, Name: "Keyboard", Price: 75},
		{ID: 4, Name: "Monitor", Price: 300},
	}
}

func NewCatalog(products []domain.Product) (*Catalog, error) {
	if len(products) > MaxProducts {
		return nil, fmt.Errorf("%w: %d > %d", ErrCatalogTooLarge, len(products), MaxProducts)
	}

	seen := make(map[int64]struct{}, len(products))
	for _, p := range products {
		if p.ID <= 0 || p.Price < 0 || p.Price > domain.MaxPrice || p.Name == "" {
			return nil, fmt.Errorf("%w: %+v", ErrInvalidProduct, p)
		}
		if _, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateProduct, p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	c := &Catalog{products: make([]domain.Product, len(products))}
	copy(c.products, products)
	return c, nil
}

// LoadCatalog builds a catalog from a product source.
func LoadCatalog(ctx context.Context, src ProductSource) (*Catalog, error) {
	rows, err := src.GetAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for _, p := range rows {
		products = append(products, *p)
	}
	return NewCatalog(products)
}

// Get returns the first product with the given id.
func (c *Catalog) Get(id int64) (domain.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("%w: %d", ErrProductNotFound, id)
}

func (c *Catalog) All() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Len() int {
	return len(c.products)
}
