package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/fjod/go_cart/console-shop/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSource struct {
	products []*domain.Product
	err      error
}

func (m *mockSource) GetAllProducts(context.Context) ([]*domain.Product, error) {
	return m.products, m.err
}

func TestCatalog_Get(t *testing.T) {
	c, err := NewCatalog(DefaultProducts())
	require.NoError(t, err)

	p, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Laptop", p.Name)
	assert.Equal(t, 1200, p.Price)

	p, err = c.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 25, p.Price)
}

func TestCatalog_Get_NotFound(t *testing.T) {
	c, err := NewCatalog(DefaultProducts())
	require.NoError(t, err)

	_, err = c.Get(999)
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = c.Get(0)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCatalog_AllReturnsCopy(t *testing.T) {
	c, err := NewCatalog(DefaultProducts())
	require.NoError(t, err)

	all := c.All()
	require.Len(t, all, 4)
	all[0].Price = 1

	p, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 1200, p.Price)
}

func TestNewCatalog_Validation(t *testing.T) {
	tests := []struct {
		name     string
		products []domain.Product
		err      error
	}{
		{
			name:     "zero id",
			products: []domain.Product{{ID: 0, Name: "Ghost", Price: 1}},
			err:      ErrInvalidProduct,
		},
		{
			name:     "negative price",
			products: []domain.Product{{ID: 1, Name: "Refund", Price: -5}},
			err:      ErrInvalidProduct,
		},
		{
			name:     "price above limit",
			products: []domain.Product{{ID: 1, Name: "Yacht", Price: domain.MaxPrice + 1}},
			err:      ErrInvalidProduct,
		},
		{
			name: "duplicate id",
			products: []domain.Product{
				{ID: 1, Name: "Laptop", Price: 1200},
				{ID: 1, Name: "Laptop Pro", Price: 2000},
			},
			err: ErrDuplicateProduct,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.products)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestNewCatalog_TooLarge(t *testing.T) {
	products := make([]domain.Product, 0, MaxProducts+1)
	for i := 1; i <= MaxProducts+1; i++ {
		products = append(products, domain.Product{ID: int64(i), Name: "Item", Price: i})
	}

	_, err := NewCatalog(products)
	assert.ErrorIs(t, err, ErrCatalogTooLarge)

	_, err = NewCatalog(products[:MaxProducts])
	assert.NoError(t, err)
}

func TestLoadCatalog(t *testing.T) {
	src := &mockSource{products: []*domain.Product{
		{ID: 7, Name: "Webcam", Price: 60},
	}}

	c, err := LoadCatalog(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestLoadCatalog_SourceError(t *testing.T) {
	src := &mockSource{err: errors.New("disk error")}

	c, err := LoadCatalog(context.Background(), src)
	assert.Nil(t, c)
	assert.ErrorContains(t, err, "disk error")
}
