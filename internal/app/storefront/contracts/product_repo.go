package contracts

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

// ListFilter narrows what the store returns. The zero value lists the whole catalog.
// Term, price and sort filtering belong to the query engine, not the store.
type ListFilter struct {
	Category string
	Limit    int
}

// ProductRepository defines read access to the catalog.
type ProductRepository interface {
	// ListProducts returns products in store order.
	ListProducts(ctx context.Context, filter *ListFilter) ([]*domain.Product, error)

	// GetByID returns domain.ErrProductNotFound when no product matches.
	GetByID(ctx context.Context, productID string) (*domain.Product, error)
}

// ProductWriter loads catalog data. Used by seeding, not by the storefront.
type ProductWriter interface {
	UpsertProducts(ctx context.Context, products []*domain.Product) error
}
