package get_product

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

// Request contains the product ID to retrieve.
type Request struct {
	ProductID string
}

// Query handles the get product query use case.
type Query struct {
	products contracts.ProductRepository
}

// NewQuery creates a new get product query.
func NewQuery(products contracts.ProductRepository) *Query {
	return &Query{products: products}
}

// Execute retrieves a product by ID.
func (q *Query) Execute(ctx context.Context, req *Request) (*domain.Product, error) {
	if req.ProductID == "" {
		return nil, domain.ErrProductNotFound
	}
	return q.products.GetByID(ctx, req.ProductID)
}
