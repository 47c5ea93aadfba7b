package browse_catalog

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/engine"
)

// Request contains the catalog view parameters.
type Request struct {
	Params domain.QueryParams
}

// Response is one rendering of the catalog page.
type Response struct {
	Products []*domain.Product
	// Categories are derived from the whole catalog, not the filtered view,
	// so the filter panel keeps offering every category.
	Categories []string
	Count      int
}

// Query handles catalog browsing.
type Query struct {
	products contracts.ProductRepository
}

// NewQuery creates a new browse catalog query.
func NewQuery(products contracts.ProductRepository) *Query {
	return &Query{products: products}
}

// Execute loads the catalog and runs it through the query engine.
func (q *Query) Execute(ctx context.Context, req *Request) (*Response, error) {
	all, err := q.products.ListProducts(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	view := engine.Query(all, req.Params)
	return &Response{
		Products:   view,
		Categories: engine.DeriveCategories(all),
		Count:      len(view),
	}, nil
}
