package get_cart

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/engine"
)

// Request identifies whose cart to load.
type Request struct {
	UserID string
}

// Response is the cart with its derived totals.
type Response struct {
	Items   []*domain.CartLineItem
	Summary domain.CartSummary
}

// Query handles the get cart query use case.
type Query struct {
	carts contracts.CartRepository
}

// NewQuery creates a new get cart query.
func NewQuery(carts contracts.CartRepository) *Query {
	return &Query{carts: carts}
}

// Execute loads the user's lines and aggregates them.
func (q *Query) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.UserID == "" {
		return nil, domain.ErrUnauthenticated
	}

	items, err := q.carts.ListForUser(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if items == nil {
		items = []*domain.CartLineItem{}
	}

	return &Response{
		Items:   items,
		Summary: engine.AggregateCart(items),
	}, nil
}
