package add_to_cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

// Request contains the data needed to add a product to a cart.
// A zero Quantity means one.
type Request struct {
	UserID    string
	ProductID string
	Quantity  int64
}

// Response reports the resulting line.
type Response struct {
	CartItemID string
	Quantity   int64
	Merged     bool
}

// Interactor handles the add to cart use case.
type Interactor struct {
	products contracts.ProductRepository
	carts    contracts.CartRepository
	clock    clock.Clock
}

// NewInteractor creates a new add to cart interactor.
func NewInteractor(
	products contracts.ProductRepository,
	carts contracts.CartRepository,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		products: products,
		carts:    carts,
		clock:    clock,
	}
}

// Execute adds the quantity to the user's line for the product, creating the line if needed.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.UserID == "" {
		return nil, domain.ErrUnauthenticated
	}
	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}
	if err := domain.ValidateQuantity(qty); err != nil {
		return nil, err
	}

	product, err := i.products.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.InStock() {
		return nil, domain.ErrOutOfStock
	}

	items, err := i.carts.ListForUser(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	if existing := domain.FindLine(items, req.ProductID); existing != nil {
		return i.merge(ctx, req, existing, qty)
	}

	line := &domain.CartLineItem{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Quantity:  qty,
		CreatedAt: i.clock.Now(),
	}
	err = i.carts.Insert(ctx, line)
	if errors.Is(err, domain.ErrCartItemExists) {
		// A concurrent add created the line after the cart was read.
		items, err = i.carts.ListForUser(ctx, req.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to reload cart: %w", err)
		}
		if existing := domain.FindLine(items, req.ProductID); existing != nil {
			return i.merge(ctx, req, existing, qty)
		}
		return nil, fmt.Errorf("failed to insert cart item: %w", domain.ErrCartItemExists)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert cart item: %w", err)
	}
	return &Response{CartItemID: line.ID, Quantity: qty}, nil
}

func (i *Interactor) merge(ctx context.Context, req *Request, existing *domain.CartLineItem, qty int64) (*Response, error) {
	newQty := existing.Quantity + qty
	if err := i.carts.UpdateQuantity(ctx, req.UserID, req.ProductID, newQty); err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}
	return &Response{CartItemID: existing.ID, Quantity: newQty, Merged: true}, nil
}
