package update_cart_quantity

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

// Request sets a line's quantity.
type Request struct {
	UserID    string
	ProductID string
	Quantity  int64
}

// Interactor handles the update cart quantity use case.
type Interactor struct {
	carts contracts.CartRepository
}

// NewInteractor creates a new update cart quantity interactor.
func NewInteractor(carts contracts.CartRepository) *Interactor {
	return &Interactor{carts: carts}
}

// Execute rejects quantities below one; removal is a separate operation.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if req.UserID == "" {
		return domain.ErrUnauthenticated
	}
	if err := domain.ValidateQuantity(req.Quantity); err != nil {
		return err
	}
	return i.carts.UpdateQuantity(ctx, req.UserID, req.ProductID, req.Quantity)
}
