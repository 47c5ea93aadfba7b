package clear_cart

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

// Request identifies whose cart to clear.
type Request struct {
	UserID string
}

// Interactor handles the clear cart use case.
type Interactor struct {
	carts contracts.CartRepository
}

// NewInteractor creates a new clear cart interactor.
func NewInteractor(carts contracts.CartRepository) *Interactor {
	return &Interactor{carts: carts}
}

// Execute empties the cart.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if req.UserID == "" {
		return domain.ErrUnauthenticated
	}
	if err := i.carts.DeleteAllForUser(ctx, req.UserID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
