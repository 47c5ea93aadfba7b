package remove_from_cart

import (
	"context"
	"fmt"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

// Request identifies the line to remove.
type Request struct {
	UserID    string
	ProductID string
}

// Interactor handles the remove from cart use case.
type Interactor struct {
	carts contracts.CartRepository
}

// NewInteractor creates a new remove from cart interactor.
func NewInteractor(carts contracts.CartRepository) *Interactor {
	return &Interactor{carts: carts}
}

// Execute removes the line. Removing a line that is not there succeeds.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if req.UserID == "" {
		return domain.ErrUnauthenticated
	}
	if err := i.carts.Delete(ctx, req.UserID, req.ProductID); err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}
