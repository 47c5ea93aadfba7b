package contracts

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

// CartRepository defines per-user cart persistence keyed by (user, product).
type CartRepository interface {
	// ListForUser returns the user's lines with the product joined.
	// A line whose product no longer exists has a nil Product.
	ListForUser(ctx context.Context, userID string) ([]*domain.CartLineItem, error)

	// Insert adds a new line.
	Insert(ctx context.Context, item *domain.CartLineItem) error

	// UpdateQuantity returns domain.ErrCartItemNotFound when the line does not exist.
	UpdateQuantity(ctx context.Context, userID, productID string, quantity int64) error

	// Delete removes one line. Deleting a missing line is not an error.
	Delete(ctx context.Context, userID, productID string) error

	// DeleteAllForUser empties the cart.
	DeleteAllForUser(ctx context.Context, userID string) error
}
