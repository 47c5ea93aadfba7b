package contracts

import (
	"context"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

// IdentityProvider resolves the signed-in user from a backend-issued access token.
type IdentityProvider interface {
	// CurrentUser returns domain.ErrInvalidToken for a bad or expired token.
	CurrentUser(ctx context.Context, accessToken string) (*domain.User, error)
}
