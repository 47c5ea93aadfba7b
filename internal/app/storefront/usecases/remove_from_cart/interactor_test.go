package remove_from_cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/repo/memrepo"
)

func TestRemoveFromCart(t *testing.T) {
	ctx := context.Background()
	store := memrepo.New()
	require.NoError(t, store.Insert(ctx, &domain.CartLineItem{ID: "c-1", UserID: "u-1", ProductID: "mug", Quantity: 1}))
	require.NoError(t, store.Insert(ctx, &domain.CartLineItem{ID: "c-2", UserID: "u-1", ProductID: "lamp", Quantity: 2}))

	interactor := NewInteractor(store)
	require.NoError(t, interactor.Execute(ctx, &Request{UserID: "u-1", ProductID: "mug"}))

	items, err := store.ListForUser(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "lamp", items[0].ProductID)

	assert.NoError(t, interactor.Execute(ctx, &Request{UserID: "u-1", ProductID: "mug"}), "removing twice is fine")
	assert.ErrorIs(t, interactor.Execute(ctx, &Request{ProductID: "lamp"}), domain.ErrUnauthenticated)
}
