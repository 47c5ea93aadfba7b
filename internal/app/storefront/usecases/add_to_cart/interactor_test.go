package add_to_cart

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/repo/memrepo"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

func setup(t *testing.T) (*Interactor, *memrepo.Store) {
	t.Helper()
	store := memrepo.New(
		&domain.Product{ID: "mug", Name: "Blue Mug", Category: "Kitchen", Price: domain.MustParseMoney("9.99"), StockQuantity: 3},
		&domain.Product{ID: "lamp", Name: "Desk Lamp", Category: "Lighting", Price: domain.MustParseMoney("25.00"), StockQuantity: 0},
	)
	clk := clock.NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewInteractor(store, store, clk), store
}

func TestAddToCart_NewLine(t *testing.T) {
	interactor, store := setup(t)
	ctx := context.Background()

	resp, err := interactor.Execute(ctx, &Request{UserID: "u-1", ProductID: "mug"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.CartItemID)
	assert.Equal(t, int64(1), resp.Quantity, "zero quantity defaults to one")
	assert.False(t, resp.Merged)

	items, err := store.ListForUser(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, resp.CartItemID, items[0].ID)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), items[0].CreatedAt)
}

func TestAddToCart_MergesExistingLine(t *testing.T) {
	interactor, store := setup(t)
	ctx := context.Background()

	first, err := interactor.Execute(ctx, &Request{UserID: "u-1", ProductID: "mug", Quantity: 2})
	require.NoError(t, err)

	second, err := interactor.Execute(ctx, &Request{UserID: "u-1", ProductID: "mug", Quantity: 3})
	require.NoError(t, err)
	assert.True(t, second.Merged)
	assert.Equal(t, first.CartItemID, second.CartItemID)
	assert.Equal(t, int64(5), second.Quantity)

	items, err := store.ListForUser(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(5), items[0].Quantity)
}

func TestAddToCart_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		req  *Request
		want error
	}{
		{"anonymous", &Request{ProductID: "mug"}, domain.ErrUnauthenticated},
		{"negative quantity", &Request{UserID: "u-1", ProductID: "mug", Quantity: -1}, domain.ErrInvalidQuantity},
		{"unknown product", &Request{UserID: "u-1", ProductID: "nope"}, domain.ErrProductNotFound},
		{"out of stock", &Request{UserID: "u-1", ProductID: "lamp"}, domain.ErrOutOfStock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interactor, store := setup(t)
			_, err := interactor.Execute(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)

			items, err := store.ListForUser(ctx, "u-1")
			require.NoError(t, err)
			assert.Empty(t, items)
		})
	}
}

// racingCart inserts the same product right after the cart is read, the way a
// second request for the same user would.
type racingCart struct {
	*memrepo.Store
	raced bool
}

func (c *racingCart) ListForUser(ctx context.Context, userID string) ([]*domain.CartLineItem, error) {
	items, err := c.Store.ListForUser(ctx, userID)
	if err != nil || c.raced {
		return items, err
	}
	c.raced = true
	return items, c.Store.Insert(ctx, &domain.CartLineItem{ID: "c-race", UserID: userID, ProductID: "mug", Quantity: 1})
}

func TestAddToCart_MergesConcurrentInsert(t *testing.T) {
	store := memrepo.New(
		&domain.Product{ID: "mug", Name: "Blue Mug", Category: "Kitchen", Price: domain.MustParseMoney("9.99"), StockQuantity: 3},
	)
	interactor := NewInteractor(store, &racingCart{Store: store}, clock.NewMockClock(time.Now()))
	ctx := context.Background()

	resp, err := interactor.Execute(ctx, &Request{UserID: "u-1", ProductID: "mug", Quantity: 2})
	require.NoError(t, err)
	assert.True(t, resp.Merged)
	assert.Equal(t, "c-race", resp.CartItemID)
	assert.Equal(t, int64(3), resp.Quantity)

	items, err := store.ListForUser(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(3), items[0].Quantity)
}
