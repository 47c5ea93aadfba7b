package browse_catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/repo/memrepo"
)

func catalog() *memrepo.Store {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return memrepo.New(
		&domain.Product{ID: "1", Name: "Red Mug", Description: "ceramic", Category: "Kitchen", Price: domain.MustParseMoney("12.00"), StockQuantity: 1, CreatedAt: base},
		&domain.Product{ID: "2", Name: "Desk Lamp", Description: "warm light", Category: "Lighting", Price: domain.MustParseMoney("40.00"), StockQuantity: 1, CreatedAt: base.Add(time.Hour)},
		&domain.Product{ID: "3", Name: "Blue Mug", Description: "ceramic", Category: "Kitchen", Price: domain.MustParseMoney("9.99"), StockQuantity: 1, CreatedAt: base.Add(2 * time.Hour)},
	)
}

func names(products []*domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestBrowseCatalog(t *testing.T) {
	q := NewQuery(catalog())
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		resp, err := q.Execute(ctx, &Request{Params: domain.DefaultQueryParams()})
		require.NoError(t, err)
		assert.Equal(t, []string{"Blue Mug", "Desk Lamp", "Red Mug"}, names(resp.Products))
		assert.Equal(t, []string{"Kitchen", "Lighting"}, resp.Categories)
		assert.Equal(t, 3, resp.Count)
	})

	t.Run("filtered view keeps every category", func(t *testing.T) {
		params := domain.DefaultQueryParams()
		params.Term = "MUG"
		params.SortKey = domain.SortByPriceDesc

		resp, err := q.Execute(ctx, &Request{Params: params})
		require.NoError(t, err)
		assert.Equal(t, []string{"Red Mug", "Blue Mug"}, names(resp.Products))
		assert.Equal(t, []string{"Kitchen", "Lighting"}, resp.Categories)
		assert.Equal(t, 2, resp.Count)
	})

	t.Run("price window", func(t *testing.T) {
		params := domain.DefaultQueryParams()
		params.PriceMin = domain.MustParseMoney("10")
		params.PriceMax = domain.MustParseMoney("40")
		params.SortKey = domain.SortByNewest

		resp, err := q.Execute(ctx, &Request{Params: params})
		require.NoError(t, err)
		assert.Equal(t, []string{"Desk Lamp", "Red Mug"}, names(resp.Products))
	})
}

type brokenProducts struct {
	contracts.ProductRepository
}

func (brokenProducts) ListProducts(context.Context, *contracts.ListFilter) ([]*domain.Product, error) {
	return nil, errors.New("connection refused")
}

func TestBrowseCatalog_StoreError(t *testing.T) {
	_, err := NewQuery(brokenProducts{}).Execute(context.Background(), &Request{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
