//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/repo"
	"github.com/light-bringer/storefront-service/tests/testutil"
)

func TestProductRepository_UpsertAndGet(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	repository := repo.NewProductRepo(client)

	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	err := repository.UpsertProducts(ctx, []*domain.Product{{
		ID:            "mug-1",
		Name:          "Blue Mug",
		Description:   "Stoneware",
		Category:      "Kitchen",
		Price:         domain.MustParseMoney("9.99"),
		StockQuantity: 4,
		ImageURL:      "https://img.example.com/mug.jpg",
		CreatedAt:     created,
	}})
	require.NoError(t, err)
	testutil.AssertRowCount(t, client, "products", 1)

	got, err := repository.GetByID(ctx, "mug-1")
	require.NoError(t, err)
	assert.Equal(t, "Blue Mug", got.Name)
	assert.True(t, got.Price.Equals(domain.MustParseMoney("9.99")))
	assert.Equal(t, int64(4), got.StockQuantity)
	assert.Equal(t, "https://img.example.com/mug.jpg", got.ImageURL)
	assert.True(t, got.CreatedAt.Equal(created))

	t.Run("upsert replaces", func(t *testing.T) {
		got.StockQuantity = 0
		require.NoError(t, repository.UpsertProducts(ctx, []*domain.Product{got}))

		again, err := repository.GetByID(ctx, "mug-1")
		require.NoError(t, err)
		assert.Equal(t, int64(0), again.StockQuantity)
		testutil.AssertRowCount(t, client, "products", 1)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repository.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestProductRepository_ListProducts(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	repository := repo.NewProductRepo(client)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	products := []*domain.Product{
		{ID: "a", Name: "Oak Chair", Category: "Furniture", Price: domain.MustParseMoney("120"), CreatedAt: base},
		{ID: "b", Name: "Desk Lamp", Category: "Lighting", Price: domain.MustParseMoney("40"), CreatedAt: base.Add(time.Hour)},
		{ID: "c", Name: "Walnut Desk", Category: "Furniture", Price: domain.MustParseMoney("480"), CreatedAt: base.Add(2 * time.Hour)},
	}
	require.NoError(t, repository.UpsertProducts(ctx, products))

	all, err := repository.ListProducts(ctx, &contracts.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, ids(all), "newest first")

	furniture, err := repository.ListProducts(ctx, &contracts.ListFilter{Category: "Furniture"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, ids(furniture))

	limited, err := repository.ListProducts(ctx, &contracts.ListFilter{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, ids(limited))
}

func ids(products []*domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}
