//go:build integration

package e2e

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/browse_catalog"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/get_cart"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/add_to_cart"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/place_order"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/update_cart_quantity"
	"github.com/light-bringer/storefront-service/tests/testutil"
)

func TestCheckoutFlow(t *testing.T) {
	suite, cleanup := setupTest(t)
	defer cleanup()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	blue := NewProductBuilder().WithName("Blue Mug").WithPrice("9.99").CreatedAt(base).Build()
	red := NewProductBuilder().WithName("Red Mug").WithPrice("12.00").WithStock(0).CreatedAt(base.Add(time.Hour)).Build()
	lamp := NewProductBuilder().WithName("Desk Lamp").WithCategory("Lighting").WithPrice("40").CreatedAt(base.Add(2 * time.Hour)).Build()
	require.NoError(t, suite.Store.Writer().UpsertProducts(ctx(), []*domain.Product{blue, red, lamp}))

	// Browse: search, category list and price sort.
	catalog, err := suite.BrowseCatalog.Execute(ctx(), &browse_catalog.Request{
		Params: domain.QueryParams{Term: "mug", SortKey: domain.SortByPriceDesc},
	})
	require.NoError(t, err)
	require.Equal(t, 2, catalog.Count)
	assert.Equal(t, "Red Mug", catalog.Products[0].Name)
	assert.ElementsMatch(t, []string{"Kitchen", "Lighting"}, catalog.Categories)

	const user = "user-1"

	t.Run("out of stock rejected", func(t *testing.T) {
		_, err := suite.AddToCart.Execute(ctx(), &add_to_cart.Request{UserID: user, ProductID: red.ID})
		assert.ErrorIs(t, err, domain.ErrOutOfStock)
	})

	_, err = suite.AddToCart.Execute(ctx(), &add_to_cart.Request{UserID: user, ProductID: blue.ID})
	require.NoError(t, err)
	merged, err := suite.AddToCart.Execute(ctx(), &add_to_cart.Request{UserID: user, ProductID: blue.ID, Quantity: 2})
	require.NoError(t, err)
	assert.True(t, merged.Merged)
	assert.Equal(t, int64(3), merged.Quantity)

	_, err = suite.AddToCart.Execute(ctx(), &add_to_cart.Request{UserID: user, ProductID: lamp.ID})
	require.NoError(t, err)
	err = suite.UpdateQuantity.Execute(ctx(), &update_cart_quantity.Request{UserID: user, ProductID: blue.ID, Quantity: 2})
	require.NoError(t, err)

	cart, err := suite.GetCart.Execute(ctx(), &get_cart.Request{UserID: user})
	require.NoError(t, err)
	assert.Equal(t, int64(3), cart.Summary.Count)
	assert.Equal(t, "59.98", cart.Summary.Total.String())

	placed, err := suite.PlaceOrder.Execute(ctx(), &place_order.Request{
		UserID:          user,
		ShippingAddress: validAddress(),
		Payment:         validPayment(),
	})
	require.NoError(t, err)
	assert.Equal(t, "59.98", placed.Total.String())
	assert.Equal(t, int64(3), placed.ItemCount)

	order, err := suite.Store.OrderRepo().GetOrder(ctx(), placed.OrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, domain.DefaultCountry, order.ShippingAddress.Country)

	testutil.AssertRowCount(t, suite.Client, "order_items", 2)
	testutil.AssertRowCount(t, suite.Client, "cart_items", 0)
	event := testutil.AssertOutboxEvent(t, suite.Client, "order.placed")
	assert.Equal(t, placed.OrderID, event.AggregateID)

	t.Run("empty cart cannot check out again", func(t *testing.T) {
		_, err := suite.PlaceOrder.Execute(ctx(), &place_order.Request{
			UserID:          user,
			ShippingAddress: validAddress(),
			Payment:         validPayment(),
		})
		assert.ErrorIs(t, err, domain.ErrEmptyCart)
	})
}
