//go:build integration

package e2e

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/browse_catalog"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/get_cart"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/get_product"
	"github.com/light-bringer/storefront-service/internal/app/storefront/repo"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/add_to_cart"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/clear_cart"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/place_order"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/remove_from_cart"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/update_cart_quantity"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/tests/testutil"
)

// Services holds all use cases and queries for E2E tests.
type Services struct {
	// Commands
	AddToCart      *add_to_cart.Interactor
	UpdateQuantity *update_cart_quantity.Interactor
	RemoveFromCart *remove_from_cart.Interactor
	ClearCart      *clear_cart.Interactor
	PlaceOrder     *place_order.Interactor

	// Queries
	BrowseCatalog *browse_catalog.Query
	GetProduct    *get_product.Query
	GetCart       *get_cart.Query

	// Infrastructure
	Store  *repo.Store
	Clock  *clock.MockClock
	Client *spanner.Client
}

// setupTest wires every use case over a Spanner store on a clean database.
func setupTest(t *testing.T) (*Services, func()) {
	t.Helper()

	client, cleanup := testutil.SetupSpannerTest(t)

	clk := testutil.NewMockClock()
	store := repo.NewStoreFromClient(client)

	products := store.Products()
	carts := store.Carts()

	services := &Services{
		AddToCart:      add_to_cart.NewInteractor(products, carts, clk),
		UpdateQuantity: update_cart_quantity.NewInteractor(carts),
		RemoveFromCart: remove_from_cart.NewInteractor(carts),
		ClearCart:      clear_cart.NewInteractor(carts),
		PlaceOrder:     place_order.NewInteractor(carts, store.Orders(), clk),
		BrowseCatalog:  browse_catalog.NewQuery(products),
		GetProduct:     get_product.NewQuery(products),
		GetCart:        get_cart.NewQuery(carts),
		Store:          store,
		Clock:          clk,
		Client:         client,
	}

	return services, cleanup
}

// ctx returns a context for testing.
func ctx() context.Context {
	return context.Background()
}
