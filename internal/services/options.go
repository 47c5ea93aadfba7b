package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/browse_catalog"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/get_cart"
	"github.com/light-bringer/storefront-service/internal/app/storefront/queries/get_product"
	"github.com/light-bringer/storefront-service/internal/app/storefront/repo"
	"github.com/light-bringer/storefront-service/internal/app/storefront/repo/memrepo"
	"github.com/light-bringer/storefront-service/internal/app/storefront/repo/pgrepo"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/add_to_cart"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/clear_cart"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/place_order"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/remove_from_cart"
	"github.com/light-bringer/storefront-service/internal/app/storefront/usecases/update_cart_quantity"
	"github.com/light-bringer/storefront-service/internal/catalogfile"
	"github.com/light-bringer/storefront-service/internal/config"
	"github.com/light-bringer/storefront-service/internal/pkg/authn"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	httptransport "github.com/light-bringer/storefront-service/internal/transport/http"
)

// Backend is a storefront store that can also load catalog data.
type Backend interface {
	contracts.Store
	Writer() contracts.ProductWriter
}

var (
	_ Backend = (*repo.Store)(nil)
	_ Backend = (*pgrepo.Store)(nil)
	_ Backend = (*memrepo.Store)(nil)
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	Store       Backend
	Identity    *authn.JWTIdentity
	HTTPHandler *httptransport.Handler
}

// OpenBackend connects the store selected by cfg.StoreDriver.
// The memory store starts with the products in cfg.CatalogFile.
func OpenBackend(ctx context.Context, cfg *config.Config) (Backend, error) {
	switch cfg.StoreDriver {
	case config.DriverSpanner:
		return repo.NewStore(ctx, cfg.SpannerDatabase)
	case config.DriverPostgres:
		return pgrepo.Open(ctx, cfg.DatabaseURL)
	case config.DriverMemory:
		if cfg.CatalogFile == "" {
			return memrepo.New(), nil
		}
		products, err := catalogfile.LoadFile(cfg.CatalogFile)
		if err != nil {
			return nil, err
		}
		return memrepo.New(products...), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// NewServiceOptions opens the configured backend and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg *config.Config, log *zap.Logger) (*ServiceOptions, error) {
	store, err := OpenBackend(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.StoreDriver, err)
	}
	log.Info("store opened", zap.String("driver", cfg.StoreDriver))

	clk := clock.NewRealClock()
	identity, err := authn.NewJWTIdentity(cfg.JWTSecret, cfg.JWTTTL, clk)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to create identity provider: %w", err)
	}

	return Wire(store, identity, clk), nil
}

// Wire builds the use cases and handler over an already opened store.
func Wire(store Backend, identity *authn.JWTIdentity, clk clock.Clock) *ServiceOptions {
	products := store.Products()
	carts := store.Carts()
	orders := store.Orders()

	// Commands
	addToCart := add_to_cart.NewInteractor(products, carts, clk)
	updateQuantity := update_cart_quantity.NewInteractor(carts)
	removeFromCart := remove_from_cart.NewInteractor(carts)
	clearCart := clear_cart.NewInteractor(carts)
	placeOrder := place_order.NewInteractor(carts, orders, clk)

	// Queries
	browseCatalog := browse_catalog.NewQuery(products)
	getProduct := get_product.NewQuery(products)
	getCart := get_cart.NewQuery(carts)

	handler := httptransport.NewHandler(
		addToCart,
		updateQuantity,
		removeFromCart,
		clearCart,
		placeOrder,
		browseCatalog,
		getProduct,
		getCart,
	)

	return &ServiceOptions{
		Store:       store,
		Identity:    identity,
		HTTPHandler: handler,
	}
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.Store != nil {
		s.Store.Close()
	}
}
