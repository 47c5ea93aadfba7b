package services

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/light-bringer/storefront-service/internal/app/storefront/contracts"
	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/repo/memrepo"
	"github.com/light-bringer/storefront-service/internal/config"
)

func memoryConfig(t *testing.T, catalogFile string) *config.Config {
	t.Helper()
	cfg, err := config.FromLookup(func(key string) (string, bool) {
		if key == "CATALOG_FILE" {
			return catalogFile, true
		}
		return "", false
	})
	require.NoError(t, err)
	return cfg
}

func TestNewServiceOptions_Memory(t *testing.T) {
	opts, err := NewServiceOptions(context.Background(), memoryConfig(t, ""), zap.NewNop())
	require.NoError(t, err)
	defer opts.Close()

	assert.IsType(t, &memrepo.Store{}, opts.Store)
	assert.NotNil(t, opts.Identity)
	assert.NotNil(t, opts.HTTPHandler)
}

func TestOpenBackend_MemoryLoadsCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := `products:
  - {id: mug, name: Blue Mug, category: Kitchen, price: "9.99", stock_quantity: 3}
  - {id: lamp, name: Desk Lamp, category: Lighting, price: "25.00", stock_quantity: 1}
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	ctx := context.Background()
	store, err := OpenBackend(ctx, memoryConfig(t, path))
	require.NoError(t, err)
	defer store.Close()

	products, err := store.Products().ListProducts(ctx, &contracts.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, products, 2)

	mug, err := store.Products().GetByID(ctx, "mug")
	require.NoError(t, err)
	assert.Equal(t, "9.99", mug.Price.String())
}

func TestOpenBackend_MemoryCatalogErrors(t *testing.T) {
	ctx := context.Background()

	_, err := OpenBackend(ctx, memoryConfig(t, filepath.Join(t.TempDir(), "missing.yaml")))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("products:\n  - {name: X, price: \"1\"}\n"), 0o600))
	_, err = OpenBackend(ctx, memoryConfig(t, bad))
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestOpenBackend_UnknownDriver(t *testing.T) {
	_, err := OpenBackend(context.Background(), &config.Config{StoreDriver: "mongo"})
	assert.Error(t, err)
}
