package pgrepo

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

func TestNumeric(t *testing.T) {
	assert.Equal(t, "0", numeric(nil))
	assert.Equal(t, "19.98", numeric(domain.MustParseMoney("19.98")))
	assert.Equal(t, "5.00", numeric(domain.MustParseMoney("5")))
}

// openTestStore connects to TEST_DATABASE_URL, which must already be migrated.
func openTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping PostgreSQL integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(store.Close)
	return store
}

func TestStore_CartAndCheckout(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	productID := uuid.New().String()
	userID := uuid.New().String()

	require.NoError(t, store.UpsertProducts(ctx, []*domain.Product{{
		ID:            productID,
		Name:          "Blue Mug",
		Description:   "ceramic",
		Category:      "Kitchen",
		Price:         domain.MustParseMoney("9.99"),
		StockQuantity: 5,
	}}))
	t.Cleanup(func() {
		_, _ = store.pool.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, productID)
	})

	got, err := store.GetByID(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, "9.99", got.Price.String())

	_, err = store.GetByID(ctx, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	require.NoError(t, store.Insert(ctx, &domain.CartLineItem{
		ID: uuid.New().String(), UserID: userID, ProductID: productID, Quantity: 1,
	}))
	require.NoError(t, store.UpdateQuantity(ctx, userID, productID, 2))
	assert.ErrorIs(t, store.UpdateQuantity(ctx, userID, uuid.New().String(), 2), domain.ErrCartItemNotFound)

	items, err := store.ListForUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Product)
	assert.Equal(t, int64(2), items[0].Quantity)

	order := &domain.Order{
		ID:          uuid.New().String(),
		UserID:      userID,
		TotalAmount: domain.MustParseMoney("19.98"),
		Status:      domain.OrderStatusPending,
		ShippingAddress: domain.ShippingAddress{
			FullName: "Ada", AddressLine1: "1 Main St", City: "Springfield",
			State: "IL", PostalCode: "62701", Country: domain.DefaultCountry,
		},
		CreatedAt: time.Now().UTC(),
	}
	orderItems := []*domain.OrderItem{{
		ID: uuid.New().String(), OrderID: order.ID, ProductID: productID, Quantity: 2, Price: domain.MustParseMoney("9.99"),
	}}
	require.NoError(t, store.CommitOrder(ctx, order, orderItems))

	items, err = store.ListForUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, items)

	var total string
	require.NoError(t, store.pool.QueryRow(ctx, `SELECT total_amount::text FROM orders WHERE id = $1`, order.ID).Scan(&total))
	assert.Equal(t, "19.98", total)
}
