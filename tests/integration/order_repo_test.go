//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
	"github.com/light-bringer/storefront-service/internal/app/storefront/repo"
	"github.com/light-bringer/storefront-service/internal/models/m_outbox"
	"github.com/light-bringer/storefront-service/tests/testutil"
)

func TestOrderRepository_CommitOrder(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	store := repo.NewStoreFromClient(client)
	mugID := testutil.CreateTestProduct(t, client, "Blue Mug", 999, 10)

	require.NoError(t, store.Carts().Insert(ctx, &domain.CartLineItem{
		ID: "line-1", UserID: "u1", ProductID: mugID, Quantity: 2, CreatedAt: time.Now().UTC(),
	}))

	order := &domain.Order{
		ID:          "order-1",
		UserID:      "u1",
		TotalAmount: domain.MustParseMoney("19.98"),
		Status:      domain.OrderStatusPending,
		ShippingAddress: domain.ShippingAddress{
			FullName: "Ada Lovelace", AddressLine1: "1 Analytical Way", City: "London",
			State: "LDN", PostalCode: "N1", Country: domain.DefaultCountry,
		},
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	items := []*domain.OrderItem{{
		ID: "item-1", OrderID: "order-1", ProductID: mugID, Quantity: 2, Price: domain.MustParseMoney("9.99"),
	}}

	require.NoError(t, store.OrderRepo().CommitOrder(ctx, order, items))

	testutil.AssertRowCount(t, client, "orders", 1)
	testutil.AssertRowCount(t, client, "order_items", 1)
	testutil.AssertRowCount(t, client, "cart_items", 0)

	got, err := store.OrderRepo().GetOrder(ctx, "order-1")
	require.NoError(t, err)
	assert.True(t, got.TotalAmount.Equals(order.TotalAmount))
	assert.Equal(t, order.ShippingAddress, got.ShippingAddress)
	assert.Equal(t, domain.OrderStatusPending, got.Status)

	event := testutil.AssertOutboxEvent(t, client, "order.placed")
	assert.Equal(t, "order-1", event.AggregateID)
	assert.Equal(t, m_outbox.StatusPending, event.Status)

	raw, err := json.Marshal(event.Payload.Value)
	require.NoError(t, err)
	var payload domain.OrderPlacedEvent
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, "u1", payload.UserID)
	assert.Equal(t, int64(2), payload.ItemCount)
	assert.Equal(t, "19.98", payload.TotalAmount)
}

func TestOrderRepository_StepwiseInserts(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	orders := repo.NewOrderRepo(client, repo.NewOutboxRepo(client))

	order := &domain.Order{
		ID: "order-2", UserID: "u2", TotalAmount: domain.Zero(), Status: domain.OrderStatusPending,
		ShippingAddress: domain.ShippingAddress{Country: domain.DefaultCountry}, CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, orders.InsertOrder(ctx, order))
	require.NoError(t, orders.InsertOrderItems(ctx, []*domain.OrderItem{
		{ID: "i1", OrderID: "order-2", ProductID: "gone", Quantity: 1, Price: domain.Zero()},
		{ID: "i2", OrderID: "order-2", ProductID: "gone-too", Quantity: 3, Price: domain.Zero()},
	}))

	testutil.AssertRowCount(t, client, "order_items", 2)
	testutil.AssertRowCount(t, client, "outbox_events", 0)
}
