package testutil

import (
	"context"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/models/m_outbox"
	"github.com/light-bringer/storefront-service/internal/models/m_product"
)

// CreateTestProduct writes a product priced in cents directly to the database.
func CreateTestProduct(t *testing.T, client *spanner.Client, name string, priceCents, stock int64) string {
	t.Helper()

	productID := uuid.New().String()
	data := &m_product.Data{
		ProductID:        productID,
		Name:             name,
		Description:      "Test product description",
		Category:         "Kitchen",
		PriceNumerator:   priceCents,
		PriceDenominator: 100,
		StockQuantity:    stock,
		CreatedAt:        time.Now().UTC(),
	}

	_, err := client.Apply(context.Background(), []*spanner.Mutation{m_product.NewModel().UpsertMut(data)})
	require.NoError(t, err, "failed to create test product")

	return productID
}

// DeleteTestProduct removes a product row and leaves any cart lines pointing at it.
func DeleteTestProduct(t *testing.T, client *spanner.Client, productID string) {
	t.Helper()
	_, err := client.Apply(context.Background(), []*spanner.Mutation{spanner.Delete(m_product.TableName, spanner.Key{productID})})
	require.NoError(t, err, "failed to delete test product")
}

// AssertOutboxEvent asserts that at least one event of the given type exists and returns the newest.
func AssertOutboxEvent(t *testing.T, client *spanner.Client, eventType string) *m_outbox.Data {
	t.Helper()

	stmt := spanner.Statement{
		SQL: "SELECT " + strings.Join(m_outbox.Columns, ", ") +
			" FROM outbox_events WHERE event_type = @type ORDER BY created_at DESC LIMIT 1",
		Params: map[string]interface{}{"type": eventType},
	}

	iter := client.Single().Query(context.Background(), stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "no %s event in outbox", eventType)

	data, err := m_outbox.Scan(row)
	require.NoError(t, err)
	return data
}

// MarkEventProcessed moves an outbox event to a terminal status as a relay would.
func MarkEventProcessed(t *testing.T, client *spanner.Client, eventID string, at time.Time, errMsg string) {
	t.Helper()

	mut := m_outbox.NewModel().MarkProcessedMut(eventID, at, errMsg)
	_, err := client.Apply(context.Background(), []*spanner.Mutation{mut})
	require.NoError(t, err)
}
