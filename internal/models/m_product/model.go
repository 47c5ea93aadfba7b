package m_product

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the products table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// UpsertMut creates a Spanner mutation that inserts or replaces a product.
// A zero CreatedAt is written as the commit timestamp.
func (m *Model) UpsertMut(data *Data) *spanner.Mutation {
	var createdAt interface{} = data.CreatedAt
	if data.CreatedAt.IsZero() {
		createdAt = spanner.CommitTimestamp
	}

	return spanner.InsertOrUpdate(
		TableName,
		Columns,
		[]interface{}{
			data.ProductID,
			data.Name,
			data.Description,
			data.Category,
			data.PriceNumerator,
			data.PriceDenominator,
			data.StockQuantity,
			data.ImageURL,
			createdAt,
		},
	)
}

// Scan decodes a row read with Columns.
func Scan(row *spanner.Row) (*Data, error) {
	var d Data
	if err := row.Columns(
		&d.ProductID,
		&d.Name,
		&d.Description,
		&d.Category,
		&d.PriceNumerator,
		&d.PriceDenominator,
		&d.StockQuantity,
		&d.ImageURL,
		&d.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}
