package m_cart_item

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the cart_items table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for a new cart line. It fails on commit if the
// user already has a line for the product.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		Columns,
		[]interface{}{
			data.UserID,
			data.ProductID,
			data.CartItemID,
			data.Quantity,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateQuantityMut sets the quantity of an existing line.
func (m *Model) UpdateQuantityMut(userID, productID string, quantity int64) *spanner.Mutation {
	return spanner.Update(
		TableName,
		[]string{UserID, ProductID, Quantity},
		[]interface{}{userID, productID, quantity},
	)
}

// DeleteMut removes one line.
func (m *Model) DeleteMut(userID, productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{userID, productID})
}

// DeleteAllForUserMut removes every line of a user's cart.
func (m *Model) DeleteAllForUserMut(userID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{userID}.AsPrefix())
}

// Scan decodes a row read with Columns.
func Scan(row *spanner.Row) (*Data, error) {
	var d Data
	if err := row.Columns(&d.UserID, &d.ProductID, &d.CartItemID, &d.Quantity, &d.CreatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}
