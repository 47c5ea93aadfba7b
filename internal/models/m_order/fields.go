package m_order

// Field name constants for the orders table.
const (
	TableName = "orders"

	OrderID          = "order_id"
	UserID           = "user_id"
	TotalNumerator   = "total_numerator"
	TotalDenominator = "total_denominator"
	Status           = "status"
	ShippingAddress  = "shipping_address"
	CreatedAt        = "created_at"
)

// Columns lists every column in read order.
var Columns = []string{
	OrderID,
	UserID,
	TotalNumerator,
	TotalDenominator,
	Status,
	ShippingAddress,
	CreatedAt,
}
