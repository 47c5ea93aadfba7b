package m_order_item

// Field name constants for the order_items table.
const (
	TableName = "order_items"

	OrderID          = "order_id"
	OrderItemID      = "order_item_id"
	ProductID        = "product_id"
	Quantity         = "quantity"
	PriceNumerator   = "price_numerator"
	PriceDenominator = "price_denominator"
)

// Columns lists every column in read order.
var Columns = []string{OrderID, OrderItemID, ProductID, Quantity, PriceNumerator, PriceDenominator}
