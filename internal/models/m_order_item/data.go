package m_order_item

// Data represents the database model for the order_items table,
// interleaved in orders.
type Data struct {
	OrderID          string
	OrderItemID      string
	ProductID        string
	Quantity         int64
	PriceNumerator   int64
	PriceDenominator int64
}
