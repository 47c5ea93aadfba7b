package m_cart_item

import "time"

// Data represents the database model for the cart_items table.
type Data struct {
	UserID     string
	ProductID  string
	CartItemID string
	Quantity   int64
	CreatedAt  time.Time
}
