package m_cart_item

// Field name constants for the cart_items table.
// The primary key is (user_id, product_id): one line per product per user.
const (
	TableName = "cart_items"

	UserID     = "user_id"
	ProductID  = "product_id"
	CartItemID = "cart_item_id"
	Quantity   = "quantity"
	CreatedAt  = "created_at"
)

// Columns lists every column in read order.
var Columns = []string{UserID, ProductID, CartItemID, Quantity, CreatedAt}
