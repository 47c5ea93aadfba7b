package m_product

// Field name constants for the products table.
const (
	TableName = "products"

	ProductID        = "product_id"
	Name             = "name"
	Description      = "description"
	Category         = "category"
	PriceNumerator   = "price_numerator"
	PriceDenominator = "price_denominator"
	StockQuantity    = "stock_quantity"
	ImageURL         = "image_url"
	CreatedAt        = "created_at"
)

// Columns lists every column in read order. Row decoding relies on this order.
var Columns = []string{
	ProductID,
	Name,
	Description,
	Category,
	PriceNumerator,
	PriceDenominator,
	StockQuantity,
	ImageURL,
	CreatedAt,
}
