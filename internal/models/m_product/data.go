package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the products table.
type Data struct {
	ProductID        string
	Name             string
	Description      string
	Category         string
	PriceNumerator   int64
	PriceDenominator int64
	StockQuantity    int64
	ImageURL         spanner.NullString
	CreatedAt        time.Time
}
