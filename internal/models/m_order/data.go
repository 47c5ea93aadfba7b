package m_order

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the orders table.
type Data struct {
	OrderID          string
	UserID           string
	TotalNumerator   int64
	TotalDenominator int64
	Status           string
	ShippingAddress  spanner.NullJSON
	CreatedAt        time.Time
}
