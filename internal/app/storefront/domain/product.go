package domain

import "time"

// Product is a catalog entry as returned by the product store.
// The query engine treats it as an immutable snapshot.
type Product struct {
	ID            string
	Name          string
	Description   string
	Category      string
	Price         *Money
	StockQuantity int64
	ImageURL      string
	CreatedAt     time.Time
}

// PriceOrZero returns the product price, or zero when the price was never set.
func (p *Product) PriceOrZero() *Money {
	if p == nil || p.Price == nil {
		return Zero()
	}
	return p.Price
}

// InStock reports whether at least one unit can be added to a cart.
func (p *Product) InStock() bool {
	return p.StockQuantity > 0
}

// ValidateProduct checks a product before it is written to the store.
// Reads are never validated; the query engine accepts whatever the store holds.
func ValidateProduct(p *Product) error {
	if p.Name == "" {
		return ErrEmptyName
	}
	if p.Category == "" {
		return ErrInvalidCategory
	}
	if p.Price == nil || p.Price.IsNegative() || !p.Price.IsWholeCents() {
		return ErrInvalidPrice
	}
	if p.StockQuantity < 0 {
		return ErrInvalidStock
	}
	return nil
}
