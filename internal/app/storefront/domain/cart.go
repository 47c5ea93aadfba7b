package domain

import "time"

// CartLineItem is one (product, quantity) pairing in a user's cart.
// Product is the joined catalog row and is nil when the join found nothing.
type CartLineItem struct {
	ID        string
	UserID    string
	ProductID string
	Quantity  int64
	Product   *Product
	CreatedAt time.Time
}

// CartSummary is the aggregate shown in the cart badge and checkout footer.
type CartSummary struct {
	Total *Money
	Count int64
}

// ValidateQuantity rejects quantities below one.
func ValidateQuantity(quantity int64) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	return nil
}

// FindLine returns the line for productID, or nil.
func FindLine(items []*CartLineItem, productID string) *CartLineItem {
	for _, item := range items {
		if item.ProductID == productID {
			return item
		}
	}
	return nil
}
