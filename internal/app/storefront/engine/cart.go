package engine

import "github.com/light-bringer/storefront-service/internal/app/storefront/domain"

// AggregateCart sums line totals and quantities.
// A line without a joined product counts toward the quantity at zero price.
func AggregateCart(items []*domain.CartLineItem) domain.CartSummary {
	summary := domain.CartSummary{Total: domain.Zero()}
	for _, item := range items {
		summary.Total = summary.Total.Add(LineTotal(item))
		summary.Count += item.Quantity
	}
	return summary
}

// LineTotal is price x quantity for one cart line.
func LineTotal(item *domain.CartLineItem) *domain.Money {
	return item.Product.PriceOrZero().MultiplyByInt(item.Quantity)
}
