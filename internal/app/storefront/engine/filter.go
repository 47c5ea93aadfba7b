package engine

import (
	"strings"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

// FilterProducts returns the products matching every predicate in params,
// keeping their input order.
func FilterProducts(products []*domain.Product, params domain.QueryParams) []*domain.Product {
	term := strings.ToLower(params.Term)
	filtered := make([]*domain.Product, 0, len(products))
	for _, p := range products {
		if matchesTerm(p, term) && matchesCategory(p, params.Category) && matchesPrice(p, params.PriceMin, params.PriceMax) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// matchesTerm expects term to be lower-cased already.
func matchesTerm(p *domain.Product, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term)
}

// Category matching is exact and case-sensitive.
func matchesCategory(p *domain.Product, category string) bool {
	return category == "" || p.Category == category
}

// Both bounds are inclusive; a nil bound is open.
func matchesPrice(p *domain.Product, min, max *domain.Money) bool {
	price := p.PriceOrZero()
	if min != nil && price.LessThan(min) {
		return false
	}
	if max != nil && price.GreaterThan(max) {
		return false
	}
	return true
}
