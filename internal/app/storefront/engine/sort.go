package engine

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

// nameLocale drives the alphabetical ordering of product names.
var nameLocale = language.English

// SortProducts returns a stably sorted copy of products.
// Unknown keys fall back to sorting by name.
func SortProducts(products []*domain.Product, key domain.SortKey) []*domain.Product {
	sorted := slices.Clone(products)
	if sorted == nil {
		sorted = []*domain.Product{}
	}

	switch key {
	case domain.SortByPriceAsc:
		slices.SortStableFunc(sorted, func(a, b *domain.Product) int {
			return a.PriceOrZero().Cmp(b.PriceOrZero())
		})
	case domain.SortByPriceDesc:
		slices.SortStableFunc(sorted, func(a, b *domain.Product) int {
			return b.PriceOrZero().Cmp(a.PriceOrZero())
		})
	case domain.SortByNewest:
		slices.SortStableFunc(sorted, func(a, b *domain.Product) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	default:
		// Collators keep scratch buffers, so each call gets its own.
		c := collate.New(nameLocale)
		slices.SortStableFunc(sorted, func(a, b *domain.Product) int {
			return c.CompareString(a.Name, b.Name)
		})
	}

	return sorted
}

// Query runs the full browse pipeline: filter, then sort.
func Query(products []*domain.Product, params domain.QueryParams) []*domain.Product {
	return SortProducts(FilterProducts(products, params), params.SortKey)
}
