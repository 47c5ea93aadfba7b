package engine

import "github.com/light-bringer/storefront-service/internal/app/storefront/domain"

// DeriveCategories returns each category label once, in order of first appearance.
func DeriveCategories(products []*domain.Product) []string {
	seen := make(map[string]struct{}, len(products))
	categories := make([]string, 0)
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}
