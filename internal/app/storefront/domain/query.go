package domain

import "strings"

// SortKey selects the catalog ordering.
type SortKey string

const (
	SortByName      SortKey = "name"
	SortByPriceAsc  SortKey = "price_asc"
	SortByPriceDesc SortKey = "price_desc"
	SortByNewest    SortKey = "newest"
)

// DefaultPriceMax is the upper bound of the price filter when nothing is selected.
const DefaultPriceMax = 1000

// ParseSortKey maps user input onto a known key. Anything unrecognised sorts by name.
func ParseSortKey(s string) SortKey {
	switch key := SortKey(strings.ToLower(strings.TrimSpace(s))); key {
	case SortByName, SortByPriceAsc, SortByPriceDesc, SortByNewest:
		return key
	default:
		return SortByName
	}
}

// QueryParams holds the catalog filter and sort selection.
// A nil price bound leaves that side of the range open.
type QueryParams struct {
	Term     string
	Category string
	PriceMin *Money
	PriceMax *Money
	SortKey  SortKey
}

// DefaultQueryParams is the cleared filter panel: every category, $0 to $1000, by name.
func DefaultQueryParams() QueryParams {
	priceMax, _ := NewMoney(DefaultPriceMax, 1)
	return QueryParams{
		PriceMin: Zero(),
		PriceMax: priceMax,
		SortKey:  SortByName,
	}
}
