// Package engine filters, orders and aggregates catalog data in memory.
//
// Every function is pure: inputs are never modified, results are freshly
// allocated, and nothing is shared between calls, so callers may invoke them
// concurrently or memoize them freely.
//
// The browse pipeline is always filter first, then sort:
//
//	engine.SortProducts(engine.FilterProducts(products, params), params.SortKey)
//
// which Query wraps.
package engine
