// Package collection provides generic, functional-style helpers for slices,
// in the Laravel Collection spirit.
//
// Usage:
//
//	ids := collection.Map(items, func(i models.CartItem) uint { return i.ProductID })
//	electronics := collection.Filter(products, func(p models.Product) bool { return p.Category == "Electronics" })
package collection

// Map transforms each element of slice s using fn.
func Map[T, R any](s []T, fn func(T) R) []R {
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// Filter returns elements of s for which fn returns true.
func Filter[T any](s []T, fn func(T) bool) []T {
	var out []T
	for _, v := range s {
		if fn(v) {
			out = append(out, v)
		}
	}
	return out
}
