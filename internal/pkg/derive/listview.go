package derive

import (
	"sort"
	"strings"
)

// Filter returns the elements whose searchable fields contain the query as
// a case-insensitive substring. fields extracts the view-specific set of
// searchable strings per element. A blank query after trimming matches
// everything; the source slice is never mutated and the result is always a
// fresh slice in the original order.
func Filter[T any](items []T, query string, fields func(T) []string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// SortBy returns a sorted copy of items using less as the comparator. The
// sort is stable so that repeated identical data keeps its relative order
// between renders.
func SortBy[T any](items []T, less func(a, b T) bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	if less == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}
