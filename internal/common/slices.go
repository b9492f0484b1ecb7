package common

import (
	"cmp"
	"maps"
	"slices"
)

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// Diff returns the elements of a that are not present in b, keeping the
// order (and duplicates) of a.
func Diff[S ~[]E, E comparable](a, b S) S {
	if len(a) == 0 {
		return nil
	}

	exclude := make(map[E]struct{}, len(b))
	for _, e := range b {
		exclude[e] = struct{}{}
	}

	var out S

	for _, e := range a {
		if _, ok := exclude[e]; !ok {
			out = append(out, e)
		}
	}

	return out
}

// Unique returns the elements of s in first-seen order with duplicates removed.
func Unique[S ~[]E, E comparable](s S) S {
	seen := make(map[E]struct{}, len(s))
	out := make(S, 0, len(s))

	for _, e := range s {
		if _, ok := seen[e]; ok {
			continue
		}

		seen[e] = struct{}{}
		out = append(out, e)
	}

	return out
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	return slices.Sorted(maps.Keys(m))
}
