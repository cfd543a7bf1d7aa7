// Package pkg is a package that provides utilities for cairocov.
package pkg

// MergeCounts returns the key union of a and b, summing the counts of shared keys.
// Neither input is modified.
func MergeCounts[M ~map[K]int, K comparable](a, b M) M {
	merged := make(M, max(len(a), len(b)))

	for key, count := range a {
		merged[key] = count
	}

	for key, count := range b {
		merged[key] += count
	}

	return merged
}

// MergeNested returns the key union of a and b, combining the values of shared
// keys with merge. Neither input is modified as long as merge does not modify
// its arguments.
func MergeNested[M ~map[K]V, K comparable, V any](a, b M, merge func(V, V) V) M {
	merged := make(M, max(len(a), len(b)))

	for key, value := range a {
		merged[key] = value
	}

	for key, value := range b {
		if existing, ok := merged[key]; ok {
			merged[key] = merge(existing, value)
			continue
		}

		merged[key] = value
	}

	return merged
}
