package stats

import "sort"

// TopN returns the first n items ordered descending by metric. The sort
// is stable so ties keep their input order, and the result is a
// subsequence of the input; shorter inputs come back whole.
func TopN[T any](items []T, n int, metric func(T) float64) []T {
	ranked := make([]T, len(items))
	copy(ranked, items)

	sort.SliceStable(ranked, func(i, j int) bool {
		return metric(ranked[i]) > metric(ranked[j])
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
