package stats

import "math"

// Metric primitives. All of them are total functions: where the natural
// computation is undefined they return the documented default instead
// of failing, so report composition never has to branch on arithmetic.

// SafeRatio returns numerator/denominator as a percentage, or 0 when
// the denominator is not positive. Used for progress-toward-goal and
// success-rate metrics.
func SafeRatio(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}
	return numerator / denominator * 100
}

// SafeAverage returns sum/count, or 0 when count is not positive.
func SafeAverage(sum float64, count int) float64 {
	if count <= 0 {
		return 0
	}
	return sum / float64(count)
}

// EvolutionPercent returns the percentage change from previous to
// current. When previous is not positive the result is 100 if current
// is positive and 0 otherwise: new activity from nothing reads as
// +100%, nothing-to-nothing as flat.
func EvolutionPercent(current, previous float64) float64 {
	if previous > 0 {
		return (current - previous) / previous * 100
	}
	if current > 0 {
		return 100
	}
	return 0
}

// SumBy sums amount(r) over every record for which keep returns true.
func SumBy[T any](records []T, keep func(T) bool, amount func(T) float64) float64 {
	var total float64
	for _, r := range records {
		if keep(r) {
			total += amount(r)
		}
	}
	return total
}

// CountBy counts the records for which keep returns true.
func CountBy[T any](records []T, keep func(T) bool) int {
	n := 0
	for _, r := range records {
		if keep(r) {
			n++
		}
	}
	return n
}

// DistinctCount counts distinct values of key(r). The key must be a
// stable logical identity (entity id), not a transient struct value.
func DistinctCount[T any, K comparable](records []T, key func(T) K) int {
	seen := make(map[K]struct{}, len(records))
	for _, r := range records {
		seen[key(r)] = struct{}{}
	}
	return len(seen)
}

// Round2 rounds to two decimal places, the precision every percentage
// in the reporting vocabulary is published with.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
