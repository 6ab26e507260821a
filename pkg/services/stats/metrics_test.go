package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeRatio(t *testing.T) {
	tests := []struct {
		name        string
		numerator   float64
		denominator float64
		expected    float64
	}{
		{"zero denominator", 50, 0, 0},
		{"negative denominator", 50, -10, 0},
		{"zero numerator", 0, 200, 0},
		{"quarter", 50, 200, 25},
		{"full", 1000, 1000, 100},
		{"over goal", 1500, 1000, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SafeRatio(tt.numerator, tt.denominator))
		})
	}
}

func TestSafeAverage(t *testing.T) {
	assert.Equal(t, 0.0, SafeAverage(100, 0))
	assert.Equal(t, 0.0, SafeAverage(100, -1))
	assert.Equal(t, 50.0, SafeAverage(100, 2))
}

func TestEvolutionPercent(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		expected float64
	}{
		{"nothing to nothing", 0, 0, 0},
		{"activity from nothing", 100, 0, 100},
		{"growth", 150, 100, 50},
		{"decline", 50, 100, -50},
		{"flat", 100, 100, 0},
		{"negative previous treated as nothing", 10, -5, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EvolutionPercent(tt.current, tt.previous))
		})
	}
}

func TestSumByCountBy(t *testing.T) {
	type rec struct {
		amount float64
		ok     bool
	}
	records := []rec{{10, true}, {20, false}, {30, true}}

	sum := SumBy(records, func(r rec) bool { return r.ok }, func(r rec) float64 { return r.amount })
	assert.Equal(t, 40.0, sum)

	assert.Equal(t, 2, CountBy(records, func(r rec) bool { return r.ok }))
	assert.Equal(t, 0, CountBy(nil, func(r rec) bool { return r.ok }))
}

func TestDistinctCount(t *testing.T) {
	type rec struct{ donorID string }
	records := []rec{{"d1"}, {"d2"}, {"d1"}, {"d3"}, {"d2"}}

	assert.Equal(t, 3, DistinctCount(records, func(r rec) string { return r.donorID }))
	assert.Equal(t, 0, DistinctCount(nil, func(r rec) string { return r.donorID }))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 33.33, Round2(100.0/3))
	assert.Equal(t, 25.0, Round2(25))
}
