package logsum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func reference(a, b float64) float64 {
	if math.IsInf(a, -1) && math.IsInf(b, -1) {
		return math.Inf(-1)
	}
	return math.Log(math.Exp(a) + math.Exp(b))
}

func TestLogsumMatchesReference(t *testing.T) {
	cases := [][2]float64{
		{0, 0}, {-1, -2}, {-10, -0.5}, {-100, -0.001}, {math.Inf(-1), -5},
		{-5, math.Inf(-1)}, {math.Inf(-1), math.Inf(-1)},
	}
	for _, c := range cases {
		got := Logsum(c[0], c[1])
		want := reference(c[0], c[1])
		if math.IsInf(want, -1) {
			assert.True(t, math.IsInf(got, -1))
			continue
		}
		assert.InDelta(t, want, got, 1e-3)
	}
}

func TestLogsumCommutative(t *testing.T) {
	a, b := -3.2, -0.7
	assert.InDelta(t, Logsum(a, b), Logsum(b, a), 1e-3)
}

func TestLogsumAssociative(t *testing.T) {
	a, b, c := -1.0, -2.0, -3.0
	left := Logsum(Logsum(a, b), c)
	right := Logsum(a, Logsum(b, c))
	assert.InDelta(t, left, right, 1e-3)
}

func TestLogsumNOrderIndependent(t *testing.T) {
	terms := []float64{-1.0, -4.5, -0.2, -9.9}
	reversed := []float64{-9.9, -0.2, -4.5, -1.0}
	assert.InDelta(t, LogsumN(terms...), LogsumN(reversed...), 1e-3)
}
