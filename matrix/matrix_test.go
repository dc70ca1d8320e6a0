package matrix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/twlab/cloudfb/edgebound"
)

func TestDenseReuseClearsCells(t *testing.T) {
	d := NewDense(3, 4)
	d.Set(MatchState, 2, 2, 1.5)
	d.Reuse(3, 4)
	assert.True(t, math.IsInf(d.Get(MatchState, 2, 2), -1))
}

func TestDenseGrowsWithoutShrinkingCapacity(t *testing.T) {
	d := NewDense(10, 10)
	d.Reuse(2, 2)
	assert.Equal(t, 2, d.Q())
	assert.GreaterOrEqual(t, cap(d.m), 11*11)
	d.Set(MatchState, 1, 1, 3.0)
	assert.Equal(t, 3.0, d.Get(MatchState, 1, 1))
}

func TestStripedScrubOnlyTouchesOnePlane(t *testing.T) {
	s := NewStriped(5, 5)
	s.Set(MatchState, 0, 2, 7.0)
	s.Set(MatchState, 3, 2, 9.0) // diagonal 3 shares plane 0 with diagonal 0
	s.Set(MatchState, 1, 2, 5.0) // plane 1
	s.Scrub(3)
	assert.True(t, math.IsInf(s.Get(MatchState, 0, 2), -1))
	assert.Equal(t, 5.0, s.Get(MatchState, 1, 2))
}

func TestStripedDiagBounds(t *testing.T) {
	s := NewStriped(5, 3)
	lo, hi := s.DiagBounds(4)
	assert.Equal(t, 1, lo) // max(0, 4-3)
	assert.Equal(t, 4, hi) // min(4, 5)
}

func TestSparseHaloReadsDefined(t *testing.T) {
	edges := edgebound.New(edgebound.Row)
	edges.Add(1, 2, 4)

	sp := Shape(edges, 3, 5)
	assert.True(t, sp.HasRow(1))
	assert.False(t, sp.HasRow(0))

	lb, rb := sp.Bounds(1)
	assert.Equal(t, 1, lb) // one halo cell before
	assert.Equal(t, 5, rb) // one halo cell after

	assert.True(t, math.IsInf(sp.Get(MatchState, 1, 1), -1)) // halo cell
	sp.Set(MatchState, 1, 2, 4.2)
	assert.Equal(t, 4.2, sp.Get(MatchState, 1, 2))
}
