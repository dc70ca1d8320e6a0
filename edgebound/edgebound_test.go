package edgebound

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnionSeedScenario(t *testing.T) {
	a := New(Diag)
	a.Add(5, 0, 3)

	b := New(Diag)
	b.Add(5, 2, 6)
	b.Add(6, 0, 2)

	u := Union(a, b, 0)
	require.NoError(t, u.Validate())
	assert.Equal(t, []Interval{{Lb: 0, Rb: 6}}, u.IntervalsOn(5))
	assert.Equal(t, []Interval{{Lb: 0, Rb: 2}}, u.IntervalsOn(6))
}

func TestUnionCountBounds(t *testing.T) {
	a := New(Diag)
	a.Add(1, 0, 4)
	b := New(Diag)
	b.Add(1, 10, 14)

	u := Union(a, b, 0)
	assert.GreaterOrEqual(t, u.Count(), a.Count())
	assert.GreaterOrEqual(t, u.Count(), b.Count())
	assert.LessOrEqual(t, u.Count(), a.Count()+b.Count())
}

func TestReorientSeedScenario(t *testing.T) {
	d := New(Diag)
	d.Add(2, 0, 2)
	d.Add(3, 1, 3)

	r := Reorient(d)
	require.NoError(t, r.Validate())
	assert.Equal(t, d.Count(), r.Count())
}

func TestReorientIdempotentCellSet(t *testing.T) {
	d := New(Diag)
	d.Add(4, 0, 3)
	d.Add(5, 1, 4)
	d.Add(6, 2, 3)

	r1 := Reorient(d)
	// Reorient is DIAG->ROW only, so r1's cells are fed back in as a DIAG
	// set (cell (i, j) lies on diagonal i+j at k = i) and reoriented again:
	// the cell mapping is idempotent if the same ROW bands come back.
	back := New(Diag)
	for _, b := range r1.Bands {
		for j := b.Lb; j < b.Rb; j++ {
			back.Add(b.Line+j, b.Line, b.Line+1)
		}
	}
	back.Sort()
	r2 := Reorient(back)
	assert.Equal(t, r1.Bands, r2.Bands)
}

func TestTextCodecRoundTrip(t *testing.T) {
	s := New(Row)
	s.Add(0, 2, 5)
	s.Add(1, 0, 3)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, s))

	got, err := ReadText(&buf)
	require.NoError(t, err)
	assert.Equal(t, s.Mode, got.Mode)
	assert.Equal(t, s.Bands, got.Bands)
}
