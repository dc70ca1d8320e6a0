package matrix

import (
	"math"
	"sort"

	"github.com/twlab/cloudfb/edgebound"
)

// sparseRow is one query row's worth of contiguous-interval storage. Lb/Rb
// describe the padded range actually backed by m/i/d (from one halo cell
// before the row's first edgebound interval to one after its last,
// clipped to columns [0, t]; gaps between intervals are backed too), so that
// reading an immediate neighbour of a covered cell is always defined, per
// spec.md §3.
type sparseRow struct {
	lb, rb  int
	m, i, d []float64
}

func (r *sparseRow) get(st NormalState, col int) float64 {
	if col < r.lb || col >= r.rb {
		return math.Inf(-1)
	}
	off := col - r.lb
	switch st {
	case MatchState:
		return r.m[off]
	case InsertState:
		return r.i[off]
	default:
		return r.d[off]
	}
}

func (r *sparseRow) set(st NormalState, col int, v float64) {
	if col < r.lb || col >= r.rb {
		return // outside the backed range (halo cells are inside it): a no-op
	}
	off := col - r.lb
	switch st {
	case MatchState:
		r.m[off] = v
	case InsertState:
		r.i[off] = v
	default:
		r.d[off] = v
	}
}

// Sparse is the row-indexed DP matrix shaped by an edgebound.Set in ROW
// mode: each row backs one contiguous column span, from one halo cell
// before its first edgebound interval to one halo cell after its last, so
// any gap between intervals on that row is backed as well; other cells
// are not backed. Grounded on spec.md §3's "sparse row"
// storage shape.
type Sparse struct {
	q, t    int
	rows    []sparseRow  // rows[i] is query row i, empty if uncovered
	special [numSpecialStates][]float64
}

// Shape builds a Sparse matrix sized to (q, t) whose backing storage
// covers, on each row edges (ROW mode) names, the span from the first
// interval's Lb to the last interval's Rb plus one halo cell on each side,
// clipped to columns [0, t]; gaps between a row's intervals are backed too.
func Shape(edges *edgebound.Set, q, t int) *Sparse {
	s := &Sparse{q: q, t: t}
	s.rows = make([]sparseRow, q+1)
	for sp := range s.special {
		s.special[sp] = make([]float64, q+1)
		for row := range s.special[sp] {
			s.special[sp][row] = math.Inf(-1)
		}
	}
	if edges == nil {
		return s
	}
	byRow := map[int][]edgebound.Interval{}
	for _, b := range edges.Bands {
		byRow[b.Line] = append(byRow[b.Line], b.Interval)
	}
	for row, ivs := range byRow {
		sort.Slice(ivs, func(i, j int) bool { return ivs[i].Lb < ivs[j].Lb })
		lb := ivs[0].Lb - 1
		if lb < 0 {
			lb = 0
		}
		rb := ivs[len(ivs)-1].Rb + 1
		if rb > t+1 {
			rb = t + 1
		}
		width := rb - lb
		r := sparseRow{
			lb: lb, rb: rb,
			m: make([]float64, width),
			i: make([]float64, width),
			d: make([]float64, width),
		}
		for k := range r.m {
			r.m[k] = math.Inf(-1)
			r.i[k] = math.Inf(-1)
			r.d[k] = math.Inf(-1)
		}
		s.rows[row] = r
	}
	return s
}

// Q returns the configured query length.
func (s *Sparse) Q() int { return s.q }

// T returns the configured model length.
func (s *Sparse) T() int { return s.t }

// HasRow reports whether row i has any backing storage at all (i.e. the
// edgebound set the matrix was shaped from touches this row).
func (s *Sparse) HasRow(row int) bool {
	return s.rows[row].m != nil
}

// Bounds returns the backed [lb, rb) column range for row, which may be
// wider than the originating edgebound interval by one halo cell on each
// side.
func (s *Sparse) Bounds(row int) (lb, rb int) {
	return s.rows[row].lb, s.rows[row].rb
}

// Get returns the value of normal state st at (row, col); -Inf if col is
// outside row's backed range (an uncovered or halo cell).
func (s *Sparse) Get(st NormalState, row, col int) float64 {
	return s.rows[row].get(st, col)
}

// Set assigns the value of normal state st at (row, col); a no-op if col
// falls outside row's backed range.
func (s *Sparse) Set(st NormalState, row, col int, v float64) {
	s.rows[row].set(st, col, v)
}

// Special returns the value of special state sp at row.
func (s *Sparse) Special(sp SpecialState, row int) float64 {
	return s.special[sp][row]
}

// SetSpecial assigns the value of special state sp at row.
func (s *Sparse) SetSpecial(sp SpecialState, row int, v float64) {
	s.special[sp][row] = v
}
