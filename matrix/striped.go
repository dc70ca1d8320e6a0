package matrix

import "math"

// Striped is the rolling three-anti-diagonal storage cloud search runs
// over: cell (i, j) on diagonal d = i+j lives at (d mod 3, k) where k = i,
// per spec.md §4.3. Only the current, previous and two-previous
// diagonals are ever live; Scrub rewrites a diagonal's cells to -Inf once
// they are two diagonals stale so the backing arrays can be reused
// without reallocating.
type Striped struct {
	q, t int

	m, i, d [3][]float64 // each plane sized q+1, indexed by k = i
}

// NewStriped allocates a Striped matrix whose k axis spans query length q
// (model length t is retained only to clip diagonal bounds elsewhere).
func NewStriped(q, t int) *Striped {
	s := &Striped{}
	s.Reuse(q, t)
	return s
}

// Reuse grows the matrix to span query length q if smaller, retaining
// capacity otherwise, and clears every plane to -Inf.
func (s *Striped) Reuse(q, t int) {
	for plane := 0; plane < 3; plane++ {
		if cap(s.m[plane]) < q+1 {
			s.m[plane] = make([]float64, q+1)
			s.i[plane] = make([]float64, q+1)
			s.d[plane] = make([]float64, q+1)
		} else {
			s.m[plane] = s.m[plane][:q+1]
			s.i[plane] = s.i[plane][:q+1]
			s.d[plane] = s.d[plane][:q+1]
		}
	}
	s.q, s.t = q, t
	for plane := 0; plane < 3; plane++ {
		s.Scrub(plane)
	}
}

// Q returns the configured query length.
func (s *Striped) Q() int { return s.q }

// Get returns the value of normal state st at diagonal d, row k.
func (s *Striped) Get(st NormalState, d, k int) float64 {
	plane := d % 3
	switch st {
	case MatchState:
		return s.m[plane][k]
	case InsertState:
		return s.i[plane][k]
	default:
		return s.d[plane][k]
	}
}

// Set assigns the value of normal state st at diagonal d, row k.
func (s *Striped) Set(st NormalState, d, k int, v float64) {
	plane := d % 3
	switch st {
	case MatchState:
		s.m[plane][k] = v
	case InsertState:
		s.i[plane][k] = v
	default:
		s.d[plane][k] = v
	}
}

// Scrub rewrites every cell of the plane holding diagonal d to -Inf, so
// that plane can be reused once d is two diagonals stale (spec.md §4.3).
func (s *Striped) Scrub(d int) {
	plane := ((d % 3) + 3) % 3
	for k := range s.m[plane] {
		s.m[plane][k] = math.Inf(-1)
		s.i[plane][k] = math.Inf(-1)
		s.d[plane][k] = math.Inf(-1)
	}
}

// DiagBounds clips the [lo, hi] range of valid k=i values for diagonal d
// against matrix edges: max(0, d-T) <= k <= min(d, Q), per spec.md §4.3.
func (s *Striped) DiagBounds(d int) (lo, hi int) {
	lo = d - s.t
	if lo < 0 {
		lo = 0
	}
	hi = d
	if hi > s.q {
		hi = s.q
	}
	return lo, hi
}
