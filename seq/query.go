package seq

import "fmt"

// Query is a Sequence restricted to an active sub-range (spec.md §3: "a
// query may carry an active sub-range (q_beg, q_end); the core must
// honour the range without copying the string"). Rather than tracking a
// separate Beg/End pair alongside the full backing Sequence, Query
// simply holds the Sequence.Slice view of that range: Slice already
// returns a no-copy sub-sequence, so the active range and the embedded
// Sequence are the same value, not two things kept in sync.
type Query struct {
	Sequence
}

// NewQuery builds a Query covering the whole of seq. If strict is true,
// every residue must be a standard amino acid or one of
// GapSymbol/MissingSymbol/NonResidueSymbol/WildcardSymbol, otherwise
// ErrUnrecognizedResidue
// is returned.
func NewQuery(s Sequence, strict bool) (Query, error) {
	if s.Len() == 0 {
		return Query{}, ErrEmptyQuery
	}
	if strict {
		for i, r := range s.Residues {
			if !isRecognized(r) {
				return Query{}, fmt.Errorf("%w: residue %q at position %d", ErrUnrecognizedResidue, r, i)
			}
		}
	}
	return Query{Sequence: s}, nil
}

func isRecognized(r Residue) bool {
	switch r {
	case GapSymbol, MissingSymbol, NonResidueSymbol, WildcardSymbol:
		return true
	}
	return IsStandardAmino(r)
}

// WithRange returns a copy of q restricted to [beg, end) of the active
// range, via Sequence.Slice (no copy).
func (q Query) WithRange(beg, end int) (Query, error) {
	if end <= beg || beg < 0 || end > q.Sequence.Len() {
		return Query{}, ErrBadRange
	}
	return Query{Sequence: q.Sequence.Slice(beg, end)}, nil
}

// At returns the residue at active-range-relative position i (0-based).
func (q Query) At(i int) Residue {
	return q.Residues[i]
}

// Active returns the residues in the active range (no copy).
func (q Query) Active() []Residue {
	return q.Residues
}
