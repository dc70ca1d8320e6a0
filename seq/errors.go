package seq

import "errors"

// Sentinel errors for query validation, in the style of a fixed error
// table checked with errors.Is rather than ad hoc fmt.Errorf strings.
var (
	// ErrEmptyQuery is returned when a query sequence has zero residues.
	ErrEmptyQuery = errors.New("seq: empty query sequence")

	// ErrBadRange is returned when a query's active sub-range is
	// malformed (end <= beg, or out of bounds of the backing sequence).
	ErrBadRange = errors.New("seq: q_end <= q_beg or range out of bounds")

	// ErrUnrecognizedResidue is returned by NewQuery when strict
	// validation is requested and a residue outside AlphaAmino20 plus
	// GapSymbol/MissingSymbol/NonResidueSymbol/WildcardSymbol is
	// encountered.
	ErrUnrecognizedResidue = errors.New("seq: residue outside recognized alphabet")
)
