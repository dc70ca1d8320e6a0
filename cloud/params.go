package cloud

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadParams is returned by Params.Validate.
var ErrBadParams = errors.New("cloud: invalid parameters")

// Params are the three X-drop tunables of spec.md §6.
type Params struct {
	// Alpha is the X-drop from the global max, in nats. Pass +Inf to
	// disable pruning entirely (spec.md §8's "alpha = infinity" case).
	Alpha float64

	// Beta is the symmetric padding, in cells, added to the surviving
	// bound on each side every pruning step.
	Beta int

	// Gamma is the number of free (unpruned) anti-diagonals before
	// pruning engages.
	Gamma int
}

// Validate checks Params against spec.md §6's constraints.
func (p Params) Validate() error {
	if math.IsNaN(p.Alpha) || p.Alpha < 0 {
		return fmt.Errorf("%w: alpha must be >= 0, got %v", ErrBadParams, p.Alpha)
	}
	if p.Beta < 0 {
		return fmt.Errorf("%w: beta must be >= 0, got %d", ErrBadParams, p.Beta)
	}
	if p.Gamma < 0 {
		return fmt.Errorf("%w: gamma must be >= 0, got %d", ErrBadParams, p.Gamma)
	}
	return nil
}

// Stats reports cloud-search geometry alongside the edgebound set, for
// the threshold filters on composite scores named in spec.md §4.3.
type Stats struct {
	// MaxInRange is the maximum max(M,I,D) cell score over the seed
	// diagonal and the Gamma unpruned diagonals after it; MaxOutOfRange
	// is the maximum over the pruned diagonals walked after those. Both
	// start at 0, so a range with no cells, or whose cells all score
	// below 0, reports 0.
	MaxInRange, MaxOutOfRange float64

	// CellCount is the number of DP cells the produced edgebound set
	// covers.
	CellCount int

	// Diagonals is the number of anti-diagonals the search walked
	// before termination.
	Diagonals int
}
