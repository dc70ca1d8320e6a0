package search

import (
	"fmt"
	"math"

	"github.com/twlab/cloudfb/hmm"
)

// Config enumerates the tunables spec.md §6 names for one search call.
// Grounded on katalvlaran-lvlath/dtw's Options.Validate() idiom: a flat
// struct of exported fields plus a Validate method callers run once
// before reuse across many pairs.
type Config struct {
	// Alpha, Beta, Gamma are Cloud Search's X-drop parameters
	// (cloud.Params), carried through unchanged.
	Alpha float64
	Beta  int
	Gamma int

	// Mode selects the profile's local/glocal x unihit/multihit entry
	// and exit behaviour.
	Mode hmm.Mode

	// RunBias toggles the null2 composition-bias correction.
	RunBias bool
	// RunFull bypasses Cloud Search entirely: edgebounds cover the
	// whole (Q+1)x(T+1) matrix.
	RunFull bool
	// RunDomains toggles posterior domain splitting and per-domain
	// scoring.
	RunDomains bool

	// Rt1, Rt2, Rt3 are domain.FindRuns' core/widen thresholds (Rt1,
	// Rt2) and the per-domain bit-score acceptance floor (Rt3).
	Rt1, Rt2, Rt3 float64

	// EvalCutoff drops a pair whose final E-value exceeds it.
	EvalCutoff float64
	// DBSize is n_seqs_in_db, used to scale a P-value into an E-value.
	DBSize float64

	// MaxCells bounds (Q+1)(T+1); zero means unbounded.
	MaxCells int
}

// Validate checks Config against spec.md §6/§7's constraints.
func (c Config) Validate() error {
	if math.IsNaN(c.Alpha) || c.Alpha < 0 {
		return fmt.Errorf("search: alpha must be >= 0, got %v", c.Alpha)
	}
	if c.Beta < 0 {
		return fmt.Errorf("search: beta must be >= 0, got %d", c.Beta)
	}
	if c.Gamma < 0 {
		return fmt.Errorf("search: gamma must be >= 0, got %d", c.Gamma)
	}
	if c.RunDomains {
		if c.Rt1 < 0 || c.Rt1 > 1 || c.Rt2 < 0 || c.Rt2 > 1 {
			return fmt.Errorf("search: rt1/rt2 must be in [0,1], got %v/%v", c.Rt1, c.Rt2)
		}
	}
	if c.DBSize < 0 {
		return fmt.Errorf("search: db_size must be >= 0, got %v", c.DBSize)
	}
	if c.MaxCells < 0 {
		return fmt.Errorf("search: max_cells must be >= 0, got %d", c.MaxCells)
	}
	return nil
}
