package viterbi

import "errors"

// ErrInvalidTraceback is returned when no Viterbi predecessor reproduces
// the current cell within tolerance while walking the traceback backward
// (spec.md §4.2, §7): a sign of corrupt input or a logsum-vs-max mix-up
// in the forward recurrence feeding this traceback.
var ErrInvalidTraceback = errors.New("viterbi: no predecessor reproduces cell score")

// tolerance bounds the floating point slop allowed when comparing a cell
// score against a reconstructed predecessor-plus-edge score during
// traceback.
const tolerance = 1e-6
