package viterbi

import (
	"fmt"
	"strings"

	"github.com/twlab/cloudfb/seq"
)

// CIGAR renders the traceback as an MMseqs-style run-length string, e.g.
// "3M1I2M1D4M", collapsing consecutive steps of the same state into one
// run. Special states (S/N/B/E/C/J/T) are omitted, matching
// MMseqs' alignment-string convention of only describing the M/I/D path
// through the model.
func (tb *Traceback) CIGAR() string {
	var sb strings.Builder
	runState := State(-1)
	runLen := 0
	flush := func() {
		if runLen > 0 {
			fmt.Fprintf(&sb, "%d%s", runLen, runState)
		}
	}
	for _, step := range tb.Steps {
		if step.State != StateM && step.State != StateI && step.State != StateD {
			continue
		}
		if step.State == runState {
			runLen++
			continue
		}
		flush()
		runState, runLen = step.State, 1
	}
	flush()
	return sb.String()
}

// Alignment is the three-line HMMER-style rendering of a traceback:
// target residues, a center line marking matches, and query residues,
// plus the underlying state track. Grounded on
// original_source/src/objects/alignment.c's state-to-symbol mapping.
type Alignment struct {
	Target, Center, Query string
	States                string
}

// Alignment renders tb against query and the profile's consensus
// residues (cons, one byte per model column, 1-based column j at
// cons[j-1]).
func (tb *Traceback) Alignment(query seq.Query, cons []seq.Residue) Alignment {
	var target, center, queryLine, states strings.Builder
	for _, step := range tb.Steps {
		switch step.State {
		case StateM:
			target.WriteByte(byte(cons[step.J-1]))
			q := query.At(step.I - 1)
			if seq.Residue(cons[step.J-1]) == q {
				center.WriteByte('+')
			} else {
				center.WriteByte(' ')
			}
			queryLine.WriteByte(byte(q))
			states.WriteByte('M')
		case StateI:
			target.WriteByte('.')
			center.WriteByte(' ')
			queryLine.WriteByte(byte(query.At(step.I - 1)))
			states.WriteByte('I')
		case StateD:
			target.WriteByte(byte(cons[step.J-1]))
			center.WriteByte(' ')
			queryLine.WriteByte('-')
			states.WriteByte('D')
		default:
			// Special states (S/N/B/E/C/J/T) contribute no aligned
			// columns to the three-line rendering.
		}
	}
	return Alignment{
		Target: target.String(),
		Center: center.String(),
		Query:  queryLine.String(),
		States: states.String(),
	}
}
