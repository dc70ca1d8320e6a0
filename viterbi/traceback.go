package viterbi

import (
	"fmt"
	"math"

	"github.com/twlab/cloudfb/hmm"
	"github.com/twlab/cloudfb/matrix"
	"github.com/twlab/cloudfb/seq"
)

// State names a traceback step's state, spanning both normal (M/I/D) and
// special (S/N/B/E/C/J/T) Plan7 states.
type State int

const (
	StateS State = iota
	StateN
	StateB
	StateM
	StateI
	StateD
	StateE
	StateC
	StateJ
	StateT
)

func (s State) String() string {
	switch s {
	case StateS:
		return "S"
	case StateN:
		return "N"
	case StateB:
		return "B"
	case StateM:
		return "M"
	case StateI:
		return "I"
	case StateD:
		return "D"
	case StateE:
		return "E"
	case StateC:
		return "C"
	case StateJ:
		return "J"
	default:
		return "T"
	}
}

// Step is one (state, i, j) record of a traceback path. For special
// states without a model-column coordinate, J is 0.
type Step struct {
	State State
	I, J  int
}

// Coord is a (row, col) coordinate into the DP matrix.
type Coord struct {
	I, J int
}

// Traceback is the S->T ordered path Trace reconstructs, plus the
// earliest/latest M-state coordinates that anchor cloud search.
type Traceback struct {
	Steps         []Step
	FirstM, LastM Coord
	HasMatch      bool
}

// Trace walks the Viterbi matrix mx backward from C(Q), reconstructing
// the optimal path per spec.md §4.2. mx must already have been filled by
// Run for the same profile/query. Ties among predecessors are broken by
// state priority B > M > I > D.
func Trace(profile *hmm.Profile, query seq.Query, mx *matrix.Dense) (*Traceback, error) {
	q, t := query.Len(), profile.Len()
	tb := &Traceback{}

	i, j := q, 0
	state := StateT
	tb.Steps = append(tb.Steps, Step{State: StateT, I: i})
	state = StateC

	for {
		tb.Steps = append(tb.Steps, Step{State: state, I: i, J: j})

		switch state {
		case StateC:
			cur := mx.Special(matrix.C, i)
			if i > 0 && approxEq(cur, mx.Special(matrix.C, i-1)+float64(profile.Special.C.Loop)) {
				i--
				state = StateC
				continue
			}
			if approxEq(cur, mx.Special(matrix.E, i)+float64(profile.Special.E.Move)) {
				state = StateE
				continue
			}
			return nil, fmt.Errorf("%w: at C(%d)", ErrInvalidTraceback, i)

		case StateE:
			cur := mx.Special(matrix.E, i)
			found := false
			for col := t; col >= 1; col-- {
				if approxEq(cur, mx.Get(matrix.MatchState, i, col)) {
					j = col
					state = StateM
					found = true
					break
				}
			}
			if !found && !profile.Mode.Local() && approxEq(cur, mx.Get(matrix.DeleteState, i, t)) {
				j = t
				state = StateD
				found = true
			}
			if !found {
				return nil, fmt.Errorf("%w: at E(%d)", ErrInvalidTraceback, i)
			}
			continue

		case StateM:
			if !tb.HasMatch {
				tb.HasMatch = true
				tb.LastM = Coord{I: i, J: j}
			}
			tb.FirstM = Coord{I: i, J: j}

			cur := mx.Get(matrix.MatchState, i, j)
			node := profile.Nodes[j-1]
			emit := float64(node.MatEmit.Lookup(query.At(i - 1)))
			rest := cur - emit

			bPrev := mx.Special(matrix.B, i-1)
			switch {
			case approxEq(rest, bPrev+float64(node.Entry)):
				i--
				state = StateB
			case approxEq(rest, mx.Get(matrix.MatchState, i-1, j-1)+float64(node.Trans.MM)):
				i, j = i-1, j-1
				state = StateM
			case approxEq(rest, mx.Get(matrix.InsertState, i-1, j-1)+float64(node.Trans.IM)):
				i, j = i-1, j-1
				state = StateI
			case approxEq(rest, mx.Get(matrix.DeleteState, i-1, j-1)+float64(node.Trans.DM)):
				i, j = i-1, j-1
				state = StateD
			default:
				return nil, fmt.Errorf("%w: at M(%d,%d)", ErrInvalidTraceback, i, j)
			}
			continue

		case StateI:
			cur := mx.Get(matrix.InsertState, i, j)
			node := profile.Nodes[j-1]
			emit := float64(node.InsEmit.Lookup(query.At(i - 1)))
			rest := cur - emit
			switch {
			case approxEq(rest, mx.Get(matrix.MatchState, i-1, j)+float64(node.Trans.MI)):
				i--
				state = StateM
			case approxEq(rest, mx.Get(matrix.InsertState, i-1, j)+float64(node.Trans.II)):
				i--
				state = StateI
			default:
				return nil, fmt.Errorf("%w: at I(%d,%d)", ErrInvalidTraceback, i, j)
			}
			continue

		case StateD:
			cur := mx.Get(matrix.DeleteState, i, j)
			node := profile.Nodes[j-1]
			switch {
			case approxEq(cur, mx.Get(matrix.MatchState, i, j-1)+float64(node.Trans.MD)):
				j--
				state = StateM
			case approxEq(cur, mx.Get(matrix.DeleteState, i, j-1)+float64(node.Trans.DD)):
				j--
				state = StateD
			default:
				return nil, fmt.Errorf("%w: at D(%d,%d)", ErrInvalidTraceback, i, j)
			}
			continue

		case StateB:
			cur := mx.Special(matrix.B, i)
			nScore := mx.Special(matrix.N, i) + float64(profile.Special.N.Move)
			jScore := mx.Special(matrix.J, i) + float64(profile.Special.J.Move)
			switch {
			case approxEq(cur, nScore):
				state = StateN
			case approxEq(cur, jScore):
				state = StateJ
			default:
				return nil, fmt.Errorf("%w: at B(%d)", ErrInvalidTraceback, i)
			}
			continue

		case StateJ:
			cur := mx.Special(matrix.J, i)
			if i > 0 && approxEq(cur, mx.Special(matrix.J, i-1)+float64(profile.Special.J.Loop)) {
				i--
				state = StateJ
				continue
			}
			if approxEq(cur, mx.Special(matrix.E, i)+float64(profile.Special.E.Loop)) {
				state = StateE
				continue
			}
			return nil, fmt.Errorf("%w: at J(%d)", ErrInvalidTraceback, i)

		case StateN:
			if i == 0 {
				state = StateS
				tb.Steps = append(tb.Steps, Step{State: StateS})
				reverseSteps(tb.Steps)
				return tb, nil
			}
			cur := mx.Special(matrix.N, i)
			if approxEq(cur, mx.Special(matrix.N, i-1)+float64(profile.Special.N.Loop)) {
				i--
				state = StateN
				continue
			}
			return nil, fmt.Errorf("%w: at N(%d)", ErrInvalidTraceback, i)

		default:
			return nil, fmt.Errorf("%w: unreachable state %v", ErrInvalidTraceback, state)
		}
	}
}

func approxEq(a, b float64) bool {
	if math.IsInf(a, -1) && math.IsInf(b, -1) {
		return true
	}
	return math.Abs(a-b) <= tolerance
}

func reverseSteps(steps []Step) {
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
}
