package matrix

// NormalState indexes the three emitting/silent normal states of a Plan7
// DP cell.
type NormalState int

const (
	MatchState NormalState = iota
	InsertState
	DeleteState
	numNormalStates
)

// SpecialState indexes the five Plan7 special states that glue segments
// of the model together, per spec.md §3.
type SpecialState int

const (
	E SpecialState = iota
	N
	J
	B
	C
	numSpecialStates
)
