package hmm

import "github.com/twlab/cloudfb/seq"

// Mode selects the profile's entry distribution (local vs glocal) and
// whether the E state can re-enter the model via J (multihit vs unihit),
// per spec.md §3.
type Mode int

const (
	MultiLocal Mode = iota
	MultiGlocal
	UniLocal
	UniGlocal
)

// Local reports whether m uses the local entry/exit distribution (entry
// anywhere in the model, no forced D_T acceptance at E).
func (m Mode) Local() bool {
	return m == MultiLocal || m == UniLocal
}

// Multihit reports whether m allows E to loop back through J for
// additional domains, rather than always moving directly to C.
func (m Mode) Multihit() bool {
	return m == MultiLocal || m == MultiGlocal
}

// TProbs holds the seven Plan7 node-level transition scores. I->D and
// D->I are intentionally absent (Plan7 omits them).
type TProbs struct {
	MM, MI, MD Score
	IM, II     Score
	DM, DD     Score
}

// Node is a single match/insert/delete column of the profile.
type Node struct {
	Residue seq.Residue // consensus residue at this column, if known
	MatEmit EProbs
	InsEmit EProbs
	Trans   TProbs

	// Entry is the B->M transition score into this node, set by
	// Configure according to the profile's Mode: uniform across all
	// nodes in local mode, concentrated at node 0 in glocal mode.
	Entry Score
}

// SpecialTrans is one of the four special-state transition pairs named in
// spec.md §3: a LOOP transition (stay / re-emit) and a MOVE transition
// (advance to the next stage of the special-state graph).
type SpecialTrans struct {
	Loop, Move Score
}

// Special holds the E/N/J/C special-state transition scores and the
// overall B score. N/J/C's Loop/Move pair is rewritten per query length by
// Configure; E's pair is fixed by Mode.
type Special struct {
	N, J, C, E SpecialTrans
	B          Score
}

// Profile is an ordered sequence of Nodes plus the background/special
// state graph, generalized from TuftsBCB-seq's HMM type (see DESIGN.md).
type Profile struct {
	Nodes    []Node
	Alphabet seq.Alphabet
	Null     EProbs

	Mode Mode

	// Special is only valid after Configure has been called for a given
	// query length; a freshly-built Profile carries zero values here.
	Special Special

	// Tau and Lambda are the calibrated exponential-tail parameters used
	// by the score package to map a bit-score to a P-value (spec.md
	// §4.6).
	Tau, Lambda float64
}

// Len returns the number of match-node columns (T in spec.md's notation).
func (p *Profile) Len() int {
	return len(p.Nodes)
}

// New creates a Profile from a list of nodes, an alphabet and background
// null emissions (which may be the zero EProbs).
func New(nodes []Node, alphabet seq.Alphabet, null EProbs, mode Mode) *Profile {
	return &Profile{Nodes: nodes, Alphabet: alphabet, Null: null, Mode: mode}
}

// Clone returns a deep-enough copy of p suitable for per-worker
// length-configuration: the Nodes slice is copied so Configure's per-node
// Entry writes land on the clone (each node's emission tables are still
// shared, read-only), and Special is a fresh value, so Configure on the
// clone never mutates p
// (spec.md §5: "profiles are cloned or snapshotted into the worker before
// configuration").
func (p *Profile) Clone() *Profile {
	clone := *p
	clone.Nodes = append([]Node(nil), p.Nodes...)
	return &clone
}
