package hmm

import (
	"errors"
	"fmt"
	"math"
)

// expectedHits is the number of non-homologous segments (N/C/J loop
// stretches) the multihit special-state graph is calibrated to expect per
// query, mirroring HMMER's p7_ReconfigLength default of 3.
const expectedHits = 3.0

// Configure rewrites the N/J/C LOOP/MOVE transitions and the E special
// state and per-node entry scores for a query of length L, per spec.md
// §3's "length-configured against each query length" paragraph. It
// mutates p in place; callers must first Clone a shared Profile so this
// never touches another worker's copy (spec.md §5).
func (p *Profile) Configure(L int) error {
	if L <= 0 {
		return fmt.Errorf("%w: query length %d must be positive", ErrInvalidProfile, L)
	}
	nhits := 1.0
	if p.Mode.Multihit() {
		nhits = expectedHits
	}
	fl := float64(L)
	move := Score(math.Log(nhits / (fl + nhits)))
	loop := Score(math.Log(1 - nhits/(fl+nhits)))

	p.Special.N = SpecialTrans{Loop: loop, Move: move}
	p.Special.C = SpecialTrans{Loop: loop, Move: move}
	if p.Mode.Multihit() {
		p.Special.J = SpecialTrans{Loop: loop, Move: move}
		p.Special.E = SpecialTrans{Loop: Score(math.Log(0.5)), Move: Score(math.Log(0.5))}
	} else {
		p.Special.J = SpecialTrans{Loop: NegInf, Move: NegInf}
		p.Special.E = SpecialTrans{Loop: NegInf, Move: 0}
	}
	p.Special.B = 0

	p.configureEntry()
	return nil
}

// configureEntry sets each node's B->M entry score according to Mode:
// uniform over all T nodes in local mode (matches HMMER's local
// fragment-entry distribution), concentrated entirely at node 0 in glocal
// mode (original_source/mmore/src/objects/hmm_profile.h, SPEC_FULL.md §3).
func (p *Profile) configureEntry() {
	t := len(p.Nodes)
	if t == 0 {
		return
	}
	if p.Mode.Local() {
		entry := Score(-math.Log(float64(t)))
		for i := range p.Nodes {
			p.Nodes[i].Entry = entry
		}
		return
	}
	p.Nodes[0].Entry = 0
	for i := 1; i < t; i++ {
		p.Nodes[i].Entry = NegInf
	}
}

// Validate checks the structural invariants spec.md §7 assigns to
// ErrInvalidProfile: a non-empty node list, a 20-residue alphabet, and
// log-odds transition scores that are neither NaN nor positive (-Inf, an
// impossible transition, is allowed). Emission scores are not checked.
func (p *Profile) Validate() error {
	if len(p.Nodes) == 0 {
		return fmt.Errorf("%w: zero-length profile", ErrInvalidProfile)
	}
	if p.Alphabet.Len() != 20 {
		return fmt.Errorf("%w: alphabet has %d residues, want 20", ErrInvalidProfile, p.Alphabet.Len())
	}
	for i, n := range p.Nodes {
		for _, s := range []Score{n.Trans.MM, n.Trans.MI, n.Trans.MD, n.Trans.IM, n.Trans.II, n.Trans.DM, n.Trans.DD} {
			if math.IsNaN(float64(s)) || s > 0 {
				return fmt.Errorf("%w: node %d has a NaN or positive transition score", ErrInvalidProfile, i)
			}
		}
	}
	return nil
}

// ErrInvalidProfile is returned by Validate when the profile has no nodes
// (T=0), an alphabet length other than 20, or a NaN or positive transition
// score, and by Configure for a non-positive query length. Emission scores
// are not checked.
var ErrInvalidProfile = errors.New("hmm: invalid profile")
