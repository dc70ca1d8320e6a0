package hmm

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twlab/cloudfb/seq"
)

func newTestProfile(t int, mode Mode) *Profile {
	nodes := make([]Node, t)
	for i := range nodes {
		nodes[i].MatEmit = NewEProbs(seq.AlphaAmino20)
		nodes[i].InsEmit = NewEProbs(seq.AlphaAmino20)
	}
	return New(nodes, seq.AlphaAmino20, NewEProbs(seq.AlphaAmino20), mode)
}

func TestValidateRejectsEmptyProfile(t *testing.T) {
	p := New(nil, seq.AlphaAmino20, EProbs{}, MultiLocal)
	require.ErrorIs(t, p.Validate(), ErrInvalidProfile)
}

func TestValidateRejectsWrongAlphabetSize(t *testing.T) {
	p := newTestProfile(5, MultiLocal)
	p.Alphabet = seq.NewAlphabet('A', 'C', 'D')
	require.ErrorIs(t, p.Validate(), ErrInvalidProfile)
}

func TestConfigureLocalUniformEntry(t *testing.T) {
	p := newTestProfile(10, MultiLocal)
	require.NoError(t, p.Configure(200))
	for _, n := range p.Nodes {
		require.False(t, n.Entry.IsNegInf())
	}
	require.False(t, p.Special.N.Loop.IsNegInf())
	require.False(t, p.Special.E.Loop.IsNegInf(), "multihit mode keeps E->J reachable")
}

func TestConfigureGlocalSingleEntry(t *testing.T) {
	p := newTestProfile(10, UniGlocal)
	require.NoError(t, p.Configure(200))
	require.Equal(t, Score(0), p.Nodes[0].Entry)
	for _, n := range p.Nodes[1:] {
		require.True(t, n.Entry.IsNegInf())
	}
	require.True(t, p.Special.E.Loop.IsNegInf(), "unihit mode never loops back through J")
}

func TestConfigureRejectsNonPositiveLength(t *testing.T) {
	p := newTestProfile(3, MultiLocal)
	require.ErrorIs(t, p.Configure(0), ErrInvalidProfile)
}
