package null2

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twlab/cloudfb/edgebound"
	"github.com/twlab/cloudfb/fwdback"
	"github.com/twlab/cloudfb/hmm"
	"github.com/twlab/cloudfb/seq"
)

func tinyProfile(t *testing.T, nodes int) *hmm.Profile {
	t.Helper()
	ns := make([]hmm.Node, nodes)
	for i := range ns {
		ns[i].MatEmit = hmm.NewEProbs(seq.AlphaAmino20)
		ns[i].InsEmit = hmm.NewEProbs(seq.AlphaAmino20)
		for _, r := range seq.AlphaAmino20 {
			ns[i].MatEmit.Set(r, hmm.Score(-1))
			ns[i].InsEmit.Set(r, hmm.Score(-2))
		}
		ns[i].MatEmit.Set('A', 2)
		ns[i].Trans = hmm.TProbs{
			MM: -0.1, MI: -2, MD: -2,
			IM: -0.1, II: -2,
			DM: -0.1, DD: -2,
		}
	}
	p := hmm.New(ns, seq.AlphaAmino20, hmm.NewEProbs(seq.AlphaAmino20), hmm.MultiLocal)
	require.NoError(t, p.Configure(100))
	return p
}

func TestCorrectionProducesWildcardAndGapEntries(t *testing.T) {
	p := tinyProfile(t, 2)
	s := seq.NewSequenceString("q", "AA")
	q, err := seq.NewQuery(s, true)
	require.NoError(t, err)

	edges := edgebound.New(edgebound.Row)
	for i := 0; i <= q.Len(); i++ {
		edges.Add(i, 0, p.Len()+1)
	}
	fwd, fwdTotal, err := fwdback.Forward(p, q, edges)
	require.NoError(t, err)
	bck, _, err := fwdback.Backward(p, q, edges)
	require.NoError(t, err)
	post, err := fwdback.Posterior(fwd, bck, fwdTotal, fwdTotal, 1.0)
	require.NoError(t, err)

	table, seqBias, err := Correction(post, p, q, 1, p.Len()+1, 0, q.Len())
	require.NoError(t, err)
	require.Contains(t, table, seq.WildcardSymbol)
	require.Equal(t, 1.0, table[seq.GapSymbol])
	require.NotNil(t, seqBias)
}

func TestCorrectionRejectsEmptyRange(t *testing.T) {
	p := tinyProfile(t, 1)
	s := seq.NewSequenceString("q", "A")
	q, err := seq.NewQuery(s, true)
	require.NoError(t, err)

	edges := edgebound.New(edgebound.Row)
	edges.Add(0, 0, p.Len()+1)
	fwd, fwdTotal, err := fwdback.Forward(p, q, edges)
	require.NoError(t, err)
	bck, _, err := fwdback.Backward(p, q, edges)
	require.NoError(t, err)
	post, err := fwdback.Posterior(fwd, bck, fwdTotal, fwdTotal, 1.0)
	require.NoError(t, err)

	_, _, err = Correction(post, p, q, 1, 1, 0, q.Len())
	require.ErrorIs(t, err, ErrEmptyRange)
}
