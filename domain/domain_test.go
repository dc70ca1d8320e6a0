package domain

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

func TestFindRunsOnUniformPosteriorCoversWholeQuery(t *testing.T) {
	p := tinyProfile(t, 3)
	s := seq.NewSequenceString("q", "AAA")
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

	runs := FindRuns(post, -1.0, -1.0) // thresholds below 0 admit every row
	require.NotEmpty(t, runs)
	require.Equal(t, []Run{{Beg: 0, End: q.Len() + 1}}, runs)
}

func TestFindRunsEmptyWhenThresholdUnreachable(t *testing.T) {
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

	runs := FindRuns(post, 2.0, 2.0) // unreachable: mass is a probability <= 1
	require.Empty(t, runs)
}

func TestMergeOverlappingCombinesTouchingRuns(t *testing.T) {
	merged := mergeOverlapping([]Run{{Beg: 0, End: 3}, {Beg: 3, End: 5}, {Beg: 10, End: 12}})
	require.Equal(t, []Run{{Beg: 0, End: 5}, {Beg: 10, End: 12}}, merged)
}
