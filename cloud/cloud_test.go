package cloud

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twlab/cloudfb/hmm"
	"github.com/twlab/cloudfb/matrix"
	"github.com/twlab/cloudfb/seq"
	"github.com/twlab/cloudfb/viterbi"
)

func smallProfile(t *testing.T) *hmm.Profile {
	t.Helper()
	ns := make([]hmm.Node, 4)
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

func TestSearchForwardAlphaInfinityCoversFullAntidiagonal(t *testing.T) {
	p := smallProfile(t)
	s := seq.NewSequenceString("q", "AAAA")
	q, err := seq.NewQuery(s, true)
	require.NoError(t, err)

	seed := viterbi.Coord{I: 1, J: 1}
	params := Params{Alpha: math.Inf(1), Beta: 0, Gamma: 0}
	mx := matrix.NewStriped(q.Len(), p.Len())
	edges, stats, err := SearchForward(p, q, seed, params, mx)
	require.NoError(t, err)
	require.Greater(t, stats.Diagonals, 0)
	require.NotEmpty(t, edges.Bands)
}

func TestSearchForwardGammaLargerThanMatrixNeverPrunes(t *testing.T) {
	p := smallProfile(t)
	s := seq.NewSequenceString("q", "AAAA")
	q, err := seq.NewQuery(s, true)
	require.NoError(t, err)

	seed := viterbi.Coord{I: 1, J: 1}
	params := Params{Alpha: 1.0, Beta: 1, Gamma: q.Len() + p.Len()}
	mx := matrix.NewStriped(q.Len(), p.Len())
	edges, stats, err := SearchForward(p, q, seed, params, mx)
	require.NoError(t, err)
	require.Equal(t, stats.Diagonals, len(edges.Bands))
	require.Equal(t, 0.0, stats.MaxOutOfRange)
}

func TestSearchForwardRejectsInvalidParams(t *testing.T) {
	p := smallProfile(t)
	s := seq.NewSequenceString("q", "AA")
	q, err := seq.NewQuery(s, true)
	require.NoError(t, err)

	mx := matrix.NewStriped(q.Len(), p.Len())
	_, _, err = SearchForward(p, q, viterbi.Coord{I: 1, J: 1}, Params{Alpha: -1}, mx)
	require.ErrorIs(t, err, ErrBadParams)
}

func TestSearchBackwardWalksTowardOrigin(t *testing.T) {
	p := smallProfile(t)
	s := seq.NewSequenceString("q", "AAAA")
	q, err := seq.NewQuery(s, true)
	require.NoError(t, err)

	seed := viterbi.Coord{I: q.Len(), J: p.Len()}
	params := Params{Alpha: math.Inf(1), Beta: 0, Gamma: 0}
	mx := matrix.NewStriped(q.Len(), p.Len())
	edges, stats, err := SearchBackward(p, q, seed, params, mx)
	require.NoError(t, err)
	require.Greater(t, stats.Diagonals, 0)
	for _, band := range edges.Bands {
		require.LessOrEqual(t, band.Line, seed.I+seed.J)
	}
}

func TestBandPruneTerminatesWhenNothingSurvivesLimit(t *testing.T) {
	p := smallProfile(t)
	s := seq.NewSequenceString("q", "AAAA")
	q, err := seq.NewQuery(s, true)
	require.NoError(t, err)

	seed := viterbi.Coord{I: 1, J: 1}
	params := Params{Alpha: 0, Beta: 0, Gamma: 0}
	mx := matrix.NewStriped(q.Len(), p.Len())
	edges, stats, err := SearchForward(p, q, seed, params, mx)
	require.NoError(t, err)
	require.LessOrEqual(t, stats.Diagonals, q.Len()+p.Len())
	require.NotNil(t, edges)
}
