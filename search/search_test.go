package search

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twlab/cloudfb/hmm"
	"github.com/twlab/cloudfb/seq"
)

func toyProfile(t *testing.T, nodes int) *hmm.Profile {
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
	p.Tau = 0
	p.Lambda = 0.7
	return p
}

func defaultConfig() Config {
	return Config{
		Alpha:      20,
		Beta:       5,
		Gamma:      3,
		Mode:       hmm.MultiLocal,
		RunBias:    true,
		RunDomains: true,
		Rt1:        0.2,
		Rt2:        0.1,
		Rt3:        -1000,
		EvalCutoff: 1e6,
		DBSize:     1,
	}
}

func TestSearchRunsFullPipelineOnASmallPair(t *testing.T) {
	p := toyProfile(t, 5)
	s := seq.NewSequenceString("q", "AAAAA")
	q, err := seq.NewQuery(s, true)
	require.NoError(t, err)

	result, err := Search(p, q, defaultConfig(), NewScratch())
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, result.Traceback)
	require.Greater(t, result.TotalCells, 0)
	require.GreaterOrEqual(t, result.CloudCells, 0)
}

func TestSearchRunFullBypassesCloudSearch(t *testing.T) {
	p := toyProfile(t, 4)
	s := seq.NewSequenceString("q", "AAAA")
	q, err := seq.NewQuery(s, true)
	require.NoError(t, err)

	cfg := defaultConfig()
	cfg.RunFull = true
	result, err := Search(p, q, cfg, NewScratch())
	require.NoError(t, err)
	require.Equal(t, result.TotalCells, result.CloudCells)
}

func TestSearchRejectsOversizeMatrix(t *testing.T) {
	p := toyProfile(t, 10)
	s := seq.NewSequenceString("q", "AAAAAAAAAA")
	q, err := seq.NewQuery(s, true)
	require.NoError(t, err)

	cfg := defaultConfig()
	cfg.MaxCells = 4
	_, err = Search(p, q, cfg, NewScratch())
	require.ErrorIs(t, err, ErrMatrixOverflow)
}

func TestSearchRejectsInvalidConfig(t *testing.T) {
	p := toyProfile(t, 3)
	s := seq.NewSequenceString("q", "AAA")
	q, err := seq.NewQuery(s, true)
	require.NoError(t, err)

	cfg := defaultConfig()
	cfg.Alpha = -1
	_, err = Search(p, q, cfg, NewScratch())
	require.Error(t, err)
}

func TestSearchReusesScratchAcrossCalls(t *testing.T) {
	p := toyProfile(t, 4)
	scratch := NewScratch()
	cfg := defaultConfig()

	for _, seqStr := range []string{"AAAA", "AAAAAA", "AA"} {
		s := seq.NewSequenceString("q", seqStr)
		q, err := seq.NewQuery(s, true)
		require.NoError(t, err)
		_, err = Search(p, q, cfg, scratch)
		require.NoError(t, err)
	}
}
