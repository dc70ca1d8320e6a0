package score

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeBitsConversion(t *testing.T) {
	r := Compute(100.0, 10.0, 0.0, 20.0, 0.5, 1000.0)
	require.InDelta(t, 90.0/math.Ln2, r.PreScore, 1e-9)
	require.InDelta(t, r.PreScore, r.SeqScore, 1e-9) // seqBias is 0 here
}

func TestComputeSeqBiasLowersSeqScore(t *testing.T) {
	r := Compute(100.0, 10.0, 5.0, 20.0, 0.5, 1000.0)
	require.Less(t, r.SeqScore, r.PreScore)
}

func TestComputeEValueScalesWithDBSize(t *testing.T) {
	small := Compute(200.0, 10.0, -1.0, 5.0, 0.8, 1.0)
	big := Compute(200.0, 10.0, -1.0, 5.0, 0.8, 1_000_000.0)
	require.InDelta(t, small.PValue*1_000_000.0, big.EValue, 1e-9)
}

func TestExpLogSurvBelowTauIsCertain(t *testing.T) {
	require.Equal(t, 0.0, expLogSurv(1.0, 5.0, 0.5))
}
