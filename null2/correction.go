package null2

import (
	"fmt"
	"math"

	"github.com/twlab/cloudfb/hmm"
	"github.com/twlab/cloudfb/logsum"
	"github.com/twlab/cloudfb/matrix"
	"github.com/twlab/cloudfb/seq"
	"gonum.org/v1/gonum/floats"
)

// Table is a per-residue correction factor in linear (not log) space,
// covering the 20 standard amino acids plus the wildcard and non-residue
// symbols of seq.AlphaAmino20's alphabet.
type Table map[seq.Residue]float64

// Correction builds the null2 correction table for profile over model
// columns [tBeg, tEnd) and returns it alongside seq_bias, the sum of
// log(null2[residue]) over query's active range [qBeg, qEnd), per
// spec.md §4.6.
func Correction(post *matrix.Sparse, profile *hmm.Profile, query seq.Query, tBeg, tEnd, qBeg, qEnd int) (Table, float64, error) {
	if tEnd <= tBeg || qEnd <= qBeg {
		return nil, 0, fmt.Errorf("%w: target [%d,%d) query [%d,%d)", ErrEmptyRange, tBeg, tEnd, qBeg, qEnd)
	}

	q := post.Q()
	logQ := math.Log(float64(q))

	width := tEnd - tBeg
	stM := make([]float64, width)
	stI := make([]float64, width)
	modelLo, modelHi := tBeg, tEnd
	if modelLo < 1 {
		modelLo = 1
	}
	if modelHi > profile.Len()+1 {
		modelHi = profile.Len() + 1
	}
	for i := 0; i <= q; i++ {
		if !post.HasRow(i) {
			continue
		}
		lb, rb := post.Bounds(i)
		lo, hi := modelLo, modelHi
		if lo < lb {
			lo = lb
		}
		if hi > rb {
			hi = rb
		}
		for t := lo; t < hi; t++ {
			stM[t-tBeg] += post.Get(matrix.MatchState, i, t)
			stI[t-tBeg] += post.Get(matrix.InsertState, i, t)
		}
	}

	spN, spJ, spC := 0.0, 0.0, 0.0
	for i := 0; i <= q; i++ {
		spN += post.Special(matrix.N, i)
		spJ += post.Special(matrix.J, i)
		spC += post.Special(matrix.C, i)
	}
	xFactor := logsum.LogsumN(logFreq(spN, logQ), logFreq(spC, logQ), logFreq(spJ, logQ))

	table := make(Table, len(seq.AlphaAmino20)+4)
	sum := 0.0
	for _, r := range seq.AlphaAmino20 {
		acc := math.Inf(-1)
		for t := tBeg; t < tEnd; t++ {
			node := profile.Nodes[t-1]
			mTerm := logFreq(stM[t-tBeg], logQ) + float64(node.MatEmit.Lookup(r))
			iTerm := logFreq(stI[t-tBeg], logQ) + float64(node.InsEmit.Lookup(r))
			acc = logsum.Logsum(acc, logsum.Logsum(mTerm, iTerm))
		}
		acc = logsum.Logsum(acc, xFactor)
		table[r] = math.Exp(acc)
		sum += table[r]
	}
	table[seq.WildcardSymbol] = sum / float64(len(seq.AlphaAmino20))
	table[seq.GapSymbol] = 1.0
	table[seq.MissingSymbol] = 1.0
	table[seq.NonResidueSymbol] = 1.0

	logs := make([]float64, 0, qEnd-qBeg)
	for i := qBeg; i < qEnd; i++ {
		v, ok := table[query.At(i)]
		if !ok {
			v = 1.0
		}
		logs = append(logs, math.Log(v))
	}
	seqBias := floats.Sum(logs)

	return table, seqBias, nil
}

// logFreq converts a summed posterior mass to an average-per-query-
// position log frequency, per spec.md §4.6 step 2.
func logFreq(mass, logQ float64) float64 {
	if mass <= 0 {
		return math.Inf(-1)
	}
	return math.Log(mass) - logQ
}
