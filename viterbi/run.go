package viterbi

import (
	"math"

	"github.com/twlab/cloudfb/hmm"
	"github.com/twlab/cloudfb/matrix"
	"github.com/twlab/cloudfb/seq"
)

// Run fills mx with the Plan7 Viterbi recurrence for profile against the
// active range of query, per spec.md §4.2, and returns the final score
// C(Q) + C_MOVE. profile must already be length-configured (hmm.Profile.Configure)
// for query's length.
func Run(profile *hmm.Profile, query seq.Query, mx *matrix.Dense) float64 {
	q, t := query.Len(), profile.Len()
	mx.Reuse(q, t)

	negInf := math.Inf(-1)
	mx.SetSpecial(matrix.N, 0, 0)
	mx.SetSpecial(matrix.J, 0, negInf)
	mx.SetSpecial(matrix.E, 0, negInf)
	mx.SetSpecial(matrix.C, 0, negInf)
	mx.SetSpecial(matrix.B, 0, max(
		mx.Special(matrix.N, 0)+float64(profile.Special.N.Move),
		negInf,
	))

	for i := 1; i <= q; i++ {
		r := query.At(i - 1)

		for j := 1; j <= t; j++ {
			node := profile.Nodes[j-1]
			matEmit := float64(node.MatEmit.Lookup(r))
			insEmit := float64(node.InsEmit.Lookup(r))

			diag := mx.Get(matrix.MatchState, i-1, j-1)
			iDiag := mx.Get(matrix.InsertState, i-1, j-1)
			dDiag := mx.Get(matrix.DeleteState, i-1, j-1)
			bPrev := mx.Special(matrix.B, i-1)

			mScore := max4(
				diag+float64(node.Trans.MM),
				iDiag+float64(node.Trans.IM),
				dDiag+float64(node.Trans.DM),
				bPrev+float64(node.Entry),
			) + matEmit
			mx.Set(matrix.MatchState, i, j, mScore)

			if j < t {
				mPrevCol := mx.Get(matrix.MatchState, i-1, j)
				iPrevCol := mx.Get(matrix.InsertState, i-1, j)
				iScore := max(
					mPrevCol+float64(node.Trans.MI),
					iPrevCol+float64(node.Trans.II),
				) + insEmit
				mx.Set(matrix.InsertState, i, j, iScore)
			} else {
				mx.Set(matrix.InsertState, i, j, negInf)
			}

			mLeft := mx.Get(matrix.MatchState, i, j-1)
			dLeft := mx.Get(matrix.DeleteState, i, j-1)
			dScore := max(
				mLeft+float64(node.Trans.MD),
				dLeft+float64(node.Trans.DD),
			)
			mx.Set(matrix.DeleteState, i, j, dScore)
		}

		eScore := negInf
		for j := 1; j <= t; j++ {
			eScore = max(eScore, mx.Get(matrix.MatchState, i, j))
		}
		if !profile.Mode.Local() {
			eScore = max(eScore, mx.Get(matrix.DeleteState, i, t))
		}
		mx.SetSpecial(matrix.E, i, eScore)

		nScore := mx.Special(matrix.N, i-1) + float64(profile.Special.N.Loop)
		mx.SetSpecial(matrix.N, i, nScore)

		jScore := max(
			mx.Special(matrix.J, i-1)+float64(profile.Special.J.Loop),
			eScore+float64(profile.Special.E.Loop),
		)
		mx.SetSpecial(matrix.J, i, jScore)

		bScore := max(
			nScore+float64(profile.Special.N.Move),
			jScore+float64(profile.Special.J.Move),
		)
		mx.SetSpecial(matrix.B, i, bScore)

		cScore := max(
			mx.Special(matrix.C, i-1)+float64(profile.Special.C.Loop),
			eScore+float64(profile.Special.E.Move),
		)
		mx.SetSpecial(matrix.C, i, cScore)
	}

	return mx.Special(matrix.C, q) + float64(profile.Special.C.Move)
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func max4(a, b, c, d float64) float64 {
	return max(max(a, b), max(c, d))
}
