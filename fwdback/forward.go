package fwdback

import (
	"math"

	"github.com/twlab/cloudfb/edgebound"
	"github.com/twlab/cloudfb/hmm"
	"github.com/twlab/cloudfb/logsum"
	"github.com/twlab/cloudfb/matrix"
	"github.com/twlab/cloudfb/seq"
)

// Forward runs the bounded Plan7 Forward recurrence over the matrix.Sparse
// shaped from edges (a ROW-mode edgebound.Set), returning the filled
// sparse matrix and the overall score C(Q) + C_Move. On each row it fills
// every backed column in 1..T, which includes the halo cell on either side
// of the row's intervals and any gap between them: those cells are
// computed like the named cells rather than held at -Inf. profile must already be
// length-configured for query's length, per spec.md §4.5.
func Forward(profile *hmm.Profile, query seq.Query, edges *edgebound.Set) (*matrix.Sparse, float64, error) {
	q, t := query.Len(), profile.Len()
	mx := matrix.Shape(edges, q, t)
	negInf := math.Inf(-1)

	mx.SetSpecial(matrix.N, 0, 0)
	mx.SetSpecial(matrix.J, 0, negInf)
	mx.SetSpecial(matrix.E, 0, negInf)
	mx.SetSpecial(matrix.C, 0, negInf)
	mx.SetSpecial(matrix.B, 0, mx.Special(matrix.N, 0)+float64(profile.Special.N.Move))

	for i := 1; i <= q; i++ {
		r := query.At(i - 1)

		if mx.HasRow(i) {
			lb, rb := mx.Bounds(i)
			lo := lb
			if lo < 1 {
				lo = 1
			}
			hi := rb
			if hi > t+1 {
				hi = t + 1
			}
			for j := lo; j < hi; j++ {
				node := profile.Nodes[j-1]
				matEmit := float64(node.MatEmit.Lookup(r))
				insEmit := float64(node.InsEmit.Lookup(r))

				diag := mx.Get(matrix.MatchState, i-1, j-1)
				iDiag := mx.Get(matrix.InsertState, i-1, j-1)
				dDiag := mx.Get(matrix.DeleteState, i-1, j-1)
				bPrev := mx.Special(matrix.B, i-1)

				mScore := logsum.LogsumN(
					diag+float64(node.Trans.MM),
					iDiag+float64(node.Trans.IM),
					dDiag+float64(node.Trans.DM),
					bPrev+float64(node.Entry),
				) + matEmit
				mx.Set(matrix.MatchState, i, j, mScore)

				if j < t {
					mPrevCol := mx.Get(matrix.MatchState, i-1, j)
					iPrevCol := mx.Get(matrix.InsertState, i-1, j)
					iScore := logsum.Logsum(
						mPrevCol+float64(node.Trans.MI),
						iPrevCol+float64(node.Trans.II),
					) + insEmit
					mx.Set(matrix.InsertState, i, j, iScore)
				} else {
					mx.Set(matrix.InsertState, i, j, negInf)
				}

				mLeft := mx.Get(matrix.MatchState, i, j-1)
				dLeft := mx.Get(matrix.DeleteState, i, j-1)
				dScore := logsum.Logsum(
					mLeft+float64(node.Trans.MD),
					dLeft+float64(node.Trans.DD),
				)
				mx.Set(matrix.DeleteState, i, j, dScore)
			}
		}

		eScore := negInf
		if mx.HasRow(i) {
			lb, rb := mx.Bounds(i)
			lo, hi := lb, rb
			if lo < 1 {
				lo = 1
			}
			if hi > t+1 {
				hi = t + 1
			}
			for j := lo; j < hi; j++ {
				eScore = logsum.Logsum(eScore, mx.Get(matrix.MatchState, i, j))
			}
			if !profile.Mode.Local() {
				eScore = logsum.Logsum(eScore, mx.Get(matrix.DeleteState, i, t))
			}
		}
		mx.SetSpecial(matrix.E, i, eScore)

		nScore := mx.Special(matrix.N, i-1) + float64(profile.Special.N.Loop)
		mx.SetSpecial(matrix.N, i, nScore)

		jScore := logsum.Logsum(
			mx.Special(matrix.J, i-1)+float64(profile.Special.J.Loop),
			eScore+float64(profile.Special.E.Loop),
		)
		mx.SetSpecial(matrix.J, i, jScore)

		bScore := logsum.Logsum(
			nScore+float64(profile.Special.N.Move),
			jScore+float64(profile.Special.J.Move),
		)
		mx.SetSpecial(matrix.B, i, bScore)

		cScore := logsum.Logsum(
			mx.Special(matrix.C, i-1)+float64(profile.Special.C.Loop),
			eScore+float64(profile.Special.E.Move),
		)
		mx.SetSpecial(matrix.C, i, cScore)
	}

	overall := mx.Special(matrix.C, q) + float64(profile.Special.C.Move)
	return mx, overall, nil
}
