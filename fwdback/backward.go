package fwdback

import (
	"math"

	"github.com/twlab/cloudfb/edgebound"
	"github.com/twlab/cloudfb/hmm"
	"github.com/twlab/cloudfb/logsum"
	"github.com/twlab/cloudfb/matrix"
	"github.com/twlab/cloudfb/seq"
)

// Backward runs the bounded Plan7 Backward recurrence, the mirror image
// of Forward: it fills rows i = Q..0, reading each state's successors (the
// next row's M/I, or the same row's more-model-ward D) instead of
// predecessors. Every silent same-row join Forward resolves top-down
// (M/D -> E -> {C,J} -> B) is resolved bottom-up here (B <- {C,J} <- E <-
// M/D), per spec.md §4.5's "symmetric, iterating i = Q..0".
func Backward(profile *hmm.Profile, query seq.Query, edges *edgebound.Set) (*matrix.Sparse, float64, error) {
	q, t := query.Len(), profile.Len()
	mx := matrix.Shape(edges, q, t)
	negInf := math.Inf(-1)

	for i := q; i >= 0; i-- {
		// C(Q) still owes the C->T move Forward adds to its overall score.
		cScore := float64(profile.Special.C.Move)
		if i < q {
			cScore = mx.Special(matrix.C, i+1) + float64(profile.Special.C.Loop)
		}
		mx.SetSpecial(matrix.C, i, cScore)

		jLoop := negInf
		if i < q {
			jLoop = mx.Special(matrix.J, i+1) + float64(profile.Special.J.Loop)
		}

		bScore := negInf
		if i < q {
			r := query.At(i) // residue i+1, consumed entering row i+1 from B(i)
			for j := 1; j <= t; j++ {
				node := profile.Nodes[j-1]
				matEmit := float64(node.MatEmit.Lookup(r))
				succM := mx.Get(matrix.MatchState, i+1, j)
				bScore = logsum.Logsum(bScore, float64(node.Entry)+matEmit+succM)
			}
		}
		mx.SetSpecial(matrix.B, i, bScore)

		nLoop := negInf
		if i < q {
			nLoop = mx.Special(matrix.N, i+1) + float64(profile.Special.N.Loop)
		}
		nScore := logsum.Logsum(nLoop, bScore+float64(profile.Special.N.Move))
		mx.SetSpecial(matrix.N, i, nScore)

		jScore := logsum.Logsum(jLoop, bScore+float64(profile.Special.J.Move))
		mx.SetSpecial(matrix.J, i, jScore)

		eScore := logsum.Logsum(
			cScore+float64(profile.Special.E.Move),
			jScore+float64(profile.Special.E.Loop),
		)
		mx.SetSpecial(matrix.E, i, eScore)

		if !mx.HasRow(i) {
			continue
		}
		lb, rb := mx.Bounds(i)
		lo := lb
		if lo < 1 {
			lo = 1
		}
		hi := rb
		if hi > t+1 {
			hi = t + 1
		}
		for j := hi - 1; j >= lo; j-- {
			node := profile.Nodes[j-1]

			dSameRow := negInf
			if j < t {
				dSameRow = mx.Get(matrix.DeleteState, i, j+1)
			}
			succM, succI := negInf, negInf
			if i < q {
				r := query.At(i)
				if j < t {
					nextNode := profile.Nodes[j]
					succM = float64(nextNode.MatEmit.Lookup(r)) + mx.Get(matrix.MatchState, i+1, j+1)
				}
				succI = float64(node.InsEmit.Lookup(r)) + mx.Get(matrix.InsertState, i+1, j)
			}

			dScore := logsum.Logsum(
				dSameRow+float64(node.Trans.DD),
				succM+float64(node.Trans.DM),
			)
			if j == t && !profile.Mode.Local() {
				dScore = logsum.Logsum(dScore, eScore)
			}
			mx.Set(matrix.DeleteState, i, j, dScore)

			mScore := logsum.LogsumN(
				eScore,
				succM+float64(node.Trans.MM),
				succI+float64(node.Trans.MI),
				dSameRow+float64(node.Trans.MD),
			)
			mx.Set(matrix.MatchState, i, j, mScore)

			iScore := logsum.Logsum(
				succM+float64(node.Trans.IM),
				succI+float64(node.Trans.II),
			)
			mx.Set(matrix.InsertState, i, j, iScore)
		}
	}

	overall := mx.Special(matrix.N, 0)
	return mx, overall, nil
}
