package fwdback

import (
	"fmt"
	"math"

	"github.com/twlab/cloudfb/edgebound"
	"github.com/twlab/cloudfb/matrix"
	"gonum.org/v1/gonum/floats"
)

// Posterior decodes per-cell match/insert posterior probabilities from a
// filled Forward/Backward pair over the same edgebound shape, per spec.md
// §4.5. D is always zero (delete states emit no residue). Each row is
// normalised so the M + I + special N/J/C posteriors sum to 1; tol bounds
// the allowed |fwdTotal - bckTotal| disagreement (pass
// DefaultScoreTolerance absent a caller preference).
func Posterior(fwd, bck *matrix.Sparse, fwdTotal, bckTotal, tol float64) (*matrix.Sparse, error) {
	if math.Abs(fwdTotal-bckTotal) > tol {
		return nil, fmt.Errorf("%w: |%.6f - %.6f| > %.6f", ErrScoreMismatch, fwdTotal, bckTotal, tol)
	}

	q, t := fwd.Q(), fwd.T()
	post := matrix.Shape(reshapeFrom(fwd, q), q, t)

	for i := 0; i <= q; i++ {
		values := make([]float64, 0, 2*t+3)
		var lo, hi int
		haveRow := fwd.HasRow(i)
		if haveRow {
			lb, rb := fwd.Bounds(i)
			lo, hi = lb, rb
			if lo < 1 {
				lo = 1
			}
			if hi > t+1 {
				hi = t + 1
			}
			for j := lo; j < hi; j++ {
				m := math.Exp(fwd.Get(matrix.MatchState, i, j) + bck.Get(matrix.MatchState, i, j) - fwdTotal)
				in := math.Exp(fwd.Get(matrix.InsertState, i, j) + bck.Get(matrix.InsertState, i, j) - fwdTotal)
				values = append(values, m, in)
			}
		}

		// fwd.Special(N/J/C, i) is already "having emitted i residues and
		// sitting in this state after its LOOP transition" (forward.go's
		// nScore/jScore/cScore recurrences add the LOOP score every row);
		// bck.Special(N/J/C, i) is the matching "completes from here"
		// half. Their sum already carries the LOOP transition spec.md
		// §4.5 asks these posteriors to use, so it is not added again
		// here the way a fresh transition would be.
		nPost := math.Exp(fwd.Special(matrix.N, i) + bck.Special(matrix.N, i) - fwdTotal)
		jPost := math.Exp(fwd.Special(matrix.J, i) + bck.Special(matrix.J, i) - fwdTotal)
		cPost := math.Exp(fwd.Special(matrix.C, i) + bck.Special(matrix.C, i) - fwdTotal)
		values = append(values, nPost, jPost, cPost)

		rowSum := floats.Sum(values)
		if rowSum == 0 {
			return nil, fmt.Errorf("%w: row %d", ErrCloudEmpty, i)
		}
		floats.Scale(1/rowSum, values)

		if haveRow {
			idx := 0
			for j := lo; j < hi; j++ {
				post.Set(matrix.MatchState, i, j, values[idx])
				post.Set(matrix.InsertState, i, j, values[idx+1])
				post.Set(matrix.DeleteState, i, j, 0)
				idx += 2
			}
		}
		post.SetSpecial(matrix.N, i, values[len(values)-3])
		post.SetSpecial(matrix.J, i, values[len(values)-2])
		post.SetSpecial(matrix.C, i, values[len(values)-1])
	}

	return post, nil
}

// reshapeFrom rebuilds a ROW-mode edgebound.Set from src's already-shaped
// rows, so post can be allocated with the same backed columns as fwd/bck
// without Posterior needing to carry its own edgebound geometry.
func reshapeFrom(src *matrix.Sparse, q int) *edgebound.Set {
	edges := edgebound.New(edgebound.Row)
	for i := 0; i <= q; i++ {
		if !src.HasRow(i) {
			continue
		}
		lb, rb := src.Bounds(i)
		edges.Add(i, lb, rb)
	}
	return edges
}
