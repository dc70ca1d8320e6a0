package cloud

import (
	"math"

	"github.com/twlab/cloudfb/edgebound"
	"github.com/twlab/cloudfb/hmm"
	"github.com/twlab/cloudfb/logsum"
	"github.com/twlab/cloudfb/matrix"
	"github.com/twlab/cloudfb/seq"
	"github.com/twlab/cloudfb/viterbi"
)

// SearchForward walks anti-diagonals d = i+j outward from seed (the
// Viterbi traceback's FirstM coordinate) toward increasing d, filling a
// rolling matrix.Striped scratch matrix with Forward-algebra (logsum,
// not max) partial sums, and returns a DIAG-mode edgebound.Set of the
// surviving cells plus geometry stats. Grounded on spec.md §4.3 and
// original_source/src/cloud_search_linear.c's forward sweep.
//
// The B->M entry edge is folded in as an unconditional free edge (score
// 0) rather than profile.Nodes[j-1].Entry: cloud search only needs to
// discover which cells are reachable, not compute a calibrated score,
// so every column is treated as an equally valid entry point.
//
// mx is caller-owned scratch storage, reused (not reallocated) across
// pairs per spec.md §5; SearchForward calls mx.Reuse(q, t) itself.
func SearchForward(profile *hmm.Profile, query seq.Query, seed viterbi.Coord, params Params, mx *matrix.Striped) (*edgebound.Set, Stats, error) {
	if err := params.Validate(); err != nil {
		return nil, Stats{}, err
	}

	q, t := query.Len(), profile.Len()
	mx.Reuse(q, t)
	edges := edgebound.New(edgebound.Diag)
	stats := Stats{}

	d0 := seed.I + seed.J
	dMax := q + t
	globalMax := math.Inf(-1)

	lo0, hi0 := mx.DiagBounds(d0)
	b := band{lb: seed.I, rb: seed.I + 1}.clip(lo0, hi0)

	for d := d0; d <= dMax; d++ {
		lo, hi := mx.DiagBounds(d)
		if d > d0 {
			if d-d0 <= params.Gamma {
				b = b.expand(lo, hi)
			} else {
				nb, terminate := prune(mx, d-1, b, params.Alpha, params.Beta, lo, hi, &globalMax)
				if terminate {
					break
				}
				b = nb
			}
		}
		if b.empty() {
			break
		}

		for k := b.lb; k < b.rb; k++ {
			i, j := k, d-k
			if i < 1 || i > q || j < 1 || j > t {
				continue
			}
			node := profile.Nodes[j-1]
			r := query.At(i - 1)
			matEmit := float64(node.MatEmit.Lookup(r))
			insEmit := float64(node.InsEmit.Lookup(r))

			mDiagM := mx.Get(matrix.MatchState, d-2, k-1)
			mDiagI := mx.Get(matrix.InsertState, d-2, k-1)
			mDiagD := mx.Get(matrix.DeleteState, d-2, k-1)
			mScore := logsum.LogsumN(
				mDiagM+float64(node.Trans.MM),
				mDiagI+float64(node.Trans.IM),
				mDiagD+float64(node.Trans.DM),
				0,
			) + matEmit
			mx.Set(matrix.MatchState, d, k, mScore)

			iPredM := mx.Get(matrix.MatchState, d-1, k-1)
			iPredI := mx.Get(matrix.InsertState, d-1, k-1)
			iScore := logsum.Logsum(
				iPredM+float64(node.Trans.MI),
				iPredI+float64(node.Trans.II),
			) + insEmit
			mx.Set(matrix.InsertState, d, k, iScore)

			dPredM := mx.Get(matrix.MatchState, d-1, k)
			dPredD := mx.Get(matrix.DeleteState, d-1, k)
			dScore := logsum.Logsum(
				dPredM+float64(node.Trans.MD),
				dPredD+float64(node.Trans.DD),
			)
			mx.Set(matrix.DeleteState, d, k, dScore)

			best := math.Max(mScore, math.Max(iScore, dScore))
			if d-d0 <= params.Gamma {
				if best > stats.MaxInRange {
					stats.MaxInRange = best
				}
			} else if best > stats.MaxOutOfRange {
				stats.MaxOutOfRange = best
			}
		}

		edges.Add(d, b.lb, b.rb)
		stats.Diagonals++
		stats.CellCount += b.rb - b.lb
		mx.Scrub(d - 2)
	}

	return edges, stats, nil
}
