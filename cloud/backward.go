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

// SearchBackward walks anti-diagonals inward from seed (the Viterbi
// traceback's LastM coordinate) toward decreasing d, mirroring
// SearchForward: the free B->M entry edge becomes a free M->E exit edge,
// and the neighbour diagonals read d+1/d+2 instead of d-1/d-2. Grounded
// on spec.md §4.3's "mirror image of the forward sweep" description and
// original_source/src/cloud_search_linear.c's backward pass.
//
// mx is caller-owned scratch storage, reused (not reallocated) across
// pairs per spec.md §5; SearchBackward calls mx.Reuse(q, t) itself.
func SearchBackward(profile *hmm.Profile, query seq.Query, seed viterbi.Coord, params Params, mx *matrix.Striped) (*edgebound.Set, Stats, error) {
	if err := params.Validate(); err != nil {
		return nil, Stats{}, err
	}

	q, t := query.Len(), profile.Len()
	mx.Reuse(q, t)
	edges := edgebound.New(edgebound.Diag)
	stats := Stats{}

	d0 := seed.I + seed.J
	globalMax := math.Inf(-1)

	lo0, hi0 := mx.DiagBounds(d0)
	b := band{lb: seed.I, rb: seed.I + 1}.clip(lo0, hi0)

	for d := d0; d >= 0; d-- {
		lo, hi := mx.DiagBounds(d)
		if d < d0 {
			if d0-d <= params.Gamma {
				b = b.expand(lo, hi)
			} else {
				nb, terminate := prune(mx, d+1, b, params.Alpha, params.Beta, lo, hi, &globalMax)
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

			// dSameRow is D(i,j+1): same row, one column further into the
			// model, so it carries no emission of its own.
			dSameRow := math.Inf(-1)
			if j < t {
				dSameRow = mx.Get(matrix.DeleteState, d+1, k)
			}

			// succM/succI are M(i+1,j+1)/I(i+1,j), each folding in the
			// residue consumed entering that destination state. They are
			// shared across every transition that lands there, mirroring
			// fwdback.Backward's succM/succI.
			succM, succI := math.Inf(-1), math.Inf(-1)
			if i < q {
				r := query.At(i)
				if j < t {
					nextNode := profile.Nodes[j]
					matEmit := float64(nextNode.MatEmit.Lookup(r))
					succM = matEmit + mx.Get(matrix.MatchState, d+2, k+1)
				}
				insEmit := float64(node.InsEmit.Lookup(r))
				succI = insEmit + mx.Get(matrix.InsertState, d+1, k+1)
			}

			dScore := logsum.Logsum(
				dSameRow+float64(node.Trans.DD),
				succM+float64(node.Trans.DM),
			)
			mx.Set(matrix.DeleteState, d, k, dScore)

			mScore := logsum.LogsumN(
				0, // free M->E exit: no emission, no calibrated entry score
				succM+float64(node.Trans.MM),
				succI+float64(node.Trans.MI),
				dSameRow+float64(node.Trans.MD),
			)
			mx.Set(matrix.MatchState, d, k, mScore)

			iScore := logsum.Logsum(
				succM+float64(node.Trans.IM),
				succI+float64(node.Trans.II),
			)
			mx.Set(matrix.InsertState, d, k, iScore)

			best := math.Max(mScore, math.Max(iScore, dScore))
			if d0-d <= params.Gamma {
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
		mx.Scrub(d + 2)
	}

	return edges, stats, nil
}
