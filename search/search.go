package search

import (
	"fmt"
	"math"

	"github.com/twlab/cloudfb/cloud"
	"github.com/twlab/cloudfb/domain"
	"github.com/twlab/cloudfb/edgebound"
	"github.com/twlab/cloudfb/fwdback"
	"github.com/twlab/cloudfb/hmm"
	"github.com/twlab/cloudfb/matrix"
	"github.com/twlab/cloudfb/null2"
	"github.com/twlab/cloudfb/score"
	"github.com/twlab/cloudfb/seq"
	"github.com/twlab/cloudfb/viterbi"
)

// Search runs one (profile, sequence) pair through the full pipeline of
// spec.md §§4-5: Viterbi seeds Cloud Search, Cloud forward/backward are
// merged and reoriented into one row-indexed edgebound set, bounded
// Forward/Backward/Posterior run over it, null2 corrects for composition
// bias, and the final bit score, P-value and E-value are computed.
// Optionally the posterior is split into independently scored domains.
//
// profile must not be mutated by the caller concurrently with this call;
// Search clones it internally before length-configuration, per spec.md
// §5. scratch must be owned by a single worker (not shared across
// concurrently running pairs).
func Search(profile *hmm.Profile, query seq.Query, config Config, scratch *Scratch) (*PairResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	q, t := query.Len(), profile.Len()
	if config.MaxCells > 0 && (q+1)*(t+1) > config.MaxCells {
		return nil, fmt.Errorf("%w: (%d+1)x(%d+1) > %d", ErrMatrixOverflow, q, t, config.MaxCells)
	}

	worker := profile.Clone()
	worker.Mode = config.Mode
	if err := worker.Validate(); err != nil {
		return nil, err
	}
	if err := worker.Configure(q); err != nil {
		return nil, err
	}

	scratch.Dense.Reuse(q, t)
	vscore := viterbi.Run(worker, query, scratch.Dense)
	_ = vscore
	tb, err := viterbi.Trace(worker, query, scratch.Dense)
	if err != nil {
		return nil, err
	}
	scratch.Traceback = tb

	var rowEdges *edgebound.Set
	var cloudCells int
	if config.RunFull || !tb.HasMatch {
		full := edgebound.New(edgebound.Row)
		for i := 0; i <= q; i++ {
			full.Add(i, 0, t+1)
		}
		rowEdges = full
		cloudCells = full.Count()
	} else {
		params := cloud.Params{Alpha: config.Alpha, Beta: config.Beta, Gamma: config.Gamma}
		fwdSet, _, err := cloud.SearchForward(worker, query, tb.FirstM, params, scratch.CloudFwd)
		if err != nil {
			return nil, err
		}
		bckSet, _, err := cloud.SearchBackward(worker, query, tb.LastM, params, scratch.CloudBck)
		if err != nil {
			return nil, err
		}
		bckSet.Reverse()

		merged := edgebound.Union(fwdSet, bckSet, 0)
		if merged.Count() == 0 {
			return nil, fmt.Errorf("%w: cloud produced zero cells", fwdback.ErrCloudEmpty)
		}
		rowEdges = edgebound.Reorient(merged)
		cloudCells = merged.Count()
	}

	fwd, fwdTotal, err := fwdback.Forward(worker, query, rowEdges)
	if err != nil {
		return nil, err
	}
	bck, bckTotal, err := fwdback.Backward(worker, query, rowEdges)
	if err != nil {
		return nil, err
	}
	post, err := fwdback.Posterior(fwd, bck, fwdTotal, bckTotal, fwdback.DefaultScoreTolerance)
	if err != nil {
		return nil, err
	}

	tBeg, tEnd := boundingColumns(rowEdges, t)
	// QBeg/QEnd report the cloud's own DP-row footprint (rows 0..Q), not
	// residue indices; null2.Correction below wants the query's active
	// residue sub-range instead (spec.md §3/§4.6), so the two are kept
	// separate rather than reusing one pair of variables for both.
	qBeg, qEnd := rowEdges.Bands[0].Line, rowEdges.Bands[len(rowEdges.Bands)-1].Line+1

	null1 := null1Score(q)

	seqBias := 0.0
	if config.RunBias {
		_, bias, err := null2.Correction(post, worker, query, tBeg, tEnd, 0, q)
		if err != nil {
			return nil, err
		}
		seqBias = bias
	}

	sc := score.Compute(fwdTotal, null1, seqBias, worker.Tau, worker.Lambda, config.DBSize)

	result := &PairResult{
		NatScore:   fwdTotal,
		Null1:      null1,
		SeqBias:    seqBias,
		Bits:       sc.SeqScore,
		LnPValue:   sc.LnPValue,
		PValue:     sc.PValue,
		EValue:     sc.EValue,
		QBeg:       qBeg,
		QEnd:       qEnd,
		TBeg:       tBeg,
		TEnd:       tEnd,
		Traceback:  tb,
		CloudCells: cloudCells,
		TotalCells: (q + 1) * (t + 1),
		Filtered:   sc.EValue > config.EvalCutoff,
	}

	if config.RunDomains {
		result.Domains = scoreDomains(post, worker, query, config, null1, fwdTotal)
	}

	return result, nil
}

// boundingColumns returns the [lo, hi) column range rowEdges covers
// across every row, clipped to the real 1..t model columns.
func boundingColumns(edges *edgebound.Set, t int) (lo, hi int) {
	lo, hi = t+1, 0
	for _, b := range edges.Bands {
		l, r := b.Lb, b.Rb
		if l < 1 {
			l = 1
		}
		if r > t+1 {
			r = t + 1
		}
		if l >= r {
			continue
		}
		if l < lo {
			lo = l
		}
		if r > hi {
			hi = r
		}
	}
	if lo >= hi {
		return 1, t + 1
	}
	return lo, hi
}

// rowsToResidues converts a DP row range [rowBeg, rowEnd) into the
// matching active-range-relative residue range null2.Correction expects:
// DP row i consumes residue query.At(i-1) (viterbi.Run, fwdback.Forward),
// so row 0 consumes nothing and row Q is the last row, not a valid
// residue index. Both ends are clamped to the query's actual active
// length so a run touching row 0 or row Q never produces an out-of-range
// residue index.
func rowsToResidues(rowBeg, rowEnd, qLen int) (beg, end int) {
	beg, end = rowBeg-1, rowEnd-1
	if beg < 0 {
		beg = 0
	}
	if end > qLen {
		end = qLen
	}
	return beg, end
}

// null1Score is the length-specific null-model score spec.md §4.6's
// pre_sc/seq_sc subtract: the same one-state geometric-length formula
// hmm.Profile.Configure uses for N/J/C with nhits fixed at 1, since the
// null model is always a single unihit background state regardless of
// the search profile's own hit mode.
func null1Score(length int) float64 {
	fl := float64(length)
	move := math.Log(1 / (fl + 1))
	loop := math.Log(fl / (fl + 1))
	return fl*loop + move
}

// scoreDomains splits post into candidate domains and scores each
// independently against its own sub-range null2 correction, per spec.md
// §4.7. Each domain is rescored against the whole pair's Forward
// nat-score (fwdTotal) with a bias term recomputed over just that
// domain's query range, rather than re-running Forward restricted to
// the domain: spec.md §4.7 does not mandate a per-domain Forward rerun,
// and this keeps domain scoring a cheap pass over the already-filled
// posterior.
func scoreDomains(post *matrix.Sparse, profile *hmm.Profile, query seq.Query, config Config, null1, fwdTotal float64) []DomainScore {
	runs := domain.FindRuns(post, config.Rt1, config.Rt2)
	domains := make([]DomainScore, 0, len(runs))
	for _, run := range runs {
		rBeg, rEnd := rowsToResidues(run.Beg, run.End, query.Len())
		_, bias, err := null2.Correction(post, profile, query, 1, profile.Len()+1, rBeg, rEnd)
		if err != nil {
			continue
		}
		sc := score.Compute(fwdTotal, null1, bias, profile.Tau, profile.Lambda, config.DBSize)
		domains = append(domains, DomainScore{
			Beg:      run.Beg,
			End:      run.End,
			Bits:     sc.SeqScore,
			LnPValue: sc.LnPValue,
			PValue:   sc.PValue,
			EValue:   sc.EValue,
			Passed:   sc.SeqScore >= config.Rt3,
		})
	}
	return domains
}
