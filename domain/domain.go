package domain

import (
	"sort"

	"github.com/twlab/cloudfb/matrix"
	"gonum.org/v1/gonum/floats"
)

// Run is one contiguous stretch of query rows [Beg, End) spec.md §4.7
// identifies as a single candidate domain.
type Run struct {
	Beg, End int
}

// Len reports the number of rows the run covers.
func (r Run) Len() int { return r.End - r.Beg }

// FindRuns scans post's row-by-row core-model posterior mass (M+I,
// excluding the N/J/C flanking states) for contiguous stretches above
// rt1, then widens each stretch outward while the neighbouring row's
// mass still exceeds the looser rt2 threshold, merging any runs that
// end up touching. Per spec.md §4.7.
func FindRuns(post *matrix.Sparse, rt1, rt2 float64) []Run {
	q := post.Q()
	mass := make([]float64, q+1)
	for i := 0; i <= q; i++ {
		mass[i] = coreMass(post, i)
	}

	var cores []Run
	inRun := false
	start := 0
	for i := 0; i <= q; i++ {
		above := mass[i] > rt1
		switch {
		case above && !inRun:
			inRun = true
			start = i
		case !above && inRun:
			inRun = false
			cores = append(cores, Run{Beg: start, End: i})
		}
	}
	if inRun {
		cores = append(cores, Run{Beg: start, End: q + 1})
	}

	widened := make([]Run, len(cores))
	for idx, c := range cores {
		b, e := c.Beg, c.End
		for b > 0 && mass[b-1] > rt2 {
			b--
		}
		for e <= q && mass[e] > rt2 {
			e++
		}
		widened[idx] = Run{Beg: b, End: e}
	}

	return mergeOverlapping(widened)
}

// coreMass sums post's M+I posterior mass on row i: the probability the
// query position lies inside the homologous core, per spec.md §4.7's
// per-row threshold test.
func coreMass(post *matrix.Sparse, i int) float64 {
	if !post.HasRow(i) {
		return 0
	}
	lb, rb := post.Bounds(i)
	t := post.T()
	lo, hi := lb, rb
	if lo < 1 {
		lo = 1
	}
	if hi > t+1 {
		hi = t + 1
	}
	if hi <= lo {
		return 0
	}
	values := make([]float64, 0, 2*(hi-lo))
	for j := lo; j < hi; j++ {
		values = append(values, post.Get(matrix.MatchState, i, j), post.Get(matrix.InsertState, i, j))
	}
	return floats.Sum(values)
}

// mergeOverlapping collapses any runs left touching or overlapping after
// widening, sorted ascending by start.
func mergeOverlapping(runs []Run) []Run {
	if len(runs) == 0 {
		return runs
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Beg < runs[j].Beg })
	out := []Run{runs[0]}
	for _, r := range runs[1:] {
		last := &out[len(out)-1]
		if r.Beg <= last.End {
			if r.End > last.End {
				last.End = r.End
			}
			continue
		}
		out = append(out, r)
	}
	return out
}
