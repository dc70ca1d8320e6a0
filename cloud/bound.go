package cloud

import (
	"math"

	"github.com/twlab/cloudfb/matrix"
)

// band is the live [lb, rb) range of k (= row i) values on one diagonal.
type band struct {
	lb, rb int
}

func (b band) empty() bool { return b.rb <= b.lb }

// expand grows b by one cell on each side, clipped to [lo, hi].
func (b band) expand(lo, hi int) band {
	nb := band{lb: b.lb - 1, rb: b.rb + 1}
	return nb.clip(lo, hi)
}

func (b band) clip(lo, hi int) band {
	if b.lb < lo {
		b.lb = lo
	}
	if b.rb > hi+1 {
		b.rb = hi + 1
	}
	return b
}

// diagMax returns the maximum of max(M,I,D) over every live cell of
// diagonal d described by b.
func diagMax(mx *matrix.Striped, d int, b band) float64 {
	m := math.Inf(-1)
	for k := b.lb; k < b.rb; k++ {
		m = math.Max(m, math.Max(mx.Get(matrix.MatchState, d, k), math.Max(
			mx.Get(matrix.InsertState, d, k), mx.Get(matrix.DeleteState, d, k))))
	}
	return m
}

// prune implements spec.md §4.3's X-drop step: scan the previous
// diagonal's live band from both ends against limit = globalMax - alpha,
// add beta-sized padding, and clip to [lo, hi]. terminate is true if no
// cell on the previous diagonal exceeded limit, ending the branch.
func prune(mx *matrix.Striped, prevD int, prev band, alpha float64, beta, lo, hi int, globalMax *float64) (next band, terminate bool) {
	dm := diagMax(mx, prevD, prev)
	if dm > *globalMax {
		*globalMax = dm
	}
	limit := *globalMax - alpha

	newLb, newRb := prev.rb, prev.lb // sentinel: nothing found yet
	found := false
	for k := prev.lb; k < prev.rb; k++ {
		if cellScore(mx, prevD, k) > limit {
			newLb = k
			found = true
			break
		}
	}
	if !found {
		return band{}, true
	}
	for k := prev.rb - 1; k >= prev.lb; k-- {
		if cellScore(mx, prevD, k) > limit {
			newRb = k + 1
			break
		}
	}
	next = band{lb: newLb - beta, rb: newRb + beta}
	return next.clip(lo, hi), false
}

func cellScore(mx *matrix.Striped, d, k int) float64 {
	return math.Max(mx.Get(matrix.MatchState, d, k), math.Max(
		mx.Get(matrix.InsertState, d, k), mx.Get(matrix.DeleteState, d, k)))
}
