package logsum

import (
	"math"
	"sync"
)

// Scale is the number of table entries per unit of log-odds difference.
const Scale = 1000.0

// TableSize is the number of sampled entries in the lookup table, covering
// differences out to TableSize/Scale nats.
const TableSize = 16000

// maxDiff is the point beyond which log(1+exp(-x)) is close enough to zero
// that logsum(a, b) simply returns max(a, b).
const maxDiff = 15.7

var (
	once  sync.Once
	table [TableSize]float64
)

func build() {
	for i := 0; i < TableSize; i++ {
		table[i] = math.Log1p(math.Exp(-float64(i) / Scale))
	}
}

// Init forces the lookup table to be built. Logsum calls this itself under
// a sync.Once, so callers never need to call Init directly; it exists so a
// worker can pay the one-time cost before entering a latency-sensitive loop.
func Init() {
	once.Do(build)
}

// Logsum returns an approximation of log(exp(a) + exp(b)), accurate to
// within 1e-3, treating negative infinity as absorbing: Logsum(-Inf, x) ==
// x for any finite x, and Logsum(-Inf, -Inf) == -Inf. The result does not
// depend on argument order (commutative) and repeated reduction of several
// terms via Logsum is associative to the same tolerance.
func Logsum(a, b float64) float64 {
	once.Do(build)

	max, min := a, b
	if b > a {
		max, min = b, a
	}
	if math.IsInf(min, -1) {
		return max
	}
	diff := max - min
	if diff >= maxDiff {
		return max
	}
	idx := int(diff*Scale + 0.5)
	if idx >= TableSize {
		idx = TableSize - 1
	}
	return max + table[idx]
}

// LogsumN reduces a slice of log-space terms via repeated Logsum. The order
// of reduction is left-to-right and unspecified beyond that by contract
// (spec §4.1): callers must not depend on a particular reduction order
// producing bit-identical results, only tolerance-equal ones.
func LogsumN(terms ...float64) float64 {
	if len(terms) == 0 {
		return math.Inf(-1)
	}
	acc := terms[0]
	for _, t := range terms[1:] {
		acc = Logsum(acc, t)
	}
	return acc
}
