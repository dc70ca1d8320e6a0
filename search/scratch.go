package search

import (
	"github.com/twlab/cloudfb/matrix"
	"github.com/twlab/cloudfb/viterbi"
)

// Scratch holds one worker's reusable per-pair buffers, per spec.md §5:
// "a worker owns one copy of every scratch structure... replicate the
// worker" for parallelism across pairs rather than sharing one Scratch.
// The matrix fields are resized by the Reuse calls Search makes
// internally, which allocate only when a pair needs more capacity than
// any earlier one; Traceback is replaced by each Search call.
type Scratch struct {
	Dense     *matrix.Dense
	CloudFwd  *matrix.Striped
	CloudBck  *matrix.Striped
	Traceback *viterbi.Traceback
}

// NewScratch allocates an empty Scratch. Pass it to every Search call
// from one worker goroutine; do not share a Scratch across concurrently
// running pairs.
func NewScratch() *Scratch {
	return &Scratch{
		Dense:    matrix.NewDense(0, 0),
		CloudFwd: matrix.NewStriped(0, 0),
		CloudBck: matrix.NewStriped(0, 0),
	}
}
