package search

import "errors"

// ErrMatrixOverflow is returned when a query/profile pair's (Q+1)(T+1)
// cell count exceeds Config.MaxCells, the worker's capacity limit, per
// spec.md §7.
var ErrMatrixOverflow = errors.New("search: matrix size exceeds worker capacity")
