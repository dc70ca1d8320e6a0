package edgebound

import "sort"

// Reorient converts a DIAG-mode set into a ROW-mode set covering the
// exact same (i, j) cells, per spec.md §4.4. For every band (d, [lb, rb))
// and every row i in [lb, rb) (recall k = i in DIAG mode), column
// j = d - i is covered; this is exactly the "scan diagonals, flip the
// false/true predicate at j = d-lb and j = d-rb+1" rule restated per row
// instead of per diagonal, and is equivalent to it because j is
// determined by (d, i) alone.
func Reorient(in *Set) *Set {
	covered := map[int][]int{} // row -> unsorted list of covered columns

	for _, b := range in.Bands {
		for i := b.Lb; i < b.Rb; i++ {
			j := b.Line - i
			covered[i] = append(covered[i], j)
		}
	}

	out := New(Row)
	var rows []int
	for r := range covered {
		rows = append(rows, r)
	}
	sort.Ints(rows)

	for _, row := range rows {
		cols := covered[row]
		sort.Ints(cols)
		start := cols[0]
		prev := cols[0]
		for _, c := range cols[1:] {
			if c == prev {
				continue // duplicate column from overlapping input bands
			}
			if c == prev+1 {
				prev = c
				continue
			}
			out.Add(row, start, prev+1)
			start, prev = c, c
		}
		out.Add(row, start, prev+1)
	}
	return out
}
