package edgebound

import "sort"

// Union merges two DIAG-mode sets into one DIAG-mode set, per spec.md
// §4.4: for each diagonal, collect every interval from both inputs, then
// repeatedly merge any two intervals whose closures overlap or abut
// within tol until a fixed point, emitting intervals sorted ascending.
// tol is used as given: with tol = 0 only overlapping or abutting
// intervals merge, and a positive tol also merges intervals separated by
// a gap of at most tol cells; callers typically pass 0.
func Union(a, b *Set, tol int) *Set {
	out := New(Diag)

	lineSet := map[int]bool{}
	for _, l := range a.Lines() {
		lineSet[l] = true
	}
	for _, l := range b.Lines() {
		lineSet[l] = true
	}
	var lines []int
	for l := range lineSet {
		lines = append(lines, l)
	}
	sort.Ints(lines)

	for _, line := range lines {
		ivs := append(a.IntervalsOn(line), b.IntervalsOn(line)...)
		for _, m := range mergeToFixedPoint(ivs, tol) {
			out.Add(line, m.Lb, m.Rb)
		}
	}
	return out
}

// mergeToFixedPoint sorts ivs and merges any pair whose closures overlap
// or abut within tol, repeating until no further merge is possible.
func mergeToFixedPoint(ivs []Interval, tol int) []Interval {
	if len(ivs) == 0 {
		return nil
	}
	for {
		sort.Slice(ivs, func(i, j int) bool { return ivs[i].Lb < ivs[j].Lb })
		merged := make([]Interval, 0, len(ivs))
		changed := false
		cur := ivs[0]
		for _, next := range ivs[1:] {
			if next.Lb <= cur.Rb+tol {
				if next.Rb > cur.Rb {
					cur.Rb = next.Rb
				}
				changed = true
				continue
			}
			merged = append(merged, cur)
			cur = next
		}
		merged = append(merged, cur)
		ivs = merged
		if !changed {
			return ivs
		}
	}
}
