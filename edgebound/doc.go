/*
Package edgebound implements the edgebound set described in spec.md §3 and
§4.4: an ordered list of (line, lb, rb) triples, either diagonal-indexed
(DIAG mode, as produced by cloud search) or row-indexed (ROW mode, as
consumed by the bounded passes), plus the Union, Reorient and Count
operations that manipulate them. Grounded on
original_source/src/edgebounds_obj.c and merge_reorient_linear.c.
*/
package edgebound
