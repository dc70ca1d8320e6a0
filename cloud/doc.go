/*
Package cloud implements the anti-diagonal, X-drop-pruned cloud search of
spec.md §4.3: SearchForward walks diagonals outward from the Viterbi
traceback's first_m coordinate, SearchBackward walks inward from last_m,
and both emit a DIAG-mode edgebound.Set describing the surviving cells.
Grounded on spec.md §4.3 and original_source/src/cloud_search_linear.c;
the Options/early-termination idiom (a numeric window/threshold field,
bail out when the band collapses) is grounded on
katalvlaran-lvlath/dtw.DTW's Sakoe-Chiba window handling.
*/
package cloud
