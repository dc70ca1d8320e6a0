/*
Package domain splits a scored pair into one or more independent
homologous domains by scanning posterior row-mass for contiguous runs
above a primary threshold, widened to a secondary threshold at each
edge, per spec.md §4.7. Grounded on spec.md §4.7, with the
per-pair threshold-and-report shape (score a stretch, skip if it fails
the floor, otherwise hand it to the next stage) mirrored from
original_source/fbpruner/src/work/work_threshold.c's
WORK_threshold_bound_fwdback skeleton.
*/
package domain
