/*
Package search wires every other package in this module into the single
abstract operation spec.md §6 names:

	search(profile, sequence, config, scratch) -> PairResult | Error

Search runs Viterbi to seed the cloud, Cloud Search forward and
backward, merges and reorients the two edgebound sets, shapes and fills
bounded Forward/Backward/Posterior, applies the null2 composition-bias
correction, maps the result to bit score / P-value / E-value, and
optionally splits the posterior into reportable domains — in the order
spec.md §5's "Ordering guarantees" paragraph requires. Grounded on
spec.md §§5-7 and original_source/fbpruner/src/work/work_cloud.c /
work_posterior.c's per-pair pipeline shape.
*/
package search
