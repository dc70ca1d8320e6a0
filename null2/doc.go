/*
Package null2 computes the composition-bias correction spec.md §4.6
models after HMMER's p7_GNull2_ByExpectation: accumulate per-column
posterior mass into a log-frequency profile, fold it against the
profile's own emission scores to build a per-residue null model, and sum
its log over the query's active range into a single seq_bias term.
*/
package null2
