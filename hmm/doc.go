/*
Package hmm implements the Plan7-style profile HMM data model: an ordered
list of match/insert/delete nodes plus the E/N/J/B/C special-state graph,
generalized from TuftsBCB-seq's HMM/HMMNode/TProbs/EProbs types (see
DESIGN.md). Scores are log-odds in nats; -Inf marks an unreachable
transition or emission, matching spec.md's DP sentinel rather than the
teacher's negative-log-probability convention.

A Profile is shared read-only across workers; Configure rewrites its
length-dependent fields in place, so each worker configures its own Clone
rather than the shared profile (spec.md §5).
*/
package hmm
