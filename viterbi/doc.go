/*
Package viterbi implements the Plan7 Viterbi recurrence and its traceback
(spec.md §4.2), seeding the cloud search with first_m/last_m coordinates.
Grounded on TuftsBCB-seq's HMM.ViterbiScoreMem (the per-node, per-residue
loop shape and the Dense matrix's (state, row, col) addressing) and on
sequence_align.go's NeedlemanWunsch traceback (walk backward comparing
reconstructed scores, append, then reverse in place).

Node indexing convention: hmm.Profile.Nodes[k] (0-based) holds the
match/insert emissions of model column k+1, and the seven transition
scores leaving column k+1 toward column k+2 (Plan7's node k+1 -> k+2
edge). The last column T (Nodes[T-1]) is the one spec.md §4.2
special-cases: it has no insert state, and D(i,T) feeds E only in glocal
mode.
*/
package viterbi
