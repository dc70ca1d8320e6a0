/*
Package fwdback runs the Plan7 Forward and Backward recurrences (in
logsum algebra) restricted to the matrix.Sparse storage shaped by a
ROW-mode edgebound.Set (the named cells plus each row's halo cells and
any gaps between its intervals), and decodes posterior match/insert/special-state
probabilities from the resulting pair of sparse matrices. Grounded on
spec.md §4.5 and original_source/src/bounded_fwdbck_linear.c; the
row-major fill order and special-state fold mirrors viterbi.Run's dense
recurrence, generalized from max to logsum and restricted to the
edgebound-shaped matrix.Sparse storage.
*/
package fwdback
