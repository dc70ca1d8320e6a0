/*
Package matrix provides the three interchangeable DP storage shapes named
in spec.md §3: Dense (full quadratic, for Viterbi and reference Forward),
Striped (rolling three-anti-diagonal storage for cloud search), and Sparse
(row-indexed, edgebound-shaped storage for the bounded passes). Each is a
distinct Go type with its own (state, row, col) or (state, d mod 3, k)
accessors rather than one macro over a shared buffer (spec.md §9's
"pointer-arithmetic macros" design note), grounded on TuftsBCB-seq's
DynamicTable (flat []Prob plus a hand index function) generalized into
three purpose-built layouts.
*/
package matrix
