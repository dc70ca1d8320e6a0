/*
Package seq provides common types for dealing with biological sequence data,
with a bias toward amino acid sequences: sequences, residues, alphabets, and
the active-range Query wrapper profile-HMM search runs against. The
profile-HMM and Viterbi machinery that used to live here has moved to the
hmm and viterbi packages, which import this package for its
Sequence/Residue/Alphabet/Query types rather than duplicating them.
*/
package seq
