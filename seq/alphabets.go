package seq

import (
	"github.com/biogo/biogo/alphabet"
)

// Alphabet corresponds to a set of residues, in a particular order, that
// capture all possible residues of a particular set of sequences. For example,
// this is used in frequency profiles and HMMs to specify which amino acids
// are represented in the probabilistic model.
//
// In most cases, the ordering of the alphabet is significant. For example,
// the indices of an alphabet may be in correspondence with the indices of
// a column in a frequency profile.
type Alphabet []Residue

// NewAlphabet creates an alphabet from the residues given.
func NewAlphabet(residues ...Residue) Alphabet {
	return Alphabet(residues)
}

func (a Alphabet) Len() int {
	return len(a)
}

func (a Alphabet) String() string {
	bs := make([]byte, len(a))
	for i, residue := range a {
		bs[i] = byte(residue)
	}
	return string(bs)
}

// AlphaAmino20 is the 20-letter amino-acid alphabet match/insert emission
// tables and profile positions are indexed against. The ordering matches
// HMMER's canonical residue order.
var AlphaAmino20 = NewAlphabet(
	'A', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'K', 'L',
	'M', 'N', 'P', 'Q', 'R', 'S', 'T', 'V', 'W', 'Y',
)

// Symbols a query may carry alongside AlphaAmino20: a gap, a
// missing/unknown position, a non-residue position, and the wildcard X.
const (
	GapSymbol        Residue = '-'
	MissingSymbol    Residue = '~'
	NonResidueSymbol Residue = '*'
	WildcardSymbol   Residue = 'X'
)

// IsStandardAmino reports whether r is one of the 20 standard amino acids,
// validated against biogo's protein alphabet rather than a hand-rolled
// table.
func IsStandardAmino(r Residue) bool {
	l := alphabet.Letter(r)
	return alphabet.Protein.IsValid(l) && l != alphabet.Letter(GapSymbol)
}
