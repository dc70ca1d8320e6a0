package hmm

import "github.com/twlab/cloudfb/seq"

// EProbs represents emission log-odds scores over a contiguous window of
// the residue alphabet, grounded on TuftsBCB-seq's EProbs (Offset/Probs):
// keeping the sparse "smallest residue to largest residue" window rather
// than a full 256-entry table.
type EProbs struct {
	Offset seq.Residue
	Scores []Score
}

// NewEProbs creates an EProbs window sized to alphabet, with every entry
// defaulted to NegInf.
func NewEProbs(alphabet seq.Alphabet) EProbs {
	offset, max := seq.Residue(255), seq.Residue(0)
	for _, r := range alphabet {
		if r < offset {
			offset = r
		}
		if r > max {
			max = r
		}
	}
	scores := make([]Score, 1+max-offset)
	for i := range scores {
		scores[i] = NegInf
	}
	return EProbs{Offset: offset, Scores: scores}
}

// Lookup returns the emission score for r, or NegInf if r falls outside
// the window this EProbs was built for.
func (e EProbs) Lookup(r seq.Residue) Score {
	i := int(r) - int(e.Offset)
	if i < 0 || i >= len(e.Scores) {
		return NegInf
	}
	return e.Scores[i]
}

// Set assigns the emission score of residue r.
func (e *EProbs) Set(r seq.Residue, s Score) {
	e.Scores[int(r)-int(e.Offset)] = s
}
