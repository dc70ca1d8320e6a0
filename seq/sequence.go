package seq

// A Sequence corresponds to any kind of biological sequence: DNA, RNA, amino
// acid, secondary structure, etc.
type Sequence struct {
	Name     string
	Residues []Residue
}

// A Residue corresponds to a single entry in a sequence.
type Residue byte

// NewSequenceString is a convenience function for constructing a sequence
// from a string. It is otherwise appropriate to create new Sequence values
// directly.
func NewSequenceString(name, srs string) Sequence {
	rs := make([]Residue, len(srs))
	for i := range srs {
		rs[i] = Residue(srs[i])
	}
	return Sequence{Name: name, Residues: rs}
}

// Copy returns a deep copy of the sequence.
func (s Sequence) Copy() Sequence {
	residues := make([]Residue, len(s.Residues))
	copy(residues, s.Residues)
	return Sequence{
		Name:     s.Name,
		Residues: residues,
	}
}

// Bytes returns the sequence of residues as a byte slice.
func (s Sequence) Bytes() []byte {
	bs := make([]byte, len(s.Residues))
	for i := range s.Residues {
		bs[i] = byte(s.Residues[i])
	}
	return bs
}

// Slice returns a slice of the sequence. The name stays the same, and the
// sequence of residues corresponds to a Go slice of the original.
// (This does not copy data, so that if the original or sliced sequence is
// changed, the other one will too. Use Sequence.Copy first if you need copy
// semantics.)
func (s Sequence) Slice(start, end int) Sequence {
	return Sequence{
		Name:     s.Name,
		Residues: s.Residues[start:end],
	}
}

// Len returns the number of residues in the sequence.
func (s Sequence) Len() int {
	return len(s.Residues)
}

// IsNull returns true if the name has zero length and the residues are nil.
func (s Sequence) IsNull() bool {
	return len(s.Name) == 0 && s.Residues == nil
}
