package seq

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewQuery(t *testing.T) {
	s := NewSequenceString("q1", "ACDEFG")
	q, err := NewQuery(s, true)
	require.NoError(t, err)
	require.Equal(t, 6, q.Len())
	require.Equal(t, Residue('A'), q.At(0))
}

func TestNewQueryEmpty(t *testing.T) {
	_, err := NewQuery(Sequence{Name: "empty"}, false)
	require.True(t, errors.Is(err, ErrEmptyQuery))
}

func TestNewQueryStrictRejectsUnknownResidue(t *testing.T) {
	s := NewSequenceString("q1", "ACDEFJ") // J is not a standard amino acid
	_, err := NewQuery(s, true)
	require.True(t, errors.Is(err, ErrUnrecognizedResidue))
}

func TestQueryWithRange(t *testing.T) {
	s := NewSequenceString("q1", "ACDEFG")
	q, err := NewQuery(s, false)
	require.NoError(t, err)

	sub, err := q.WithRange(1, 4)
	require.NoError(t, err)
	require.Equal(t, "CDE", string(sub.Active()))

	_, err = q.WithRange(4, 1)
	require.True(t, errors.Is(err, ErrBadRange))

	_, err = q.WithRange(0, 100)
	require.True(t, errors.Is(err, ErrBadRange))
}
