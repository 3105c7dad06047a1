package sequence

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequenceAppend(t *testing.T) {
	var s Sequence
	require.Equal(t, 0, s.Len())
	for i := 0; i < Capacity; i++ {
		require.NoError(t, s.Append(Move(i%4)))
	}
	require.Equal(t, Capacity, s.Len())
	require.Equal(t, ErrSequenceFull, s.Append(0))
	require.Equal(t, Move(3), s.At(3))
	require.Len(t, s.Moves(), Capacity)

	s.Reset()
	require.Equal(t, 0, s.Len())
	require.Empty(t, s.Moves())
}

func TestSequenceInvalidMove(t *testing.T) {
	var s Sequence
	require.Error(t, s.Append(4))
	require.Equal(t, 0, s.Len())
}

func TestSequenceAtOutOfRange(t *testing.T) {
	var s Sequence
	s.Append(1)
	require.Panics(t, func() { s.At(1) })
}

func TestSequenceString(t *testing.T) {
	var s Sequence
	s.Append(0)
	s.Append(3)
	s.Append(2)
	require.Equal(t, "[0 3 2]", s.String())
}

func TestMovesIsCopy(t *testing.T) {
	var s Sequence
	s.Append(1)
	moves := s.Moves()
	moves[0] = 2
	require.Equal(t, Move(1), s.At(0))
}
