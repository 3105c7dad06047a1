// Package sequence implements the sequence-memory engine: generating,
// presenting and verifying sequences of button moves.
package sequence

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robotalks/simon.go/pkg/hal"
)

// Capacity is the maximum sequence length, which is also the top level.
const Capacity = 20

var (
	// ErrSequenceFull indicates the sequence reached Capacity.
	ErrSequenceFull = errors.New("sequence full")
)

// Move is a button index in [0, hal.ButtonCount).
type Move uint8

// IsValid checks the move is a valid button index.
func (m Move) IsValid() bool {
	return int(m) < hal.ButtonCount
}

// Sequence is a fixed-capacity ordered list of moves.
type Sequence struct {
	moves [Capacity]Move
	n     int
}

// Len returns the number of moves.
func (s *Sequence) Len() int {
	return s.n
}

// At returns the i-th move.
func (s *Sequence) At(i int) Move {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("sequence index %d out of range [0,%d)", i, s.n))
	}
	return s.moves[i]
}

// Moves returns a copy of the moves.
func (s *Sequence) Moves() []Move {
	return append([]Move(nil), s.moves[:s.n]...)
}

// Reset empties the sequence.
func (s *Sequence) Reset() {
	s.n = 0
}

// Append adds a move at the end.
func (s *Sequence) Append(m Move) error {
	if !m.IsValid() {
		return fmt.Errorf("invalid move %d", m)
	}
	if s.n >= Capacity {
		return ErrSequenceFull
	}
	s.moves[s.n] = m
	s.n++
	return nil
}

// String implements fmt.Stringer.
func (s *Sequence) String() string {
	items := make([]string, s.n)
	for i, m := range s.moves[:s.n] {
		items[i] = fmt.Sprint(m)
	}
	return "[" + strings.Join(items, " ") + "]"
}
