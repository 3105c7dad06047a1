package game

import (
	"github.com/robotalks/simon.go/pkg/score"
	"github.com/robotalks/simon.go/pkg/sequence"
)

// Session is the mutable game state. Only HighScore survives a power
// cycle, through the score store.
type Session struct {
	Enabled   bool
	Level     int
	HighScore uint32
	Sequence  sequence.Sequence
}

// NewSession creates a disabled session with the high score loaded from
// store.
func NewSession(store score.Store) *Session {
	return &Session{Level: 1, HighScore: score.Load(store)}
}

// IsRecord reports whether completing level beats the high score.
func (s *Session) IsRecord(level int) bool {
	return level > 0 && uint32(level) > s.HighScore
}

// NextLevel advances the level, capped at the sequence capacity.
func (s *Session) NextLevel() {
	if s.Level < sequence.Capacity {
		s.Level++
	}
}
