// Package input samples the game buttons by polling.
package input

import (
	"context"
	"time"

	"github.com/robotalks/simon.go/pkg/hal"
)

// DefaultPollInterval is the delay between two button scans.
const DefaultPollInterval = 10 * time.Millisecond

// Board is what the sampler needs from the peripherals.
type Board interface {
	hal.Buttons
	hal.Clock
}

// Sampler polls buttons with busy-wait delays.
type Sampler struct {
	Board        Board
	PollInterval time.Duration
}

// NewSampler creates a Sampler with the default poll interval.
func NewSampler(b Board) *Sampler {
	return &Sampler{Board: b, PollInterval: DefaultPollInterval}
}

// Pressed scans buttons in index order and returns the first pressed one.
func (s *Sampler) Pressed() (int, bool) {
	for i := 0; i < hal.ButtonCount; i++ {
		if s.Board.ButtonPressed(i) {
			return i, true
		}
	}
	return -1, false
}

// AllPressed reports whether every button is pressed at this instant.
func (s *Sampler) AllPressed() bool {
	for i := 0; i < hal.ButtonCount; i++ {
		if !s.Board.ButtonPressed(i) {
			return false
		}
	}
	return true
}

// WaitPress blocks until a button is pressed and released again, and
// returns its index. Simultaneous presses resolve to the lowest index.
// The wait is only interrupted by ctx.
func (s *Sampler) WaitPress(ctx context.Context) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return -1, err
		}
		if i, ok := s.Pressed(); ok {
			return i, s.WaitRelease(ctx, i)
		}
		s.Board.Sleep(s.interval())
	}
}

// WaitRelease blocks while button i is pressed.
func (s *Sampler) WaitRelease(ctx context.Context, i int) error {
	for s.Board.ButtonPressed(i) {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Board.Sleep(s.interval())
	}
	return nil
}

// HeldAll checks for an all-buttons hold lasting d. It returns false right
// away unless every button is pressed now; otherwise it polls until the
// hold reaches d (true) or any button is released (false).
func (s *Sampler) HeldAll(ctx context.Context, d time.Duration) (bool, error) {
	if !s.AllPressed() {
		return false, nil
	}
	start := s.Board.Now()
	for s.AllPressed() {
		if s.Board.Now()-start >= d {
			return true, nil
		}
		if err := ctx.Err(); err != nil {
			return false, err
		}
		s.Board.Sleep(s.interval())
	}
	return false, nil
}

func (s *Sampler) interval() time.Duration {
	if s.PollInterval > 0 {
		return s.PollInterval
	}
	return DefaultPollInterval
}
