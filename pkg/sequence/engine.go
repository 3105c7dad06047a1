package sequence

import (
	"context"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/simon.go/pkg/hal"
	"github.com/robotalks/simon.go/pkg/input"
)

// Default timings.
const (
	DefaultShowTime  = 300 * time.Millisecond
	DefaultGapTime   = 120 * time.Millisecond
	DefaultPressTime = 150 * time.Millisecond
)

// Rand is the random source used to draw moves.
type Rand interface {
	Intn(n int) int
}

// Board is what the engine needs from the peripherals.
type Board interface {
	hal.Outputs
	hal.Clock
}

// Result is the outcome of collecting a sequence from the player.
type Result struct {
	// Quit is set when the player held all buttons to turn the game off.
	Quit bool
	// Failed is set on the first mismatching move.
	Failed bool
	// Index is the position of the mismatch.
	Index int
	// Expected and Got are the moves at Index.
	Expected Move
	Got      Move
}

// Success reports whether every move matched.
func (r Result) Success() bool {
	return !r.Quit && !r.Failed
}

// Engine generates, presents and validates sequences.
type Engine struct {
	Board Board
	Input *input.Sampler
	Rand  Rand

	ShowTime  time.Duration
	GapTime   time.Duration
	PressTime time.Duration
	QuitHold  time.Duration
}

// NewEngine creates an Engine with default timings.
func NewEngine(b Board, in *input.Sampler, rnd Rand) *Engine {
	return &Engine{
		Board:     b,
		Input:     in,
		Rand:      rnd,
		ShowTime:  DefaultShowTime,
		GapTime:   DefaultGapTime,
		PressTime: DefaultPressTime,
		QuitHold:  input.DefaultToggleHold,
	}
}

// Generate replaces the whole sequence with level freshly drawn moves.
// Nothing of the previous round is kept. level is clamped to [1, Capacity].
func (e *Engine) Generate(seq *Sequence, level int) {
	if level < 1 {
		level = 1
	} else if level > Capacity {
		level = Capacity
	}
	seq.Reset()
	for i := 0; i < level; i++ {
		seq.Append(e.draw())
	}
	glog.V(2).Infof("generated level %d: %s", level, seq)
}

// Extend appends one random move.
func (e *Engine) Extend(seq *Sequence) error {
	return seq.Append(e.draw())
}

func (e *Engine) draw() Move {
	return Move(e.Rand.Intn(hal.ButtonCount))
}

// Present flashes every move in order.
func (e *Engine) Present(seq *Sequence) {
	for i := 0; i < seq.Len(); i++ {
		m := int(seq.At(i))
		e.Board.SetIndicator(m, true)
		e.Board.Sleep(e.ShowTime)
		e.Board.SetIndicator(m, false)
		e.Board.Sleep(e.GapTime)
	}
}

// Feedback lights the indicator and the aux output of button i for
// PressTime.
func (e *Engine) Feedback(i int) {
	e.Board.SetIndicator(i, true)
	e.Board.SetAux(i, true)
	e.Board.Sleep(e.PressTime)
	e.Board.SetIndicator(i, false)
	e.Board.SetAux(i, false)
}

// CollectAndValidate reads the player's moves one at a time and compares
// them with seq. It stops at the first mismatch. Before each move it
// checks the quit gesture; a wait already in progress is not interrupted
// by it.
func (e *Engine) CollectAndValidate(ctx context.Context, seq *Sequence) (Result, error) {
	for i := 0; i < seq.Len(); i++ {
		quit, err := e.Input.HeldAll(ctx, e.QuitHold)
		if err != nil {
			return Result{}, err
		}
		if quit {
			return Result{Quit: true, Index: i}, nil
		}
		p, err := e.Input.WaitPress(ctx)
		if err != nil {
			return Result{}, err
		}
		e.Feedback(p)
		expected := seq.At(i)
		glog.V(2).Infof("move %d: expected %d got %d", i, expected, p)
		if Move(p) != expected {
			return Result{Failed: true, Index: i, Expected: expected, Got: Move(p)}, nil
		}
	}
	return Result{}, nil
}
