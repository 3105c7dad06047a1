// Package game implements the Simon game state machine.
package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/simon.go/pkg/framework"
	"github.com/robotalks/simon.go/pkg/hal"
	"github.com/robotalks/simon.go/pkg/input"
	"github.com/robotalks/simon.go/pkg/score"
	"github.com/robotalks/simon.go/pkg/sequence"
)

// Pacing of screens and feedback.
const (
	TogglePause     = time.Second
	LevelBannerTime = time.Second
	GetReadyTime    = 1500 * time.Millisecond
	AttractStep     = 100 * time.Millisecond
	AttractSweeps   = 10
	SuccessTime     = 500 * time.Millisecond
	RecordTime      = 2 * time.Second
	EncourageTime   = 1500 * time.Millisecond
	FailTime        = time.Second
	GameOverTime    = 2 * time.Second
	NextRoundPause  = 400 * time.Millisecond
)

const (
	encourageEvery  = 3
	attractMessages = 2
)

type roundOutcome int

const (
	roundWon roundOutcome = iota
	roundLost
	roundQuit
)

// Controller drives a Session on a board. It runs as a framework
// controller: every loop tick polls the toggle gesture and, when the game
// is enabled, plays until it is switched off.
type Controller struct {
	Board   hal.Board
	Store   score.Store
	Session *Session

	sampler *input.Sampler
	toggle  *input.ToggleDetector
	engine  *sequence.Engine
	rand    *rand.Rand
	state   State
}

// NewController creates a Controller. The high score is loaded from store.
func NewController(b hal.Board, store score.Store, conf *Config) *Controller {
	if conf == nil {
		conf = NewConfig()
	}
	seed := conf.Seed
	if seed == 0 {
		var err error
		if seed, err = newSeed(); err != nil {
			glog.Warningf("%v, seeding from clock", err)
			seed = int64(b.Now())
		}
	}
	rnd := rand.New(rand.NewSource(seed))

	sampler := input.NewSampler(b)
	if conf.PollInterval > 0 {
		sampler.PollInterval = conf.PollInterval
	}
	toggle := input.NewToggleDetector()
	engine := sequence.NewEngine(b, sampler, rnd)
	if conf.ToggleHold > 0 {
		toggle.Hold, engine.QuitHold = conf.ToggleHold, conf.ToggleHold
	}
	engine.ShowTime = conf.ShowTime
	engine.GapTime = conf.GapTime
	engine.PressTime = conf.PressTime

	c := &Controller{
		Board:   b,
		Store:   store,
		Session: NewSession(store),
		sampler: sampler,
		toggle:  toggle,
		engine:  engine,
		rand:    rnd,
	}
	glog.Infof("high score %d", c.Session.HighScore)
	return c
}

// AddToLoop implements framework.LoopAdder.
func (c *Controller) AddToLoop(l *framework.Loop) {
	l.PreRunAt(framework.PrLvTop, framework.ControlFunc(c.powerOn))
	l.AddController(framework.PrLvControl, c)
}

// Control implements framework.Controller.
func (c *Controller) Control(cc framework.ControlContext) error {
	return c.Poll(cc.Context())
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Poll runs one pass of the top-level loop. It blocks while the game is
// enabled and only returns early when ctx is done.
func (c *Controller) Poll(ctx context.Context) error {
	if c.toggle.Check(c.sampler.AllPressed(), c.Board.Now()) {
		c.toggleEnabled()
	}
	if !c.Session.Enabled {
		c.setState(Idle)
		return nil
	}
	return c.play(ctx)
}

func (c *Controller) powerOn(framework.ControlContext) error {
	hal.Play(c.Board, BootChirp...)
	return nil
}

func (c *Controller) setState(s State) {
	if c.state != s {
		glog.V(1).Infof("state %s -> %s", c.state, s)
		c.state = s
	}
}

func (c *Controller) toggleEnabled() {
	c.Session.Enabled = !c.Session.Enabled
	glog.Infof("game enabled: %v", c.Session.Enabled)
	if c.Session.Enabled {
		hal.Play(c.Board, ToggleOnTone)
		hal.ShowLines(c.Board, MsgGameOn)
		c.setState(Armed)
	} else {
		hal.Play(c.Board, ToggleOffTone)
		hal.ShowLines(c.Board, MsgGameOff)
		c.setState(Disabled)
	}
	c.Board.Sleep(TogglePause)
}

// play alternates attract and runs until the quit gesture.
func (c *Controller) play(ctx context.Context) error {
	for {
		if err := c.attract(ctx); err != nil {
			return err
		}
		hal.Play(c.Board, StartMelody...)
		c.Session.Level = 1
		glog.Info("run started")
	run:
		for {
			outcome, err := c.round(ctx)
			if err != nil {
				return err
			}
			switch outcome {
			case roundQuit:
				c.turnOff()
				return nil
			case roundLost:
				break run
			}
		}
	}
}

// attract animates the board until a button is pressed, which starts a
// run. Buttons still held on entry must be released first.
func (c *Controller) attract(ctx context.Context) error {
	c.setState(Armed)
	if err := c.waitAllReleased(ctx); err != nil {
		return err
	}
	for msg := 0; ; msg = (msg + 1) % attractMessages {
		if msg == 0 {
			hal.ShowLines(c.Board, HighScoreLine(c.Session.HighScore), MsgReadyToPlay)
		} else {
			hal.ShowLines(c.Board, MsgPressAnyKey, MsgToStart)
		}
		for n := 0; n < AttractSweeps; n++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			c.sweep()
			if i, ok := c.sampler.Pressed(); ok {
				if err := c.sampler.WaitRelease(ctx, i); err != nil {
					return err
				}
				hal.ShowLines(c.Board, MsgGetReady)
				c.Board.Sleep(GetReadyTime)
				return nil
			}
		}
	}
}

// sweep lights each indicator in turn together with the aux output of
// the mirrored button.
func (c *Controller) sweep() {
	for i := 0; i < hal.ButtonCount; i++ {
		aux := hal.ButtonCount - 1 - i
		c.Board.SetIndicator(i, true)
		c.Board.SetAux(aux, true)
		c.Board.Sleep(AttractStep)
		c.Board.SetIndicator(i, false)
		c.Board.SetAux(aux, false)
	}
}

func (c *Controller) waitAllReleased(ctx context.Context) error {
	for {
		if _, ok := c.sampler.Pressed(); !ok {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		c.Board.Sleep(c.sampler.PollInterval)
	}
}

func (c *Controller) round(ctx context.Context) (roundOutcome, error) {
	c.setState(Playing)
	quit, err := c.sampler.HeldAll(ctx, c.engine.QuitHold)
	if err != nil {
		return roundQuit, err
	}
	if quit {
		return roundQuit, nil
	}

	level := c.Session.Level
	hal.ShowLines(c.Board, LevelLine(level))
	c.Board.Sleep(LevelBannerTime)

	c.engine.Generate(&c.Session.Sequence, level)
	c.engine.Present(&c.Session.Sequence)
	res, err := c.engine.CollectAndValidate(ctx, &c.Session.Sequence)
	if err != nil {
		return roundQuit, err
	}
	switch {
	case res.Quit:
		glog.Infof("quit at level %d move %d", level, res.Index)
		return roundQuit, nil
	case res.Failed:
		glog.Infof("level %d failed at move %d: expected %d got %d", level, res.Index, res.Expected, res.Got)
		c.lose()
		return roundLost, nil
	}
	c.win()
	return roundWon, nil
}

func (c *Controller) win() {
	c.setState(RoundWon)
	c.Board.SetStatus(hal.StatusGreen, true)
	hal.Play(c.Board, SuccessTones...)
	c.Board.Sleep(SuccessTime)
	c.Board.SetStatus(hal.StatusGreen, false)

	level := c.Session.Level
	switch {
	case c.Session.IsRecord(level):
		c.Session.HighScore = uint32(level)
		glog.Infof("new record: %d", level)
		if err := score.Save(c.Store, c.Session.HighScore); err != nil {
			glog.Warningf("%v", err)
		}
		hal.ShowLines(c.Board, MsgNewRecord, MsgMemoryLegend)
		hal.Play(c.Board, RecordTones...)
		c.Board.Sleep(RecordTime)
	case level%encourageEvery == 0:
		hal.ShowLines(c.Board, Encouragements[c.rand.Intn(len(Encouragements))])
		c.Board.Sleep(EncourageTime)
	default:
		c.Board.Clear()
	}

	c.Session.NextLevel()
	c.Board.Sleep(NextRoundPause)
}

func (c *Controller) lose() {
	c.setState(RoundLost)
	c.Board.SetStatus(hal.StatusRed, true)
	hal.Play(c.Board, ErrorTones...)
	c.Board.Sleep(FailTime)
	c.Board.SetStatus(hal.StatusRed, false)
	hal.ShowLines(c.Board, MsgGameOver, MsgTryAgain)
	c.Board.Sleep(GameOverTime)
}

// turnOff disables the game after the quit gesture. The buttons are most
// likely still held, so the toggle gesture is suppressed until released.
func (c *Controller) turnOff() {
	c.Session.Enabled = false
	glog.Info("game turned off")
	hal.ShowLines(c.Board, MsgTurnedOff, MsgReleaseAll)
	c.toggle.Suppress()
	c.setState(Disabled)
}
