package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/robotalks/simon.go/pkg/framework"
	"github.com/robotalks/simon.go/pkg/hal"
	"github.com/robotalks/simon.go/pkg/input"
	"github.com/robotalks/simon.go/pkg/score"
	"github.com/robotalks/simon.go/pkg/sequence"
)

// Config defines the game pacing.
type Config struct {
	ShowTime     time.Duration
	GapTime      time.Duration
	PressTime    time.Duration
	PollInterval time.Duration
	TickInterval time.Duration
	ToggleHold   time.Duration
	// Seed seeds the move generator. 0 draws a random seed.
	Seed int64
}

var defaultConfig = Config{
	ShowTime:     sequence.DefaultShowTime,
	GapTime:      sequence.DefaultGapTime,
	PressTime:    sequence.DefaultPressTime,
	PollInterval: input.DefaultPollInterval,
	TickInterval: framework.DefaultInterval,
	ToggleHold:   input.DefaultToggleHold,
}

func init() {
	if val := os.Getenv("SIMON_SEED"); val != "" {
		if seed, err := strconv.ParseInt(val, 10, 64); err == nil {
			defaultConfig.Seed = seed
		}
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.DurationVar(&defaultConfig.ShowTime, "show-time", defaultConfig.ShowTime, "How long each move is lit.")
	flag.DurationVar(&defaultConfig.GapTime, "gap-time", defaultConfig.GapTime, "Pause between two presented moves.")
	flag.DurationVar(&defaultConfig.PressTime, "press-time", defaultConfig.PressTime, "Feedback duration of a press.")
	flag.DurationVar(&defaultConfig.ToggleHold, "toggle-hold", defaultConfig.ToggleHold, "All-buttons hold to toggle or quit.")
	flag.Int64Var(&defaultConfig.Seed, "seed", defaultConfig.Seed, "Random seed, 0 for a random one.")
}

// NewConfig creates a Config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewController creates a Controller from the config.
func (c *Config) NewController(b hal.Board, store score.Store) *Controller {
	return NewController(b, store, c)
}

// newSeed draws a seed from crypto/rand.
func newSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
