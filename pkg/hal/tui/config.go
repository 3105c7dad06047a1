package tui

import (
	"flag"
	"time"
)

// Config defines key hold durations.
type Config struct {
	KeyHold time.Duration
	AllHold time.Duration
}

var defaultConfig = Config{
	KeyHold: 250 * time.Millisecond,
	AllHold: 1500 * time.Millisecond,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.DurationVar(&defaultConfig.KeyHold, "key-hold", defaultConfig.KeyHold, "How long a key press holds a button.")
	flag.DurationVar(&defaultConfig.AllHold, "all-hold", defaultConfig.AllHold, "How long space holds all buttons.")
}

// NewConfig creates a Config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewBoard creates a Board from the config.
func (c *Config) NewBoard() *Board {
	return NewBoard(c.KeyHold, c.AllHold)
}
