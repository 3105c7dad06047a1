package rpi

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/robotalks/simon.go/pkg/hal"
)

// PinMap names the GPIO lines (as known to gpioreg, e.g. "GPIO17") wired
// to each role. Buttons are active low with pull-ups.
type PinMap struct {
	Buttons    []string `yaml:"buttons"`
	Indicators []string `yaml:"indicators"`
	Aux        []string `yaml:"aux"`
	Red        string   `yaml:"red"`
	Green      string   `yaml:"green"`
	Piezo      string   `yaml:"piezo"`
	LCD        LCDPins  `yaml:"lcd"`
}

// LCDPins wires an HD44780 in 4-bit mode.
type LCDPins struct {
	RS   string   `yaml:"rs"`
	E    string   `yaml:"e"`
	Data []string `yaml:"data"`
}

// DefaultPinMap returns the stock wiring.
func DefaultPinMap() *PinMap {
	return &PinMap{
		Buttons:    []string{"GPIO5", "GPIO6", "GPIO13", "GPIO19"},
		Indicators: []string{"GPIO17", "GPIO27", "GPIO22", "GPIO23"},
		Aux:        []string{"GPIO24", "GPIO25", "GPIO12", "GPIO16"},
		Red:        "GPIO20",
		Green:      "GPIO21",
		Piezo:      "GPIO18",
		LCD: LCDPins{
			RS:   "GPIO26",
			E:    "GPIO4",
			Data: []string{"GPIO7", "GPIO8", "GPIO9", "GPIO10"},
		},
	}
}

// LoadPinMap reads a YAML pin map over the defaults. An empty path yields
// the defaults.
func LoadPinMap(path string) (*PinMap, error) {
	pm := DefaultPinMap()
	if path == "" {
		return pm, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pin map: %w", err)
	}
	if err = yaml.Unmarshal(data, pm); err != nil {
		return nil, fmt.Errorf("parse pin map %s: %w", path, err)
	}
	if err = pm.Validate(); err != nil {
		return nil, err
	}
	return pm, nil
}

// Validate checks every role has the expected number of lines and no line
// is used twice.
func (pm *PinMap) Validate() error {
	groups := []struct {
		name  string
		pins  []string
		count int
	}{
		{"buttons", pm.Buttons, hal.ButtonCount},
		{"indicators", pm.Indicators, hal.ButtonCount},
		{"aux", pm.Aux, hal.ButtonCount},
		{"lcd.data", pm.LCD.Data, 4},
		{"red", []string{pm.Red}, 1},
		{"green", []string{pm.Green}, 1},
		{"piezo", []string{pm.Piezo}, 1},
		{"lcd.rs", []string{pm.LCD.RS}, 1},
		{"lcd.e", []string{pm.LCD.E}, 1},
	}
	used := make(map[string]string)
	for _, g := range groups {
		if len(g.pins) != g.count {
			return fmt.Errorf("pin map: %s needs %d pins, got %d", g.name, g.count, len(g.pins))
		}
		for _, p := range g.pins {
			if p == "" {
				return fmt.Errorf("pin map: %s has an empty pin", g.name)
			}
			if other, ok := used[p]; ok {
				return fmt.Errorf("pin map: %s used by both %s and %s", p, other, g.name)
			}
			used[p] = g.name
		}
	}
	return nil
}

// Config defines the Raspberry Pi board.
type Config struct {
	// PinFile is a YAML pin map, empty for the stock wiring.
	PinFile string
}

var defaultConfig Config

func init() {
	defaultConfig.PinFile = os.Getenv("SIMON_PINS")
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.PinFile, "pins", defaultConfig.PinFile, "YAML pin map file.")
}

// NewConfig creates a Config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Open loads the pin map and opens the board.
func (c *Config) Open() (*Board, error) {
	pm, err := LoadPinMap(c.PinFile)
	if err != nil {
		return nil, err
	}
	return Open(pm)
}
