package score

import (
	"flag"
	"log"
	"os"
)

// Config selects the score store.
type Config struct {
	// URL is the store URL, see Open.
	URL string
}

var defaultConfig = Config{
	URL: "flash://simon-flash.bin",
}

func init() {
	if val := os.Getenv("SIMON_SCORE_URL"); val != "" {
		defaultConfig.URL = val
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.URL, "score", defaultConfig.URL, "High score store URL (flash://FILE, sqlite://FILE, mem://).")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Open opens the configured store.
func (c *Config) Open() (Store, error) {
	return Open(c.URL)
}

// MustOpen opens the configured store and fails on error.
func (c *Config) MustOpen() Store {
	s, err := c.Open()
	if err != nil {
		log.Fatalln(err)
	}
	return s
}
