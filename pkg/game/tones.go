package game

import (
	"time"

	"github.com/robotalks/simon.go/pkg/hal"
)

func note(hz int, ms, pauseMs int) hal.Note {
	return hal.Note{
		Hz:       hz,
		Duration: time.Duration(ms) * time.Millisecond,
		Pause:    time.Duration(pauseMs) * time.Millisecond,
	}
}

// Tone sequences.
var (
	BootChirp = []hal.Note{
		note(800, 100, 50),
		note(1000, 100, 50),
		note(1200, 150, 0),
	}

	// StartMelody runs E5 up to C6.
	StartMelody = []hal.Note{
		note(659, 120, 40),
		note(698, 120, 40),
		note(784, 120, 40),
		note(880, 120, 40),
		note(988, 120, 40),
		note(1047, 120, 40),
	}

	SuccessTones = []hal.Note{
		note(1200, 100, 50),
		note(1600, 150, 50),
		note(2000, 200, 0),
	}

	ErrorTones = []hal.Note{
		note(400, 200, 50),
		note(300, 200, 50),
		note(200, 300, 50),
		note(262, 300, 0),
	}

	// RecordTones is C5 E5 G5 C6.
	RecordTones = []hal.Note{
		note(523, 200, 100),
		note(659, 200, 100),
		note(783, 300, 150),
		note(1046, 500, 0),
	}

	ToggleOnTone  = note(1500, 100, 0)
	ToggleOffTone = note(400, 200, 0)
)
