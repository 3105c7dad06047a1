// Package hal defines the peripheral adapter consumed by the game.
//
// A board exposes four buttons, each paired with an indicator LED and a
// secondary aux output, two status LEDs, a character display, a buzzer and
// a monotonic clock. Implementations live in sub-packages: virtual (tests),
// tui (terminal simulator) and rpi (GPIO on a Raspberry Pi).
package hal

import "time"

// Board geometry.
const (
	ButtonCount    = 4
	DisplayRows    = 2
	DisplayColumns = 16
)

// StatusLight selects one of the status LEDs.
type StatusLight int

// Status lights.
const (
	StatusRed StatusLight = iota
	StatusGreen
)

// String implements fmt.Stringer.
func (l StatusLight) String() string {
	switch l {
	case StatusRed:
		return "red"
	case StatusGreen:
		return "green"
	}
	return "unknown"
}

// Buttons samples the electrical state of the buttons.
type Buttons interface {
	// ButtonPressed reports whether button i is currently pressed.
	ButtonPressed(i int) bool
}

// Outputs drives the LEDs.
type Outputs interface {
	// SetIndicator switches the indicator LED of button i.
	SetIndicator(i int, on bool)
	// SetAux switches the secondary output paired with button i.
	SetAux(i int, on bool)
	// SetStatus switches a status LED.
	SetStatus(l StatusLight, on bool)
}

// Display is a character display with DisplayRows rows.
type Display interface {
	// Clear blanks the whole display.
	Clear()
	// Print writes text starting at row, col. Text beyond the last
	// column is dropped.
	Print(row, col int, text string)
}

// Buzzer emits tones. Tone blocks for the whole duration.
type Buzzer interface {
	Tone(d time.Duration, hz int)
}

// Clock provides monotonic time and blocking delays.
type Clock interface {
	// Now returns the time elapsed since the board was powered on.
	Now() time.Duration
	// Sleep blocks for d.
	Sleep(d time.Duration)
}

// Board is the full peripheral capability set.
type Board interface {
	Buttons
	Outputs
	Display
	Buzzer
	Clock
}
