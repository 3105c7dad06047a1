// Package virtual provides a deterministic board driven by a virtual clock.
//
// Time only advances through Sleep and Tone, so timing-sensitive game logic
// runs instantly and reproducibly. Button activity comes from queued holds
// and, when the queue is empty, from an optional Script consulted whenever
// the buttons are sampled while nothing is held.
package virtual

import (
	"strings"
	"time"

	"github.com/robotalks/simon.go/pkg/hal"
)

// Default timings of scripted holds.
const (
	DefaultPressTime  = 50 * time.Millisecond
	DefaultReleaseGap = 20 * time.Millisecond
)

// Hold describes buttons held together for a duration.
type Hold struct {
	Mask     uint8
	Duration time.Duration
}

// Press holds a single button for DefaultPressTime.
func Press(i int) Hold {
	return Hold{Mask: 1 << uint(i), Duration: DefaultPressTime}
}

// HoldAll holds every button for d.
func HoldAll(d time.Duration) Hold {
	return Hold{Mask: 1<<hal.ButtonCount - 1, Duration: d}
}

// Script supplies the next hold when the buttons are sampled while idle.
// Returning false leaves all buttons released.
type Script func(b *Board) (Hold, bool)

// EventKind classifies recorded output events.
type EventKind int

// Event kinds.
const (
	EventIndicator EventKind = iota
	EventAux
	EventStatus
	EventClear
	EventPrint
	EventTone
	EventHold
)

// Event is a recorded board interaction.
type Event struct {
	At       time.Duration
	Kind     EventKind
	Index    int
	On       bool
	Row, Col int
	Text     string
	Hz       int
	Duration time.Duration
}

// Board implements hal.Board on a virtual clock.
type Board struct {
	Script     Script
	ReleaseGap time.Duration

	now     time.Duration
	queue   []Hold
	active  Hold
	until   time.Duration
	restAt  time.Duration
	holding bool

	indicators [hal.ButtonCount]bool
	aux        [hal.ButtonCount]bool
	status     [2]bool
	screen     [hal.DisplayRows][hal.DisplayColumns]byte
	events     []Event
}

// New creates a Board with a blank display.
func New() *Board {
	b := &Board{ReleaseGap: DefaultReleaseGap}
	b.clearScreen()
	return b
}

// Queue appends holds to be played before the Script is consulted.
func (b *Board) Queue(holds ...Hold) *Board {
	b.queue = append(b.queue, holds...)
	return b
}

// Events returns all recorded events.
func (b *Board) Events() []Event {
	return b.events
}

// Prints returns the trimmed text of all print events in order.
func (b *Board) Prints() []string {
	var out []string
	for _, ev := range b.events {
		if ev.Kind == EventPrint {
			out = append(out, strings.TrimSpace(ev.Text))
		}
	}
	return out
}

// Line returns the trimmed content of a display row.
func (b *Board) Line(row int) string {
	return strings.TrimRight(string(b.screen[row][:]), " ")
}

// Indicator reports the indicator state of button i.
func (b *Board) Indicator(i int) bool {
	return b.indicators[i]
}

// Status reports a status LED state.
func (b *Board) Status(l hal.StatusLight) bool {
	return b.status[l]
}

// ButtonPressed implements hal.Buttons.
func (b *Board) ButtonPressed(i int) bool {
	b.update()
	return b.holding && b.active.Mask&(1<<uint(i)) != 0
}

func (b *Board) update() {
	if b.holding && b.now >= b.until {
		b.holding = false
		b.restAt = b.until + b.ReleaseGap
	}
	if b.holding || b.now < b.restAt {
		return
	}
	var (
		h  Hold
		ok bool
	)
	if len(b.queue) > 0 {
		h, b.queue, ok = b.queue[0], b.queue[1:], true
	} else if b.Script != nil {
		h, ok = b.Script(b)
	}
	if ok && h.Mask != 0 {
		b.active, b.until, b.holding = h, b.now+h.Duration, true
		b.record(Event{Kind: EventHold, Index: int(h.Mask), Duration: h.Duration})
	}
}

// SetIndicator implements hal.Outputs.
func (b *Board) SetIndicator(i int, on bool) {
	b.indicators[i] = on
	b.record(Event{Kind: EventIndicator, Index: i, On: on})
}

// SetAux implements hal.Outputs.
func (b *Board) SetAux(i int, on bool) {
	b.aux[i] = on
	b.record(Event{Kind: EventAux, Index: i, On: on})
}

// SetStatus implements hal.Outputs.
func (b *Board) SetStatus(l hal.StatusLight, on bool) {
	b.status[l] = on
	b.record(Event{Kind: EventStatus, Index: int(l), On: on})
}

// Clear implements hal.Display.
func (b *Board) Clear() {
	b.clearScreen()
	b.record(Event{Kind: EventClear})
}

// Print implements hal.Display.
func (b *Board) Print(row, col int, text string) {
	if row >= 0 && row < hal.DisplayRows {
		for n := 0; n < len(text) && col+n < hal.DisplayColumns; n++ {
			if col+n >= 0 {
				b.screen[row][col+n] = text[n]
			}
		}
	}
	b.record(Event{Kind: EventPrint, Row: row, Col: col, Text: text})
}

// Tone implements hal.Buzzer. The clock advances by d.
func (b *Board) Tone(d time.Duration, hz int) {
	b.record(Event{Kind: EventTone, Hz: hz, Duration: d})
	b.now += d
}

// Now implements hal.Clock.
func (b *Board) Now() time.Duration {
	return b.now
}

// Sleep implements hal.Clock.
func (b *Board) Sleep(d time.Duration) {
	b.now += d
}

func (b *Board) clearScreen() {
	for r := range b.screen {
		for c := range b.screen[r] {
			b.screen[r][c] = ' '
		}
	}
}

func (b *Board) record(ev Event) {
	ev.At = b.now
	b.events = append(b.events, ev)
}
