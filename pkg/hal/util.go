package hal

import (
	"strings"
	"time"

	"github.com/golang/glog"
)

// Note is a tone followed by a silent pause.
type Note struct {
	Hz       int
	Duration time.Duration
	Pause    time.Duration
}

// Play plays notes in order.
func Play(b interface {
	Buzzer
	Clock
}, notes ...Note) {
	for _, n := range notes {
		b.Tone(n.Duration, n.Hz)
		if n.Pause > 0 {
			b.Sleep(n.Pause)
		}
	}
}

// ShowLines clears the display and prints up to DisplayRows lines from
// column 0, each padded to the full width.
func ShowLines(d Display, lines ...string) {
	d.Clear()
	for row, line := range lines {
		if row >= DisplayRows {
			break
		}
		d.Print(row, 0, PadLine(line))
	}
}

// PadLine pads or truncates text to DisplayColumns.
func PadLine(text string) string {
	if len(text) >= DisplayColumns {
		return text[:DisplayColumns]
	}
	return text + strings.Repeat(" ", DisplayColumns-len(text))
}

// SystemClock is a Clock backed by the wall clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a SystemClock starting now.
func NewSystemClock() SystemClock {
	return SystemClock{start: time.Now()}
}

// Now implements Clock.
func (c SystemClock) Now() time.Duration {
	return time.Since(c.start)
}

// Sleep implements Clock.
func (c SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Halt locks the device up after a fatal initialization failure. It never
// returns. When outputs are available the red status LED blinks forever.
func Halt(out interface {
	Outputs
	Clock
}, err error) {
	glog.Errorf("fatal: %v", err)
	glog.Flush()
	if out == nil {
		select {}
	}
	for on := true; ; on = !on {
		out.SetStatus(StatusRed, on)
		out.Sleep(100 * time.Millisecond)
	}
}
