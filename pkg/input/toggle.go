package input

import "time"

// DefaultToggleHold is how long all buttons must be held to toggle.
const DefaultToggleHold = time.Second

// ToggleDetector detects the enable/disable gesture: all buttons held
// continuously for Hold. It fires once per hold; all buttons must be
// released before it can fire again.
type ToggleDetector struct {
	Hold time.Duration

	holding bool
	since   time.Duration
	latched bool
}

// NewToggleDetector creates a detector with DefaultToggleHold.
func NewToggleDetector() *ToggleDetector {
	return &ToggleDetector{Hold: DefaultToggleHold}
}

// Check feeds one sample taken at now and reports whether the gesture
// fired on this sample.
func (d *ToggleDetector) Check(allPressed bool, now time.Duration) bool {
	if !allPressed {
		d.holding, d.latched = false, false
		return false
	}
	if d.latched {
		return false
	}
	if !d.holding {
		d.holding, d.since = true, now
		return false
	}
	if now-d.since >= d.Hold {
		d.holding, d.latched = false, true
		return true
	}
	return false
}

// Suppress prevents firing until all buttons have been released.
func (d *ToggleDetector) Suppress() {
	d.holding, d.latched = false, true
}

// Holding reports whether a hold is being timed.
func (d *ToggleDetector) Holding() bool {
	return d.holding
}
