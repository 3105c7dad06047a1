// Package rpi implements the game board on Raspberry Pi GPIO lines using
// periph.io.
package rpi

import (
	"fmt"
	"time"

	"github.com/golang/glog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/robotalks/simon.go/pkg/hal"
	"github.com/robotalks/simon.go/pkg/hd44780"
)

// Pins are the resolved lines of a board.
type Pins struct {
	Buttons    [hal.ButtonCount]gpio.PinIO
	Indicators [hal.ButtonCount]gpio.PinOut
	Aux        [hal.ButtonCount]gpio.PinOut
	Red        gpio.PinOut
	Green      gpio.PinOut
	Piezo      gpio.PinOut
	LCD        *hd44780.LCD
}

// Board implements hal.Board.
type Board struct {
	hal.Clock

	pins Pins
}

// Open initializes the host drivers, resolves the pin map and opens the
// board.
func Open(pm *PinMap) (*Board, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}
	if err := pm.Validate(); err != nil {
		return nil, err
	}
	var (
		pins Pins
		err  error
	)
	byName := func(name string) gpio.PinIO {
		if err != nil {
			return nil
		}
		p := gpioreg.ByName(name)
		if p == nil {
			err = fmt.Errorf("unknown gpio %s", name)
		}
		return p
	}
	for i := 0; i < hal.ButtonCount; i++ {
		pins.Buttons[i] = byName(pm.Buttons[i])
		pins.Indicators[i] = byName(pm.Indicators[i])
		pins.Aux[i] = byName(pm.Aux[i])
	}
	pins.Red = byName(pm.Red)
	pins.Green = byName(pm.Green)
	pins.Piezo = byName(pm.Piezo)
	rs, e := byName(pm.LCD.RS), byName(pm.LCD.E)
	var data [4]hd44780.Pin
	for i := range data {
		data[i] = byName(pm.LCD.Data[i])
	}
	if err != nil {
		return nil, err
	}
	pins.LCD = hd44780.New(rs, e, data, hal.DisplayRows, hal.DisplayColumns)
	return NewBoard(pins)
}

// NewBoard configures pins and initializes the display.
func NewBoard(pins Pins) (*Board, error) {
	for i, p := range pins.Buttons {
		if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return nil, fmt.Errorf("button %d: %w", i, err)
		}
	}
	outs := append(pins.Indicators[:], pins.Aux[:]...)
	outs = append(outs, pins.Red, pins.Green, pins.Piezo)
	for _, p := range outs {
		if err := p.Out(gpio.Low); err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}
	if pins.LCD != nil {
		if err := pins.LCD.Init(); err != nil {
			return nil, fmt.Errorf("lcd init: %w", err)
		}
	}
	return &Board{Clock: hal.NewSystemClock(), pins: pins}, nil
}

// ButtonPressed implements hal.Buttons.
func (b *Board) ButtonPressed(i int) bool {
	return b.pins.Buttons[i].Read() == gpio.Low
}

// SetIndicator implements hal.Outputs.
func (b *Board) SetIndicator(i int, on bool) {
	out(b.pins.Indicators[i], on)
}

// SetAux implements hal.Outputs.
func (b *Board) SetAux(i int, on bool) {
	out(b.pins.Aux[i], on)
}

// SetStatus implements hal.Outputs.
func (b *Board) SetStatus(l hal.StatusLight, on bool) {
	switch l {
	case hal.StatusRed:
		out(b.pins.Red, on)
	case hal.StatusGreen:
		out(b.pins.Green, on)
	}
}

// Clear implements hal.Display.
func (b *Board) Clear() {
	if b.pins.LCD == nil {
		return
	}
	if err := b.pins.LCD.Clear(); err != nil {
		glog.Warningf("lcd clear: %v", err)
	}
}

// Print implements hal.Display.
func (b *Board) Print(row, col int, text string) {
	if b.pins.LCD == nil || col >= hal.DisplayColumns {
		return
	}
	if n := hal.DisplayColumns - col; len(text) > n {
		text = text[:n]
	}
	err := b.pins.LCD.SetCursor(row, col)
	if err == nil {
		err = b.pins.LCD.WriteString(text)
	}
	if err != nil {
		glog.Warningf("lcd print: %v", err)
	}
}

// Tone implements hal.Buzzer by toggling the piezo line for d.
func (b *Board) Tone(d time.Duration, hz int) {
	if hz <= 0 {
		b.Sleep(d)
		return
	}
	half := time.Second / time.Duration(2*hz)
	for cycles := d / (2 * half); cycles > 0; cycles-- {
		out(b.pins.Piezo, true)
		b.Sleep(half)
		out(b.pins.Piezo, false)
		b.Sleep(half)
	}
}

// Halt drives every output low.
func (b *Board) Halt() error {
	var err error
	for _, p := range append(b.pins.Indicators[:], b.pins.Aux[:]...) {
		if e := p.Out(gpio.Low); e != nil && err == nil {
			err = e
		}
	}
	for _, p := range []gpio.PinOut{b.pins.Red, b.pins.Green, b.pins.Piezo} {
		if e := p.Out(gpio.Low); e != nil && err == nil {
			err = e
		}
	}
	return err
}

func out(p gpio.PinOut, on bool) {
	if err := p.Out(gpio.Level(on)); err != nil {
		glog.Warningf("%s: %v", p, err)
	}
}
