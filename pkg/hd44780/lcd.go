// Package hd44780 drives an HD44780 compatible character LCD in 4-bit mode
// through GPIO pins (periph.io).
package hd44780

import (
	"time"

	"periph.io/x/conn/v3/gpio"
)

// Commands.
const (
	cmdClear        = 0x01
	cmdEntryMode    = 0x04
	cmdDisplayCtl   = 0x08
	cmdFunctionSet  = 0x20
	cmdSetDDRAMAddr = 0x80

	entryIncrement = 0x02
	displayOn      = 0x04
	function2Lines = 0x08
)

var rowOffsets = [...]byte{0x00, 0x40, 0x14, 0x54}

// Pin is an output line wired to the module.
type Pin interface {
	Out(l gpio.Level) error
}

// LCD is a character display wired with RS, E and the upper data lines
// D4 to D7. R/W is expected to be tied low.
type LCD struct {
	RS, E Pin
	Data  [4]Pin // D4..D7

	Rows, Cols int

	// Delay waits between bus operations, time.Sleep if nil.
	Delay func(time.Duration)
}

// New creates an LCD with rows x cols characters.
func New(rs, e Pin, data [4]Pin, rows, cols int) *LCD {
	return &LCD{RS: rs, E: e, Data: data, Rows: rows, Cols: cols}
}

// Init runs the 4-bit initialization by instruction and turns the display
// on with a cleared screen.
func (l *LCD) Init() error {
	l.delay(50 * time.Millisecond)
	if err := l.RS.Out(gpio.Low); err != nil {
		return err
	}
	if err := l.E.Out(gpio.Low); err != nil {
		return err
	}
	for _, wait := range []time.Duration{4500 * time.Microsecond, 4500 * time.Microsecond, 150 * time.Microsecond} {
		if err := l.write4(0x03); err != nil {
			return err
		}
		l.delay(wait)
	}
	if err := l.write4(0x02); err != nil {
		return err
	}
	functions := byte(cmdFunctionSet)
	if l.Rows > 1 {
		functions |= function2Lines
	}
	for _, cmd := range []byte{functions, cmdDisplayCtl | displayOn} {
		if err := l.Command(cmd); err != nil {
			return err
		}
	}
	if err := l.Clear(); err != nil {
		return err
	}
	return l.Command(cmdEntryMode | entryIncrement)
}

// Clear blanks the display and homes the cursor.
func (l *LCD) Clear() error {
	if err := l.Command(cmdClear); err != nil {
		return err
	}
	l.delay(2 * time.Millisecond)
	return nil
}

// SetCursor moves the cursor to row, col.
func (l *LCD) SetCursor(row, col int) error {
	if row < 0 || row >= len(rowOffsets) {
		row = 0
	}
	return l.Command(cmdSetDDRAMAddr | (rowOffsets[row] + byte(col)))
}

// WriteString writes text at the cursor.
func (l *LCD) WriteString(text string) error {
	for i := 0; i < len(text); i++ {
		if err := l.write8(text[i], gpio.High); err != nil {
			return err
		}
	}
	return nil
}

// Command sends an instruction byte.
func (l *LCD) Command(cmd byte) error {
	return l.write8(cmd, gpio.Low)
}

func (l *LCD) write8(b byte, rs gpio.Level) error {
	if err := l.RS.Out(rs); err != nil {
		return err
	}
	if err := l.write4(b >> 4); err != nil {
		return err
	}
	return l.write4(b & 0x0f)
}

func (l *LCD) write4(n byte) error {
	for i, p := range l.Data {
		if err := p.Out(n&(1<<uint(i)) != 0); err != nil {
			return err
		}
	}
	if err := l.E.Out(gpio.High); err != nil {
		return err
	}
	l.delay(time.Microsecond)
	if err := l.E.Out(gpio.Low); err != nil {
		return err
	}
	l.delay(50 * time.Microsecond)
	return nil
}

func (l *LCD) delay(d time.Duration) {
	if l.Delay != nil {
		l.Delay(d)
		return
	}
	time.Sleep(d)
}
