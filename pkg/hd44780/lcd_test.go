package hd44780

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
)

type nibble struct {
	rs   bool
	bits byte
}

// bus latches the data lines on the falling edge of E, like the module.
type bus struct {
	rs      gpio.Level
	e       gpio.Level
	data    [4]gpio.Level
	nibbles []nibble
	fail    error
}

type busPin struct {
	b   *bus
	set func(gpio.Level)
}

func (p *busPin) Out(l gpio.Level) error {
	if p.b.fail != nil {
		return p.b.fail
	}
	p.set(l)
	return nil
}

func newBus() (*bus, *LCD) {
	b := &bus{}
	rs := &busPin{b: b, set: func(l gpio.Level) { b.rs = l }}
	e := &busPin{b: b, set: func(l gpio.Level) {
		if b.e == gpio.High && l == gpio.Low {
			var n byte
			for i, d := range b.data {
				if d == gpio.High {
					n |= 1 << uint(i)
				}
			}
			b.nibbles = append(b.nibbles, nibble{rs: bool(b.rs), bits: n})
		}
		b.e = l
	}}
	var data [4]Pin
	for i := range data {
		i := i
		data[i] = &busPin{b: b, set: func(l gpio.Level) { b.data[i] = l }}
	}
	lcd := New(rs, e, data, 2, 16)
	lcd.Delay = func(time.Duration) {}
	return b, lcd
}

// bytes joins nibble pairs starting at from.
func (b *bus) bytes(from int) []nibble {
	var out []nibble
	for i := from; i+1 < len(b.nibbles); i += 2 {
		out = append(out, nibble{
			rs:   b.nibbles[i].rs,
			bits: b.nibbles[i].bits<<4 | b.nibbles[i+1].bits,
		})
	}
	return out
}

func TestInit(t *testing.T) {
	b, lcd := newBus()
	require.NoError(t, lcd.Init())
	require.Len(t, b.nibbles, 4+2*4)
	for i, n := range []byte{0x03, 0x03, 0x03, 0x02} {
		assert.Equal(t, nibble{bits: n}, b.nibbles[i])
	}
	assert.Equal(t, []nibble{
		{bits: 0x28},
		{bits: 0x0c},
		{bits: 0x01},
		{bits: 0x06},
	}, b.bytes(4))
}

func TestCursorAndText(t *testing.T) {
	b, lcd := newBus()
	require.NoError(t, lcd.SetCursor(1, 2))
	require.NoError(t, lcd.WriteString("Hi"))
	require.NoError(t, lcd.SetCursor(0, 0))
	assert.Equal(t, []nibble{
		{bits: 0xc2},
		{rs: true, bits: 'H'},
		{rs: true, bits: 'i'},
		{bits: 0x80},
	}, b.bytes(0))
}

func TestPinError(t *testing.T) {
	b, lcd := newBus()
	b.fail = errors.New("gpio busy")
	assert.EqualError(t, lcd.Init(), "gpio busy")
	assert.EqualError(t, lcd.WriteString("x"), "gpio busy")
}

func TestDefaultDelay(t *testing.T) {
	_, lcd := newBus()
	lcd.Delay = nil
	start := time.Now()
	require.NoError(t, lcd.Clear())
	assert.GreaterOrEqual(t, time.Since(start), 2*time.Millisecond)
}
