package rpi

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"

	"github.com/robotalks/simon.go/pkg/hal"
	"github.com/robotalks/simon.go/pkg/hd44780"
)

type fakeClock struct {
	now    time.Duration
	sleeps int
}

func (c *fakeClock) Now() time.Duration { return c.now }
func (c *fakeClock) Sleep(d time.Duration) {
	c.now += d
	c.sleeps++
}

type testPins struct {
	buttons, indicators, aux [hal.ButtonCount]*gpiotest.Pin
	red, green, piezo        *gpiotest.Pin
}

func newTestBoard(t *testing.T, withLCD bool) (*Board, *testPins, *fakeClock) {
	tp := &testPins{
		red:   &gpiotest.Pin{N: "red", L: gpio.High},
		green: &gpiotest.Pin{N: "green", L: gpio.High},
		piezo: &gpiotest.Pin{N: "piezo"},
	}
	var pins Pins
	for i := 0; i < hal.ButtonCount; i++ {
		tp.buttons[i] = &gpiotest.Pin{N: "button", L: gpio.High}
		tp.indicators[i] = &gpiotest.Pin{N: "indicator", L: gpio.High}
		tp.aux[i] = &gpiotest.Pin{N: "aux"}
		pins.Buttons[i] = tp.buttons[i]
		pins.Indicators[i] = tp.indicators[i]
		pins.Aux[i] = tp.aux[i]
	}
	pins.Red, pins.Green, pins.Piezo = tp.red, tp.green, tp.piezo
	if withLCD {
		var data [4]hd44780.Pin
		for i := range data {
			data[i] = &gpiotest.Pin{N: "data"}
		}
		pins.LCD = hd44780.New(&gpiotest.Pin{N: "rs"}, &gpiotest.Pin{N: "e"}, data, hal.DisplayRows, hal.DisplayColumns)
		pins.LCD.Delay = func(time.Duration) {}
	}
	b, err := NewBoard(pins)
	require.NoError(t, err)
	clock := &fakeClock{}
	b.Clock = clock
	return b, tp, clock
}

func TestNewBoardResetsOutputs(t *testing.T) {
	_, tp, _ := newTestBoard(t, false)
	for i := 0; i < hal.ButtonCount; i++ {
		assert.Equal(t, gpio.Low, tp.indicators[i].L)
	}
	assert.Equal(t, gpio.Low, tp.red.L)
	assert.Equal(t, gpio.Low, tp.green.L)
}

func TestButtonsActiveLow(t *testing.T) {
	b, tp, _ := newTestBoard(t, false)
	for i := 0; i < hal.ButtonCount; i++ {
		assert.False(t, b.ButtonPressed(i))
	}
	tp.buttons[2].L = gpio.Low
	assert.True(t, b.ButtonPressed(2))
	assert.False(t, b.ButtonPressed(1))
}

func TestOutputs(t *testing.T) {
	b, tp, _ := newTestBoard(t, false)
	b.SetIndicator(1, true)
	b.SetAux(3, true)
	b.SetStatus(hal.StatusGreen, true)
	assert.Equal(t, gpio.High, tp.indicators[1].L)
	assert.Equal(t, gpio.Low, tp.indicators[0].L)
	assert.Equal(t, gpio.High, tp.aux[3].L)
	assert.Equal(t, gpio.High, tp.green.L)
	assert.Equal(t, gpio.Low, tp.red.L)

	require.NoError(t, b.Halt())
	assert.Equal(t, gpio.Low, tp.indicators[1].L)
	assert.Equal(t, gpio.Low, tp.green.L)
}

func TestTone(t *testing.T) {
	b, tp, clock := newTestBoard(t, false)
	b.Tone(10*time.Millisecond, 1000)
	assert.Equal(t, 10*time.Millisecond, clock.now)
	assert.Equal(t, 20, clock.sleeps)
	assert.Equal(t, gpio.Low, tp.piezo.L)

	b.Tone(5*time.Millisecond, 0)
	assert.Equal(t, 15*time.Millisecond, clock.now)
}

func TestDisplayWithLCD(t *testing.T) {
	b, _, _ := newTestBoard(t, true)
	b.Clear()
	b.Print(0, 0, "High Score: 12 and more")
	b.Print(1, 20, "ignored")
}

func TestLoadPinMap(t *testing.T) {
	pm, err := LoadPinMap("")
	require.NoError(t, err)
	require.NoError(t, pm.Validate())
	assert.Equal(t, DefaultPinMap(), pm)

	path := filepath.Join(t.TempDir(), "pins.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
buttons: [GPIO2, GPIO3, GPIO14, GPIO15]
piezo: GPIO11
`), 0644))
	pm, err = LoadPinMap(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"GPIO2", "GPIO3", "GPIO14", "GPIO15"}, pm.Buttons)
	assert.Equal(t, "GPIO11", pm.Piezo)
	assert.Equal(t, DefaultPinMap().Indicators, pm.Indicators)
}

func TestPinMapValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*PinMap)
		msg    string
	}{
		{"short buttons", func(pm *PinMap) { pm.Buttons = pm.Buttons[:3] }, "buttons needs 4 pins"},
		{"duplicate", func(pm *PinMap) { pm.Piezo = pm.Red }, "used by both red and piezo"},
		{"empty", func(pm *PinMap) { pm.LCD.E = "" }, "lcd.e has an empty pin"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pm := DefaultPinMap()
			tc.modify(pm)
			err := pm.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestLoadPinMapErrors(t *testing.T) {
	_, err := LoadPinMap(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("aux: [GPIO1]\n"), 0644))
	_, err = LoadPinMap(path)
	assert.Error(t, err)
}
