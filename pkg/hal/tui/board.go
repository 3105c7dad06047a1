// Package tui simulates the game board in a terminal.
//
// Keys 1 to 4 press a button for KeyHold, space (or 0) presses all four
// for AllHold, q or Esc quits.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/robotalks/simon.go/pkg/framework"
	"github.com/robotalks/simon.go/pkg/hal"
)

var buttonColors = [hal.ButtonCount]string{"red", "green", "blue", "yellow"}

// Board implements hal.Board with a tview application. Game code and the
// UI goroutine only share the mutex-guarded state.
type Board struct {
	hal.Clock

	KeyHold time.Duration
	AllHold time.Duration

	app    *tview.Application
	lcd    *tview.TextView
	panel  *tview.TextView
	help   *tview.TextView
	layout *tview.Flex

	mu         sync.Mutex
	heldUntil  [hal.ButtonCount]time.Duration
	indicators [hal.ButtonCount]bool
	aux        [hal.ButtonCount]bool
	status     [2]bool
	screen     [hal.DisplayRows][hal.DisplayColumns]byte
	tone       int
	running    bool
	pending    bool
}

// NewBoard creates the board and its widgets.
func NewBoard(keyHold, allHold time.Duration) *Board {
	b := &Board{
		Clock:   hal.NewSystemClock(),
		KeyHold: keyHold,
		AllHold: allHold,
		app:     tview.NewApplication(),
		lcd: tview.NewTextView().
			SetWrap(false).
			SetTextAlign(tview.AlignCenter),
		panel: tview.NewTextView().
			SetDynamicColors(true).
			SetWrap(false).
			SetTextAlign(tview.AlignCenter),
		help: tview.NewTextView().
			SetText("1-4 press  space hold all  q quit").
			SetTextAlign(tview.AlignCenter),
		layout: tview.NewFlex().
			SetDirection(tview.FlexRow),
	}
	b.clearScreen()
	b.lcd.SetBorder(true).SetTitle(" Simon ")
	b.lcd.SetTextColor(tcell.ColorBlack)
	b.lcd.SetBackgroundColor(tcell.ColorGreenYellow)
	b.help.SetTextColor(tcell.ColorDarkGrey)
	b.layout.
		AddItem(b.lcd, hal.DisplayRows+2, 0, false).
		AddItem(b.panel, 3, 0, false).
		AddItem(b.help, 1, 0, false)
	b.app.SetRoot(b.layout, true)
	b.app.SetInputCapture(b.HandleKey)
	b.render()
	return b
}

// Run implements framework.Runnable. It returns when the user quits or
// ctx is done.
func (b *Board) Run(ctx context.Context) error {
	b.mu.Lock()
	b.running = true
	b.mu.Unlock()
	defer func() {
		b.mu.Lock()
		b.running = false
		b.mu.Unlock()
	}()
	b.queueRender()
	return framework.RunWithContextCancel(ctx, b.app.Stop, b.app.Run)
}

// HandleKey maps keys to button holds.
func (b *Board) HandleKey(ev *tcell.EventKey) *tcell.EventKey {
	switch ev.Key() {
	case tcell.KeyEscape:
		b.app.Stop()
		return nil
	case tcell.KeyRune:
	default:
		return ev
	}
	switch r := ev.Rune(); {
	case r >= '1' && r <= '4':
		b.hold(1<<uint(r-'1'), b.KeyHold)
	case r == ' ' || r == '0':
		b.hold(1<<hal.ButtonCount-1, b.AllHold)
	case r == 'q':
		b.app.Stop()
	default:
		return ev
	}
	return nil
}

func (b *Board) hold(mask uint, d time.Duration) {
	until := b.Now() + d
	b.mu.Lock()
	for i := range b.heldUntil {
		if mask&(1<<uint(i)) != 0 {
			b.heldUntil[i] = until
		}
	}
	b.mu.Unlock()
}

// ButtonPressed implements hal.Buttons.
func (b *Board) ButtonPressed(i int) bool {
	now := b.Now()
	b.mu.Lock()
	defer b.mu.Unlock()
	return now < b.heldUntil[i]
}

// SetIndicator implements hal.Outputs.
func (b *Board) SetIndicator(i int, on bool) {
	b.update(func() { b.indicators[i] = on })
}

// SetAux implements hal.Outputs.
func (b *Board) SetAux(i int, on bool) {
	b.update(func() { b.aux[i] = on })
}

// SetStatus implements hal.Outputs.
func (b *Board) SetStatus(l hal.StatusLight, on bool) {
	b.update(func() { b.status[l] = on })
}

// Clear implements hal.Display.
func (b *Board) Clear() {
	b.update(b.clearScreen)
}

// Print implements hal.Display.
func (b *Board) Print(row, col int, text string) {
	if row < 0 || row >= hal.DisplayRows {
		return
	}
	b.update(func() {
		for n := 0; n < len(text) && col+n < hal.DisplayColumns; n++ {
			if col+n >= 0 {
				b.screen[row][col+n] = text[n]
			}
		}
	})
}

// Tone implements hal.Buzzer. The tone is shown while it lasts.
func (b *Board) Tone(d time.Duration, hz int) {
	b.update(func() { b.tone = hz })
	b.Sleep(d)
	b.update(func() { b.tone = 0 })
}

// Lines returns the display content.
func (b *Board) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	lines := make([]string, hal.DisplayRows)
	for r := range b.screen {
		lines[r] = string(b.screen[r][:])
	}
	return lines
}

func (b *Board) update(fn func()) {
	b.mu.Lock()
	fn()
	queue := b.running && !b.pending
	if queue {
		b.pending = true
	}
	b.mu.Unlock()
	if queue {
		b.app.QueueUpdateDraw(b.render)
	}
}

func (b *Board) queueRender() {
	b.mu.Lock()
	b.pending = true
	b.mu.Unlock()
	b.app.QueueUpdateDraw(b.render)
}

func (b *Board) clearScreen() {
	for r := range b.screen {
		for c := range b.screen[r] {
			b.screen[r][c] = ' '
		}
	}
}

// render runs on the UI goroutine.
func (b *Board) render() {
	b.mu.Lock()
	b.pending = false
	lcd := make([]string, hal.DisplayRows)
	for r := range b.screen {
		lcd[r] = string(b.screen[r][:])
	}
	var panel strings.Builder
	for i := 0; i < hal.ButtonCount; i++ {
		led := "[gray]o[-]"
		if b.indicators[i] {
			led = fmt.Sprintf("[%s::b]@[-::-]", buttonColors[i])
		}
		aux := " "
		if b.aux[i] {
			aux = "[white]*[-]"
		}
		fmt.Fprintf(&panel, " %d:%s%s ", i+1, led, aux)
	}
	panel.WriteString("\n")
	if b.status[hal.StatusRed] {
		panel.WriteString("[red::b]FAIL[-::-] ")
	}
	if b.status[hal.StatusGreen] {
		panel.WriteString("[green::b]OK[-::-] ")
	}
	if b.tone > 0 {
		fmt.Fprintf(&panel, "[yellow]~%dHz[-]", b.tone)
	}
	b.mu.Unlock()

	b.lcd.SetText(strings.Join(lcd, "\n"))
	b.panel.SetText(panel.String())
}
