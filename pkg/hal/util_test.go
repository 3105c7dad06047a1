package hal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/simon.go/pkg/hal"
	"github.com/robotalks/simon.go/pkg/hal/virtual"
)

func TestPadLine(t *testing.T) {
	require.Equal(t, "Game ON         ", hal.PadLine("Game ON"))
	require.Equal(t, "0123456789abcdef", hal.PadLine("0123456789abcdefXYZ"))
}

func TestShowLines(t *testing.T) {
	b := virtual.New()
	b.Print(1, 0, "leftover text")
	hal.ShowLines(b, "Game Over!", "Try Again!", "ignored")
	require.Equal(t, "Game Over!", b.Line(0))
	require.Equal(t, "Try Again!", b.Line(1))
}

func TestPlay(t *testing.T) {
	b := virtual.New()
	hal.Play(b,
		hal.Note{Hz: 800, Duration: 100 * time.Millisecond, Pause: 50 * time.Millisecond},
		hal.Note{Hz: 1200, Duration: 150 * time.Millisecond},
	)
	require.Equal(t, 300*time.Millisecond, b.Now())
	var hz []int
	for _, ev := range b.Events() {
		hz = append(hz, ev.Hz)
	}
	require.Equal(t, []int{800, 1200}, hz)
}
