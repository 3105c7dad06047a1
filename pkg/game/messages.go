package game

import "fmt"

// Display texts.
const (
	MsgGameOn       = "Game ON"
	MsgGameOff      = "Game OFF"
	MsgTurnedOff    = "Game Turned Off"
	MsgReleaseAll   = "Release Buttons"
	MsgReadyToPlay  = "Ready to play?"
	MsgPressAnyKey  = "Press any key"
	MsgToStart      = "to start....."
	MsgGetReady     = "Get ready..."
	MsgGameOver     = "Game Over!"
	MsgTryAgain     = "Try Again!"
	MsgNewRecord    = " New Record!"
	MsgMemoryLegend = "Memory Legend!"
)

// Encouragements are shown on every third level that is not a record.
var Encouragements = []string{
	"Nice memory!",
	"Well played!",
	"Awesome!",
	"You're sharp!",
	"Great job!",
	"Memory Master!",
	"You nailed it!",
	"Champion!",
}

// HighScoreLine formats the attract screen score line.
func HighScoreLine(v uint32) string {
	return fmt.Sprintf("High Score: %d", v)
}

// LevelLine formats the level banner.
func LevelLine(level int) string {
	return fmt.Sprintf("Level: %d", level)
}
