package game

// State is the phase the controller is in.
type State int

// States.
const (
	// Idle polls the toggle gesture with the game disabled.
	Idle State = iota
	// Armed runs the attract animation until a button starts a run.
	Armed
	// Playing presents a level and collects the player's moves.
	Playing
	// RoundWon celebrates a completed level.
	RoundWon
	// RoundLost shows the game over screen.
	RoundLost
	// Disabled is entered when the game is switched off.
	Disabled
)

var stateNames = [...]string{
	Idle:      "Idle",
	Armed:     "Armed",
	Playing:   "Playing",
	RoundWon:  "RoundWon",
	RoundLost: "RoundLost",
	Disabled:  "Disabled",
}

// String implements fmt.Stringer.
func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}
