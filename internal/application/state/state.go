package state

// GameState represents the current state of the game
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
	StateCleared
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateCleared:
		return "Cleared"
	default:
		return "Unknown"
	}
}

// Running reports whether the world advances in this state
func (s GameState) Running() bool {
	return s == StatePlaying
}
