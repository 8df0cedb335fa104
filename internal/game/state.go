package game

// Status is the overall game state.
type Status int

const (
	StatusStartScreen Status = iota
	StatusRunning
	StatusGameOver
	StatusWon
)

// String returns a stable name for the status.
func (s Status) String() string {
	switch s {
	case StatusStartScreen:
		return "start_screen"
	case StatusRunning:
		return "running"
	case StatusGameOver:
		return "game_over"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status ends a run.
func (s Status) Terminal() bool {
	return s == StatusGameOver || s == StatusWon
}
