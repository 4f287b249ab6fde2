package breakout

// State is the screen the game is on.
type State int

const (
	StateMenu     State = iota // Title screen with the START button
	StatePlaying               // A session is in progress
	StateGameOver              // Session ended; stats and PLAY AGAIN
)

// String returns the state name used in logs.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Session holds the counters for one play-through. They are reset together
// when a session starts and survive the return to the menu.
type Session struct {
	Score           int
	Level           int
	Lives           int
	BlocksDestroyed int
}

// NewSession returns the counters for a fresh play-through.
func NewSession(lives int) Session {
	return Session{
		Score:           0,
		Level:           1,
		Lives:           lives,
		BlocksDestroyed: 0,
	}
}
