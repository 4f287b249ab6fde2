package breakout

import "github.com/vovakirdan/blockbreaker/internal/core"

// Button is a clickable screen button.
type Button struct {
	Label string
	Rect  core.Rect
	Hover bool // Pointer is over the button
}

// Frame is a read-only copy of everything a renderer needs for one frame.
type Frame struct {
	State   State
	Paused  bool
	Session Session
	Theme   Theme

	Width, Height float64 // Logical screen size

	Paddle Paddle
	Ball   Ball
	Blocks []Block

	// Button is START on the menu and PLAY AGAIN on the game over screen.
	Button Button
}

// Frame returns the current render view.
func (g *Game) Frame() Frame {
	f := Frame{
		State:   g.state,
		Paused:  g.paused,
		Session: g.session,
		Theme:   g.theme,
		Width:   g.screenW(),
		Height:  g.screenH(),
		Paddle:  *g.paddle,
		Ball:    *g.ball,
		Blocks:  make([]Block, len(g.board.Blocks)),
	}
	for i, b := range g.board.Blocks {
		f.Blocks[i] = *b
	}

	switch g.state {
	case StateMenu:
		f.Button = g.button(StartText, StartButtonRect(f.Width))
	case StateGameOver:
		f.Button = g.button(PlayAgainText, PlayAgainButtonRect(f.Width))
	}
	return f
}

// button builds a button with hover state from the last pointer position.
func (g *Game) button(label string, r core.Rect) Button {
	return Button{
		Label: label,
		Rect:  r,
		Hover: r.Contains(g.pointer.X, g.pointer.Y),
	}
}
