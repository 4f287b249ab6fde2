package breakout

import (
	"github.com/vovakirdan/blockbreaker/internal/config"
	"github.com/vovakirdan/blockbreaker/internal/core"
)

// Direction is a horizontal paddle movement.
type Direction int

const (
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// Paddle represents the player's paddle. X, Y is the top-left corner.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // Units per tick
}

// NewPaddle creates a paddle centered horizontally near the bottom of the screen.
func NewPaddle(cfg config.PaddleConfig, screenW, screenH float64) *Paddle {
	return &Paddle{
		X:      (screenW - cfg.Width) / 2,
		Y:      screenH - cfg.BottomOffset,
		Width:  cfg.Width,
		Height: cfg.Height,
		Speed:  cfg.Speed,
	}
}

// Rect returns the paddle bounds.
func (p *Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// CenterX returns the horizontal center of the paddle.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Move shifts the paddle by its speed and clamps it to [0, screenW-Width].
func (p *Paddle) Move(dir Direction, screenW float64) {
	p.X = core.ClampF(p.X+float64(dir)*p.Speed, 0, screenW-p.Width)
}

// SetCenter positions the paddle under a pointer at x, with the same clamp as Move.
func (p *Paddle) SetCenter(x, screenW float64) {
	p.X = core.ClampF(x-p.Width/2, 0, screenW-p.Width)
}

// Ball represents the ball. X, Y is the center.
type Ball struct {
	X, Y     float64
	Radius   float64
	DX, DY   float64 // Velocity per tick, zero until launched
	Speed    float64
	Launched bool

	restOffset float64
	deflection float64
	launchDX   []float64
}

// NewBall creates an unlaunched ball resting on the paddle.
func NewBall(p *Paddle, cfg config.BallConfig, speed float64) *Ball {
	b := &Ball{
		Radius:     cfg.Radius,
		Speed:      speed,
		restOffset: cfg.RestOffset,
		deflection: cfg.Deflection,
		launchDX:   cfg.LaunchDX,
	}
	b.pin(p)
	return b
}

// Circle returns the ball's collision shape.
func (b *Ball) Circle() core.Circle {
	return core.Circle{X: b.X, Y: b.Y, R: b.Radius}
}

// pin places the ball just above the paddle center.
func (b *Ball) pin(p *Paddle) {
	b.X = p.CenterX()
	b.Y = p.Y - b.restOffset
}

// Launch sends a resting ball upward with a random horizontal component.
// It does nothing if the ball is already in flight.
func (b *Ball) Launch(rng *SimpleRNG) {
	if b.Launched {
		return
	}
	b.DX = rng.Pick(b.launchDX)
	b.DY = -b.Speed
	b.Launched = true
}

// Move advances the ball one tick. A resting ball tracks the paddle; a launched
// ball moves by its velocity and bounces off the side walls, the top wall and
// the paddle.
func (b *Ball) Move(p *Paddle, screenW float64) {
	if !b.Launched {
		b.pin(p)
		return
	}

	b.X += b.DX
	b.Y += b.DY

	// Reflections force the sign so a ball overlapping a wall cannot flip twice
	if b.X-b.Radius <= 0 {
		b.DX = core.AbsF(b.DX)
	} else if b.X+b.Radius >= screenW {
		b.DX = -core.AbsF(b.DX)
	}
	if b.Y-b.Radius <= 0 {
		b.DY = core.AbsF(b.DY)
	}

	if b.HitsPaddle(p) {
		b.BounceOffPaddle(p)
	}
}

// HitsPaddle reports whether the ball touches the paddle: the ball's vertical
// extent overlaps the paddle and its center lies within the paddle's width.
func (b *Ball) HitsPaddle(p *Paddle) bool {
	return b.Y+b.Radius >= p.Y &&
		b.Y-b.Radius <= p.Y+p.Height &&
		b.X >= p.X && b.X <= p.X+p.Width
}

// BounceOffPaddle sends the ball upward at an angle set by where it hit:
// the center goes straight up, the edges give ±Deflection/2 × Speed.
func (b *Ball) BounceOffPaddle(p *Paddle) {
	hit := core.ClampF((b.X-p.X)/p.Width, 0, 1)
	b.DX = (hit - 0.5) * b.deflection * b.Speed
	b.DY = -core.AbsF(b.DY)
}

// OutOfBounds reports whether the ball fell below the bottom of the screen.
func (b *Ball) OutOfBounds(screenH float64) bool {
	return b.Y > screenH+b.Radius
}
