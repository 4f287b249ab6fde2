package breakout

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockbreaker/internal/config"
	"github.com/vovakirdan/blockbreaker/internal/core"
)

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for state transitions and gameplay events.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.log = logger
		}
	}
}

// Game implements the block breaker logic. Step is pure with respect to its
// input: the same seed and input frames always produce the same state.
type Game struct {
	cfg     config.Config
	theme   Theme
	runtime core.RuntimeConfig
	rng     *SimpleRNG
	log     *log.Logger

	// Game state
	state     State
	paused    bool
	session   Session
	ballSpeed float64 // Speed for new balls; grows with each cleared level
	tickCount uint64
	pointer   core.Pointer // Last known pointer position, for hover

	// Game objects
	paddle *Paddle
	ball   *Ball
	board  *Board
}

// New creates a game on the menu screen. The config should already be validated;
// New only fails when its colors cannot be parsed.
func New(cfg config.Config, opts ...Option) (*Game, error) {
	theme, err := NewTheme(cfg)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:   cfg,
		theme: theme,
		log:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.Reset(core.RuntimeConfig{TickRate: cfg.Screen.FPS})
	return g, nil
}

// Reset reseeds the game and returns it to the menu with fresh counters and entities.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = NewSimpleRNG(runtime.Seed)
	g.tickCount = 0
	g.pointer = core.Pointer{}
	g.state = StateMenu
	g.paused = false
	g.newSession()
}

// screenW and screenH return the logical play area size.
func (g *Game) screenW() float64 { return g.cfg.Screen.Width }
func (g *Game) screenH() float64 { return g.cfg.Screen.Height }

// newSession resets the counters and rebuilds the paddle, board and ball.
func (g *Game) newSession() {
	g.session = NewSession(g.cfg.Gameplay.Lives)
	g.ballSpeed = g.cfg.Ball.Speed
	g.paddle = NewPaddle(g.cfg.Paddle, g.screenW(), g.screenH())
	g.board = NewBoard(g.cfg.Board, g.theme.Palette)
	g.respawnBall()
}

// respawnBall places a fresh unlaunched ball on the paddle.
func (g *Game) respawnBall() {
	g.ball = NewBall(g.paddle, g.cfg.Ball, g.ballSpeed)
}

// StartSession resets all session state and begins play.
func (g *Game) StartSession() {
	g.newSession()
	g.paused = false
	g.setState(StatePlaying)
}

// EndSession moves to the game over screen, keeping the counters for display.
func (g *Game) EndSession() {
	g.paused = false
	g.setState(StateGameOver)
}

// ReturnToMenu goes back to the title screen. Counters from the last
// session remain until the next StartSession.
func (g *Game) ReturnToMenu() {
	g.paused = false
	g.setState(StateMenu)
}

// setState switches screens and logs the transition.
func (g *Game) setState(next State) {
	if g.state != next {
		g.log.Info("state change", "from", g.state, "to", next,
			"score", g.session.Score, "level", g.session.Level)
	}
	g.state = next
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tickCount++

	if in.Pointer.Moved || in.Pointer.Clicked {
		g.pointer.X = in.Pointer.X
		g.pointer.Y = in.Pointer.Y
	}

	switch g.state {
	case StateMenu:
		if in.Has(core.ActionConfirm) || clickedIn(in, StartButtonRect(g.screenW())) {
			g.StartSession()
		}

	case StatePlaying:
		g.stepPlaying(in)

	case StateGameOver:
		switch {
		case in.Has(core.ActionConfirm) || clickedIn(in, PlayAgainButtonRect(g.screenW())):
			g.StartSession()
		case in.Has(core.ActionBack):
			g.ReturnToMenu()
		}
	}

	return core.StepResult{State: g.State()}
}

// clickedIn reports whether the frame has a primary click inside r.
func clickedIn(in core.InputFrame, r core.Rect) bool {
	return in.Pointer.Clicked && r.Contains(in.Pointer.X, in.Pointer.Y)
}

// stepPlaying runs one tick of play: paddle, launch, ball, blocks,
// out-of-bounds and level completion, in that order.
func (g *Game) stepPlaying(in core.InputFrame) {
	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		g.log.Debug("pause toggled", "paused", g.paused)
	}
	if g.paused {
		return
	}

	// Handle paddle movement
	if in.Pointer.Moved {
		g.paddle.SetCenter(in.Pointer.X, g.screenW())
	}
	if in.Has(core.ActionLeft) {
		g.paddle.Move(DirLeft, g.screenW())
	}
	if in.Has(core.ActionRight) {
		g.paddle.Move(DirRight, g.screenW())
	}

	if in.Has(core.ActionLaunch) && !g.ball.Launched {
		g.ball.Launch(g.rng)
		g.log.Debug("ball launched", "dx", g.ball.DX, "dy", g.ball.DY)
	}

	g.ball.Move(g.paddle, g.screenW())

	g.checkBlocks()

	if g.ball.OutOfBounds(g.screenH()) {
		g.handleMiss()
		if g.state != StatePlaying {
			return
		}
	}

	if g.board.AllCleared() {
		g.handleLevelClear()
	}
}

// checkBlocks scans the whole board in row-major order. Every overlapping block
// is destroyed and scored, and each hit flips the vertical velocity, so two hits
// in one tick cancel out on direction but both count.
func (g *Game) checkBlocks() {
	for _, block := range g.board.Blocks {
		if !block.CheckCollision(g.ball) {
			continue
		}
		g.ball.DY = -g.ball.DY
		block.Visible = false
		g.session.Score += g.cfg.Gameplay.BlockPoints
		g.session.BlocksDestroyed++
	}
}

// handleMiss handles the ball falling past the paddle.
func (g *Game) handleMiss() {
	g.session.Lives--
	g.log.Info("life lost", "lives", g.session.Lives)

	if g.session.Lives <= 0 {
		g.session.Lives = 0
		g.EndSession()
		return
	}
	g.respawnBall()
}

// handleLevelClear moves to the next level with a fresh board and a faster ball.
func (g *Game) handleLevelClear() {
	g.session.Level++
	g.session.Score += g.cfg.Gameplay.LevelBonus
	g.ballSpeed += g.cfg.Ball.SpeedPerLevel
	g.board = NewBoard(g.cfg.Board, g.theme.Palette)
	g.respawnBall()

	g.log.Info("level cleared", "level", g.session.Level, "score", g.session.Score,
		"ball_speed", fmt.Sprintf("%.2f", g.ballSpeed))
}

// Phase returns the current screen.
func (g *Game) Phase() State {
	return g.state
}

// Paused reports whether play is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Session returns a copy of the session counters.
func (g *Game) Session() Session {
	return g.session
}

// Paddle returns the paddle.
func (g *Game) Paddle() *Paddle {
	return g.paddle
}

// Ball returns the ball.
func (g *Game) Ball() *Ball {
	return g.ball
}

// Board returns the current block grid.
func (g *Game) Board() *Board {
	return g.board
}

// Theme returns the parsed color scheme.
func (g *Game) Theme() Theme {
	return g.theme
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score,
		Level:    g.session.Level,
		Lives:    g.session.Lives,
		GameOver: g.state == StateGameOver,
		Paused:   g.paused,
	}
}
