package breakout

import "math"

// Snapshot contains the complete game state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick            uint64
	State           int
	Paused          bool
	Score           int
	Level           int
	Lives           int
	BlocksDestroyed int

	PaddleX   float64
	BallX     float64
	BallY     float64
	BallDX    float64
	BallDY    float64
	BallSpeed float64 // Speed for new balls this session
	Launched  bool

	// Block visibility, row-major
	BlockData []bool

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	blockData := make([]bool, len(g.board.Blocks))
	for i, block := range g.board.Blocks {
		blockData[i] = block.Visible
	}

	return Snapshot{
		Tick:            g.tickCount,
		State:           int(g.state),
		Paused:          g.paused,
		Score:           g.session.Score,
		Level:           g.session.Level,
		Lives:           g.session.Lives,
		BlocksDestroyed: g.session.BlocksDestroyed,

		PaddleX:   g.paddle.X,
		BallX:     g.ball.X,
		BallY:     g.ball.Y,
		BallDX:    g.ball.DX,
		BallDY:    g.ball.DY,
		BallSpeed: g.ballSpeed,
		Launched:  g.ball.Launched,

		BlockData: blockData,
		RNGState:  g.rng.state,
	}
}

// ApplySnapshot restores game state from a snapshot.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = snap.Tick
	g.state = State(snap.State)
	g.paused = snap.Paused
	g.session = Session{
		Score:           snap.Score,
		Level:           snap.Level,
		Lives:           snap.Lives,
		BlocksDestroyed: snap.BlocksDestroyed,
	}
	g.ballSpeed = snap.BallSpeed

	g.paddle = NewPaddle(g.cfg.Paddle, g.screenW(), g.screenH())
	g.paddle.X = snap.PaddleX

	g.ball = NewBall(g.paddle, g.cfg.Ball, snap.BallSpeed)
	g.ball.X = snap.BallX
	g.ball.Y = snap.BallY
	g.ball.DX = snap.BallDX
	g.ball.DY = snap.BallDY
	g.ball.Launched = snap.Launched

	// Restore block states
	g.board = NewBoard(g.cfg.Board, g.theme.Palette)
	if len(snap.BlockData) == len(g.board.Blocks) {
		for i, visible := range snap.BlockData {
			g.board.Blocks[i].Visible = visible
		}
	}

	g.rng.state = snap.RNGState
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Paused)
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BlocksDestroyed) //#nosec G115 -- hash computation

	for _, f := range []float64{snap.PaddleX, snap.BallX, snap.BallY, snap.BallDX, snap.BallDY, snap.BallSpeed} {
		h = h*31 + math.Float64bits(f)
	}
	h = h*31 + boolBit(snap.Launched)

	for _, v := range snap.BlockData {
		h = h*31 + boolBit(v)
	}

	h = h*31 + snap.RNGState

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
