package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The platform fills it from CLI flags and the terminal/window size.
type RuntimeConfig struct {
	ScreenW  int   // Output width in cells (terminal) or pixels (window)
	ScreenH  int   // Output height in cells (terminal) or pixels (window)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Viewport maps a fixed logical play area onto a grid of terminal cells.
type Viewport struct {
	LogicalW, LogicalH float64
	Cols, Rows         int
}

// NewViewport creates a viewport; zero or negative grid sizes are raised to 1.
func NewViewport(logicalW, logicalH float64, cols, rows int) Viewport {
	return Viewport{
		LogicalW: logicalW,
		LogicalH: logicalH,
		Cols:     Max(cols, 1),
		Rows:     Max(rows, 1),
	}
}

// CellW returns the logical width covered by one cell.
func (v Viewport) CellW() float64 {
	return v.LogicalW / float64(v.Cols)
}

// CellH returns the logical height covered by one cell.
func (v Viewport) CellH() float64 {
	return v.LogicalH / float64(v.Rows)
}

// ToCell converts a logical point to the cell containing it, clamped to the grid.
func (v Viewport) ToCell(x, y float64) (col, row int) {
	col = Clamp(int(x/v.CellW()), 0, v.Cols-1)
	row = Clamp(int(y/v.CellH()), 0, v.Rows-1)
	return col, row
}

// ToLogical converts a cell to the logical point at its center.
func (v Viewport) ToLogical(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * v.CellW(), (float64(row) + 0.5) * v.CellH()
}

// CellRect returns the cell span covering r. Every non-empty rect covers at least one cell.
func (v Viewport) CellRect(r Rect) (x, y, w, h int) {
	x0, y0 := v.ToCell(r.X, r.Y)
	x1, y1 := v.ToCell(r.Right()-0.001, r.Bottom()-0.001)
	return x0, y0, Max(x1-x0+1, 1), Max(y1-y0+1, 1)
}

// GameState summarizes the game for the platform after each tick.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level, starting at 1
	Lives    int  // Remaining lives
	GameOver bool // Whether the session has ended
	Paused   bool // Whether play is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
