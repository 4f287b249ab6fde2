// Package breakout implements the block breaker: entities, the block grid,
// the session state machine and terminal rendering.
package breakout

import (
	"github.com/vovakirdan/blockbreaker/internal/config"
	"github.com/vovakirdan/blockbreaker/internal/core"
)

// Block is a single destructible block. Destroyed blocks stay in the board
// with Visible set to false.
type Block struct {
	X, Y          float64
	Width, Height float64
	Color         core.Color
	Visible       bool
}

// Rect returns the block bounds.
func (b *Block) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.Width, b.Height)
}

// CheckCollision reports whether a visible block overlaps the ball.
// It has no side effects; the caller destroys the block and scores it.
func (b *Block) CheckCollision(ball *Ball) bool {
	if !b.Visible {
		return false
	}
	return ball.Circle().OverlapsRect(b.Rect())
}

// Board is the block grid for one level, stored row-major.
type Board struct {
	Rows, Cols int
	Blocks     []*Block
}

// NewBoard lays out a fresh grid with every block visible.
// Row r takes palette[r % len(palette)].
func NewBoard(layout config.BoardConfig, palette []core.Color) *Board {
	board := &Board{
		Rows:   layout.Rows,
		Cols:   layout.Cols,
		Blocks: make([]*Block, 0, layout.Rows*layout.Cols),
	}

	for row := range layout.Rows {
		color := core.ColorWhite
		if len(palette) > 0 {
			color = palette[row%len(palette)]
		}
		for col := range layout.Cols {
			board.Blocks = append(board.Blocks, &Block{
				X:       layout.OffsetLeft + float64(col)*(layout.BlockWidth+layout.Padding),
				Y:       layout.OffsetTop + float64(row)*(layout.BlockHeight+layout.Padding),
				Width:   layout.BlockWidth,
				Height:  layout.BlockHeight,
				Color:   color,
				Visible: true,
			})
		}
	}
	return board
}

// VisibleCount returns the number of blocks still standing.
func (b *Board) VisibleCount() int {
	count := 0
	for _, block := range b.Blocks {
		if block.Visible {
			count++
		}
	}
	return count
}

// AllCleared reports whether every block has been destroyed.
func (b *Board) AllCleared() bool {
	return b.VisibleCount() == 0
}
