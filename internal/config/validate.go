package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/blockbreaker/internal/core"
)

// Validate rejects configurations the game cannot run with.
// All problems are reported together.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen size must be positive, got %vx%v", c.Screen.Width, c.Screen.Height)
	check(c.Screen.FPS > 0, "fps must be positive, got %d", c.Screen.FPS)

	check(c.Paddle.Width > 0 && c.Paddle.Height > 0, "paddle size must be positive")
	check(c.Paddle.Width <= c.Screen.Width, "paddle width %v exceeds screen width %v", c.Paddle.Width, c.Screen.Width)
	check(c.Paddle.Speed > 0, "paddle speed must be positive")
	check(c.Paddle.BottomOffset >= c.Paddle.Height && c.Paddle.BottomOffset < c.Screen.Height,
		"paddle bottom_offset must be in [paddle height, screen height)")

	check(c.Ball.Radius > 0, "ball radius must be positive")
	check(c.Ball.Speed > 0, "ball speed must be positive")
	check(c.Ball.SpeedPerLevel >= 0, "ball speed_per_level must not be negative")
	check(c.Ball.Deflection >= 0, "ball deflection must not be negative")
	check(len(c.Ball.LaunchDX) > 0, "ball launch_dx must not be empty")

	b := c.Board
	check(b.Rows > 0 && b.Cols > 0, "board must have at least one row and column, got %dx%d", b.Rows, b.Cols)
	check(b.BlockWidth > 0 && b.BlockHeight > 0, "block size must be positive")
	check(b.Padding >= 0 && b.OffsetTop >= 0 && b.OffsetLeft >= 0, "board padding and offsets must not be negative")
	gridW := b.OffsetLeft + float64(b.Cols)*(b.BlockWidth+b.Padding)
	check(gridW <= c.Screen.Width, "board is %v wide, wider than the screen (%v)", gridW, c.Screen.Width)
	gridBottom := b.OffsetTop + float64(b.Rows)*(b.BlockHeight+b.Padding)
	check(gridBottom < c.Screen.Height-c.Paddle.BottomOffset, "board reaches the paddle row")
	check(len(b.Palette) > 0, "board palette must not be empty")
	for i, hex := range b.Palette {
		if _, err := core.ParseHex(hex); err != nil {
			errs = append(errs, fmt.Errorf("board palette[%d]: %w", i, err))
		}
	}

	check(c.Gameplay.Lives > 0, "lives must be positive, got %d", c.Gameplay.Lives)
	check(c.Gameplay.Lives <= MaxLives, "lives must be at most %d, got %d", MaxLives, c.Gameplay.Lives)
	check(c.Gameplay.BlockPoints >= 0 && c.Gameplay.LevelBonus >= 0, "points must not be negative")

	for _, tc := range c.Theme.Colors() {
		if _, err := core.ParseHex(tc.Hex); err != nil {
			errs = append(errs, fmt.Errorf("theme %s: %w", tc.Name, err))
		}
	}

	check(c.Terminal.KeyHoldTicks > 0, "terminal key_hold_ticks must be positive")
	check(c.Window.Scale > 0, "window scale must be positive")
	check(c.Window.FontSize > 0, "window font_size must be positive")

	return errors.Join(errs...)
}

// ThemeColor is one named theme entry.
type ThemeColor struct {
	Name string
	Hex  string
}

// Colors lists the theme entries in file order.
func (t ThemeConfig) Colors() []ThemeColor {
	return []ThemeColor{
		{"background", t.Background},
		{"gradient_top", t.GradientTop},
		{"gradient_bottom", t.GradientBottom},
		{"text", t.Text},
		{"accent", t.Accent},
		{"danger", t.Danger},
		{"highlight", t.Highlight},
		{"muted", t.Muted},
		{"hud", t.HUD},
		{"panel", t.Panel},
	}
}
