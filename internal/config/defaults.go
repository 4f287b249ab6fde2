package config

import (
	_ "embed"
)

//go:embed defaults/blockbreaker.yaml
var defaultYAML []byte

// DefaultConfig returns the default block breaker configuration.
func DefaultConfig() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
			FPS:    60,
		},
		Paddle: PaddleConfig{
			Width:        120,
			Height:       15,
			Speed:        8,
			BottomOffset: 30,
		},
		Ball: BallConfig{
			Radius:        8,
			Speed:         5,
			SpeedPerLevel: 0.5,
			RestOffset:    20,
			LaunchDX:      []float64{-2, -1, 1, 2},
			Deflection:    3,
		},
		Board: BoardConfig{
			Rows:        5,
			Cols:        8,
			BlockWidth:  90,
			BlockHeight: 30,
			Padding:     5,
			OffsetTop:   80,
			OffsetLeft:  25,
			Palette: []string{
				"#e74c3c", // red
				"#e67e22", // orange
				"#f1c40f", // yellow
				"#2ecc71", // green
				"#3498db", // blue
			},
		},
		Gameplay: GameplayConfig{
			Lives:       3,
			BlockPoints: 10,
			LevelBonus:  50,
		},
		Theme: ThemeConfig{
			Background:     "#141414",
			GradientTop:    "#141414",
			GradientBottom: "#1e1e28",
			Text:           "#ffffff",
			Accent:         "#64c8ff",
			Danger:         "#ff6496",
			Highlight:      "#ffc832",
			Muted:          "#646464",
			HUD:            "#1e1e1e",
			Panel:          "#282828",
		},
		Terminal: TerminalConfig{
			KeyHoldTicks: 8,
			ASCII:        false,
		},
		Window: WindowConfig{
			Scale:    1,
			FontPath: "",
			FontSize: 24,
			Title:    "Block Breaker",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
