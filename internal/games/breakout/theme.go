package breakout

import (
	"fmt"

	"github.com/vovakirdan/blockbreaker/internal/config"
	"github.com/vovakirdan/blockbreaker/internal/core"
)

// Theme is the parsed color scheme shared by both renderers.
type Theme struct {
	Background     core.Color
	GradientTop    core.Color
	GradientBottom core.Color
	Text           core.Color
	Accent         core.Color
	Danger         core.Color
	Highlight      core.Color
	Muted          core.Color
	HUD            core.Color
	Panel          core.Color
	Palette        []core.Color // Block colors by row
}

// NewTheme parses the configured hex colors.
func NewTheme(cfg config.Config) (Theme, error) {
	var t Theme

	targets := map[string]*core.Color{
		"background":      &t.Background,
		"gradient_top":    &t.GradientTop,
		"gradient_bottom": &t.GradientBottom,
		"text":            &t.Text,
		"accent":          &t.Accent,
		"danger":          &t.Danger,
		"highlight":       &t.Highlight,
		"muted":           &t.Muted,
		"hud":             &t.HUD,
		"panel":           &t.Panel,
	}
	for _, tc := range cfg.Theme.Colors() {
		c, err := core.ParseHex(tc.Hex)
		if err != nil {
			return Theme{}, fmt.Errorf("breakout: theme %s: %w", tc.Name, err)
		}
		*targets[tc.Name] = c
	}

	t.Palette = make([]core.Color, 0, len(cfg.Board.Palette))
	for i, hex := range cfg.Board.Palette {
		c, err := core.ParseHex(hex)
		if err != nil {
			return Theme{}, fmt.Errorf("breakout: palette[%d]: %w", i, err)
		}
		t.Palette = append(t.Palette, c)
	}
	return t, nil
}

// Gradient returns the menu background color at fraction f of the screen height.
func (t Theme) Gradient(f float64) core.Color {
	return core.Blend(t.GradientTop, t.GradientBottom, f)
}
