package window

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/blockbreaker/internal/core"
	"github.com/vovakirdan/blockbreaker/internal/games/breakout"
)

// Shadow offset for text, in pixels.
const shadowOffset = 2

var (
	shadowColor      = color.RGBA{A: 0xff}
	innerShadowColor = color.RGBA{A: 100}
)

// painter draws a breakout frame onto an ebiten image.
type painter struct {
	dst   *ebiten.Image
	fonts fontSet
	theme breakout.Theme
}

// drawFrame draws the whole frame for the current state.
func drawFrame(dst *ebiten.Image, f breakout.Frame, fonts fontSet) {
	p := painter{dst: dst, fonts: fonts, theme: f.Theme}

	switch f.State {
	case breakout.StateMenu:
		p.menu(f)
	case breakout.StatePlaying:
		p.playing(f)
	case breakout.StateGameOver:
		p.gameOver(f)
	}
}

func (p painter) fillRect(r core.Rect, c core.Color) {
	vector.DrawFilledRect(p.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c.RGBA(), false)
}

func (p painter) strokeRect(r core.Rect, width float32, c color.Color) {
	vector.StrokeRect(p.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, c, false)
}

func (p painter) circle(x, y, r float64, fill, outline core.Color) {
	vector.DrawFilledCircle(p.dst, float32(x), float32(y), float32(r), fill.RGBA(), true)
	vector.StrokeCircle(p.dst, float32(x), float32(y), float32(r), 2, outline.RGBA(), true)
}

// text draws s with a drop shadow. When centered, (x, y) is the text center;
// otherwise it is the top-left corner.
func (p painter) text(s string, f face, c core.Color, x, y float64, centered bool) {
	p.textAt(s, f, shadowColor, x+shadowOffset, y+shadowOffset, centered)
	p.textAt(s, f, c.RGBA(), x, y, centered)
}

func (p painter) textAt(s string, f face, c color.Color, x, y float64, centered bool) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(f.scale, f.scale)
	op.GeoM.Translate(x, y)
	if centered {
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
	}
	op.ColorScale.ScaleWithColor(c)
	text.Draw(p.dst, s, f.Face, op)
}

// gradient draws the menu background one scanline at a time.
func (p painter) gradient(w, h float64) {
	for y := 0.0; y < h; y++ {
		c := p.theme.Gradient(y / h)
		vector.StrokeLine(p.dst, 0, float32(y)+0.5, float32(w), float32(y)+0.5, 1, c.RGBA(), false)
	}
}

// button draws a button; hovering fills it with the accent color.
func (p painter) button(b breakout.Button) {
	cx, cy := b.Rect.Center()
	if b.Hover {
		p.fillRect(b.Rect, p.theme.Accent)
		p.text(b.Label, p.fonts.large, p.theme.Background, cx, cy, true)
		return
	}
	p.fillRect(b.Rect, p.theme.Background)
	p.strokeRect(b.Rect, 3, p.theme.Accent.RGBA())
	p.text(b.Label, p.fonts.large, p.theme.Accent, cx, cy, true)
}

func (p painter) menu(f breakout.Frame) {
	p.gradient(f.Width, f.Height)

	cx := f.Width / 2
	p.text(breakout.TitleText, p.fonts.title, p.theme.Accent, cx, breakout.MenuTitleY, true)
	p.button(f.Button)
	p.text(breakout.MoveHintText, p.fonts.small, p.theme.Muted, cx, breakout.MenuMoveHintY, true)
	p.text(breakout.LaunchHintText, p.fonts.small, p.theme.Muted, cx, breakout.MenuLaunchHintY, true)
}

func (p painter) playing(f breakout.Frame) {
	p.dst.Fill(p.theme.Background.RGBA())

	for _, b := range f.Blocks {
		if !b.Visible {
			continue
		}
		r := b.Rect()
		p.fillRect(r, b.Color)
		p.strokeRect(r, 3, b.Color.RGBA())
		p.strokeRect(core.NewRect(r.X+2, r.Y+2, r.W-4, r.H-4), 1, innerShadowColor)
	}

	pr := f.Paddle.Rect()
	p.fillRect(pr, p.theme.Accent)
	p.strokeRect(pr, 2, p.theme.Text.RGBA())

	p.circle(f.Ball.X, f.Ball.Y, f.Ball.Radius, p.theme.Text, p.theme.Accent)

	p.hud(f)

	if f.Paused {
		p.pausedOverlay(f)
	}
}

func (p painter) hud(f breakout.Frame) {
	p.fillRect(core.NewRect(0, 0, f.Width, breakout.HUDHeight), p.theme.HUD)
	vector.StrokeLine(p.dst, 0, breakout.HUDHeight, float32(f.Width), breakout.HUDHeight, 2, p.theme.Muted.RGBA(), false)

	p.text("SCORE", p.fonts.small, p.theme.Muted, breakout.HUDMarginX, breakout.HUDLabelY, false)
	p.text(strconv.Itoa(f.Session.Score), p.fonts.medium, p.theme.Text, breakout.HUDMarginX, breakout.HUDValueY, false)

	levelX := breakout.LevelX(f.Width)
	p.text("LEVEL", p.fonts.small, p.theme.Muted, levelX, breakout.HUDLabelY, false)
	p.text(strconv.Itoa(f.Session.Level), p.fonts.medium, p.theme.Text, levelX, breakout.HUDValueY, false)

	p.text("LIVES", p.fonts.small, p.theme.Muted, breakout.LivesX(f.Width), breakout.HUDLabelY, false)
	for i := range f.Session.Lives {
		p.circle(breakout.LifeX(f.Width, i), breakout.LifeY, breakout.LifeRadius, p.theme.Accent, p.theme.Text)
	}
}

func (p painter) pausedOverlay(f breakout.Frame) {
	vector.DrawFilledRect(p.dst, 0, 0, float32(f.Width), float32(f.Height), color.RGBA{A: 160}, false)

	box := core.NewRect(f.Width/2-180, f.Height/2-60, 360, 120)
	p.fillRect(box, p.theme.Panel)
	p.strokeRect(box, 2, p.theme.Accent.RGBA())

	cx, cy := box.Center()
	p.text(breakout.PausedText, p.fonts.large, p.theme.Accent, cx, cy-18, true)
	p.text(breakout.PausedHintText, p.fonts.small, p.theme.Text, cx, cy+28, true)
}

func (p painter) gameOver(f breakout.Frame) {
	p.dst.Fill(p.theme.Background.RGBA())

	cx := f.Width / 2
	p.text(breakout.GameOverText, p.fonts.title, p.theme.Danger, cx, breakout.OverTitleY, true)
	p.text(breakout.FinalScoreText, p.fonts.medium, p.theme.Muted, cx, breakout.OverScoreLabelY, true)
	p.text(strconv.Itoa(f.Session.Score), p.fonts.large, p.theme.Highlight, cx, breakout.OverScoreY, true)

	stats := breakout.StatsBoxRect(f.Width)
	p.fillRect(stats, p.theme.Panel)
	p.strokeRect(stats, 2, p.theme.Muted.RGBA())
	p.text(fmt.Sprintf(breakout.LevelReachedText, f.Session.Level), p.fonts.medium, p.theme.Text, cx, breakout.OverStatsLevelY, true)
	p.text(fmt.Sprintf(breakout.BlocksDestroyText, f.Session.BlocksDestroyed), p.fonts.medium, p.theme.Text, cx, breakout.OverStatsBlocksY, true)

	p.button(f.Button)
	p.text(breakout.MenuHintText, p.fonts.small, p.theme.Muted, cx, breakout.OverHintY, true)
}
