package breakout

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/blockbreaker/internal/core"
)

// Minimum terminal size that can show the whole play area.
const (
	MinCols = 40
	MinRows = 16
)

// Glyphs is the set of runes used to draw entities in a terminal.
type Glyphs struct {
	Block  rune
	Paddle rune
	Ball   rune
	Life   rune
	HLine  rune
	Box    core.BoxStyle
}

// Glyph sets for terminals with and without Unicode block characters.
var (
	UnicodeGlyphs = Glyphs{Block: '█', Paddle: '▀', Ball: '●', Life: '●', HLine: '─', Box: core.BoxLight}
	ASCIIGlyphs   = Glyphs{Block: '#', Paddle: '=', Ball: 'o', Life: '*', HLine: '-', Box: core.BoxASCII}
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	glyphs := UnicodeGlyphs
	if g.cfg.Terminal.ASCII {
		glyphs = ASCIIGlyphs
	}
	RenderFrame(dst, g.Frame(), glyphs)
}

// RenderFrame scales the logical frame onto the cell grid of dst.
func RenderFrame(dst *core.Screen, f Frame, glyphs Glyphs) {
	dst.Clear()

	// Check for screen too small
	if dst.Width() < MinCols || dst.Height() < MinRows {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinCols, MinRows)
		dst.DrawTextCentered(dst.Height()/2-1, msg, f.Theme.Text)
		dst.DrawTextCentered(dst.Height()/2+1, hint, f.Theme.Muted)
		return
	}

	r := cellRenderer{
		dst:    dst,
		view:   core.NewViewport(f.Width, f.Height, dst.Width(), dst.Height()),
		theme:  f.Theme,
		glyphs: glyphs,
	}

	switch f.State {
	case StateMenu:
		r.menu(f)
	case StatePlaying:
		r.playing(f)
	case StateGameOver:
		r.gameOver(f)
	}
}

// cellRenderer draws logical shapes as terminal cells.
type cellRenderer struct {
	dst    *core.Screen
	view   core.Viewport
	theme  Theme
	glyphs Glyphs
}

// row returns the cell row containing logical y.
func (r cellRenderer) row(y float64) int {
	_, row := r.view.ToCell(0, y)
	return row
}

// col returns the cell column containing logical x.
func (r cellRenderer) col(x float64) int {
	col, _ := r.view.ToCell(x, 0)
	return col
}

// fill paints the cells whose centers lie inside rect. A rect too thin to
// contain any cell center still gets the cell under its own center.
func (r cellRenderer) fill(rect core.Rect, ch rune, fg, bg core.Color) {
	x0, x1 := centerSpan(rect.X, rect.Right(), r.view.CellW(), r.view.Cols)
	y0, y1 := centerSpan(rect.Y, rect.Bottom(), r.view.CellH(), r.view.Rows)
	r.dst.FillRect(x0, y0, x1-x0+1, y1-y0+1, ch, fg, bg)
}

// centerSpan returns the inclusive range of cells with centers in [a0, a1).
func centerSpan(a0, a1, size float64, n int) (int, int) {
	first := int(math.Ceil(a0/size - 0.5))
	last := int(math.Ceil(a1/size-0.5)) - 1
	if first > last {
		mid := int(((a0 + a1) / 2) / size)
		first, last = mid, mid
	}
	return core.Clamp(first, 0, n-1), core.Clamp(last, 0, n-1)
}

// background fills the whole screen with one color.
func (r cellRenderer) background(bg core.Color) {
	r.dst.FillRect(0, 0, r.dst.Width(), r.dst.Height(), ' ', bg, bg)
}

// textCentered draws text centered on logical x, on the row containing y.
func (r cellRenderer) textCentered(x, y float64, text string, fg core.Color) {
	r.dst.DrawTextCenteredAt(r.col(x), r.row(y), text, fg)
}

// button draws a boxed button; hovering fills it with the accent color.
func (r cellRenderer) button(b Button) {
	x, y, w, h := r.view.CellRect(b.Rect)
	cx, cy := b.Rect.Center()
	if b.Hover {
		r.dst.FillRect(x, y, w, h, ' ', r.theme.Background, r.theme.Accent)
		r.textCentered(cx, cy, b.Label, r.theme.Background)
		return
	}
	r.dst.FillRect(x, y, w, h, ' ', r.theme.Accent, r.theme.Background)
	r.dst.DrawBox(x, y, w, h, r.glyphs.Box, r.theme.Accent)
	r.textCentered(cx, cy, b.Label, r.theme.Accent)
}

// menu draws the title screen over a vertical gradient.
func (r cellRenderer) menu(f Frame) {
	rows := r.dst.Height()
	for y := range rows {
		bg := r.theme.Gradient(float64(y) / float64(core.Max(rows-1, 1)))
		r.dst.FillRect(0, y, r.dst.Width(), 1, ' ', bg, bg)
	}

	cx := f.Width / 2
	r.textCentered(cx, MenuTitleY, TitleText, r.theme.Accent)
	r.button(f.Button)
	r.textCentered(cx, MenuMoveHintY, MoveHintText, r.theme.Muted)
	r.textCentered(cx, MenuLaunchHintY, LaunchHintText, r.theme.Muted)
}

// playing draws the HUD, blocks, paddle and ball.
func (r cellRenderer) playing(f Frame) {
	r.background(r.theme.Background)
	r.hud(f)

	for _, block := range f.Blocks {
		if !block.Visible {
			continue
		}
		r.fill(block.Rect(), r.glyphs.Block, block.Color, r.theme.Background)
	}

	r.fill(f.Paddle.Rect(), r.glyphs.Paddle, r.theme.Accent, r.theme.Background)

	bx, by := r.view.ToCell(f.Ball.X, f.Ball.Y)
	if by > r.row(HUDHeight) {
		r.dst.Set(bx, by, r.glyphs.Ball, r.theme.Text)
	}

	if f.Paused {
		r.drawCenteredBox(PausedText, PausedHintText)
	}
}

// hud draws the score, level and lives bar.
func (r cellRenderer) hud(f Frame) {
	hudRow := r.row(HUDHeight)
	r.dst.FillRect(0, 0, r.dst.Width(), hudRow, ' ', r.theme.HUD, r.theme.HUD)
	r.dst.DrawHLine(0, hudRow, r.dst.Width(), r.glyphs.HLine, r.theme.Muted)

	labelRow, valueRow := r.row(HUDLabelY), r.row(HUDValueY)
	if valueRow == labelRow {
		valueRow = core.Min(labelRow+1, hudRow-1)
	}

	scoreCol := r.col(HUDMarginX)
	r.dst.DrawText(scoreCol, labelRow, "SCORE", r.theme.Muted)
	r.dst.DrawText(scoreCol, valueRow, strconv.Itoa(f.Session.Score), r.theme.Text)

	levelCol := r.col(LevelX(f.Width))
	r.dst.DrawText(levelCol, labelRow, "LEVEL", r.theme.Muted)
	r.dst.DrawText(levelCol, valueRow, strconv.Itoa(f.Session.Level), r.theme.Text)

	r.dst.DrawText(r.col(LivesX(f.Width)), labelRow, "LIVES", r.theme.Muted)
	for i := range f.Session.Lives {
		r.dst.Set(r.col(LifeX(f.Width, i)), valueRow, r.glyphs.Life, r.theme.Accent)
	}
}

// gameOver draws the final score, stats and PLAY AGAIN button.
func (r cellRenderer) gameOver(f Frame) {
	r.background(r.theme.Background)

	cx := f.Width / 2
	r.textCentered(cx, OverTitleY, GameOverText, r.theme.Danger)
	r.textCentered(cx, OverScoreLabelY, FinalScoreText, r.theme.Muted)
	r.textCentered(cx, OverScoreY, strconv.Itoa(f.Session.Score), r.theme.Highlight)

	x, y, w, h := r.view.CellRect(StatsBoxRect(f.Width))
	r.dst.FillRect(x, y, w, h, ' ', r.theme.Text, r.theme.Panel)
	r.dst.DrawBox(x, y, w, h, r.glyphs.Box, r.theme.Muted)
	r.textCentered(cx, OverStatsLevelY, fmt.Sprintf(LevelReachedText, f.Session.Level), r.theme.Text)
	r.textCentered(cx, OverStatsBlocksY, fmt.Sprintf(BlocksDestroyText, f.Session.BlocksDestroyed), r.theme.Text)

	r.button(f.Button)
	r.textCentered(cx, OverHintY, MenuHintText, r.theme.Muted)
}

// drawCenteredBox draws a centered message box.
func (r cellRenderer) drawCenteredBox(title, subtitle string) {
	w := r.dst.Width()
	h := r.dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	r.dst.FillRect(boxX, boxY, boxW, boxH, ' ', r.theme.Text, r.theme.Panel)
	r.dst.DrawBox(boxX, boxY, boxW, boxH, r.glyphs.Box, r.theme.Accent)

	// Draw text
	r.dst.DrawTextCenteredAt(boxX+boxW/2, boxY+1, title, r.theme.Accent)
	r.dst.DrawTextCenteredAt(boxX+boxW/2, boxY+3, subtitle, r.theme.Text)
}
