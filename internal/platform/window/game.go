// Package window runs the block breaker in a desktop window with ebiten.
package window

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/blockbreaker/internal/config"
	"github.com/vovakirdan/blockbreaker/internal/core"
	"github.com/vovakirdan/blockbreaker/internal/games/breakout"
)

// Game adapts a breakout game to ebiten's Update/Draw loop.
type Game struct {
	game    *breakout.Game
	cfg     config.Config
	fonts   fontSet
	log     *log.Logger
	input   core.InputFrame
	pointer pointerTracker
	state   core.GameState
}

// NewGame creates the ebiten adapter and loads fonts.
func NewGame(game *breakout.Game, cfg config.Config, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		game:  game,
		cfg:   cfg,
		fonts: loadFonts(cfg.Window.FontPath, cfg.Window.FontSize, logger),
		log:   logger,
		input: core.NewInputFrame(),
	}
}

// Update polls input and advances the game by one tick.
func (g *Game) Update() error {
	collectKeys(&g.input, keySource{
		pressed:     ebiten.IsKeyPressed,
		justPressed: inpututil.IsKeyJustPressed,
	})
	x, y := ebiten.CursorPosition()
	g.pointer.update(&g.input, x, y, inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft))

	if g.input.Has(core.ActionQuit) {
		g.log.Info("quit requested", "score", g.state.Score)
		return ebiten.Termination
	}

	result := g.game.Step(g.input)
	g.state = result.State
	g.input.Clear()
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	drawFrame(screen, g.game.Frame(), g.fonts)
}

// Layout fixes the logical resolution; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.cfg.Screen.Width), int(g.cfg.Screen.Height)
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(game *breakout.Game, cfg config.Config, runtime core.RuntimeConfig, logger *log.Logger) error {
	g := NewGame(game, cfg, logger)
	game.Reset(runtime)

	ebiten.SetWindowSize(int(cfg.Screen.Width*cfg.Window.Scale), int(cfg.Screen.Height*cfg.Window.Scale))
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(runtime.TickRate)

	g.log.Info("window opened", "seed", runtime.Seed, "tps", runtime.TickRate)
	return ebiten.RunGame(g)
}
