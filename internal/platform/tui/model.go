package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/blockbreaker/internal/config"
	"github.com/vovakirdan/blockbreaker/internal/core"
	"github.com/vovakirdan/blockbreaker/internal/games/breakout"
)

// helpRows is the number of rows reserved under the game for the key help.
const helpRows = 1

// Model is the Bubble Tea model for running the game in a terminal.
type Model struct {
	game       *breakout.Game
	screen     *core.Screen
	cfg        config.Config
	runtime    core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	log        *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	plain      bool // No color support; draw the bare cell runes

	// Terminals report key presses but never releases, so a movement key
	// stays held for KeyHoldTicks ticks after its last press or repeat.
	held map[core.Action]int
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *breakout.Game, cfg config.Config, runtime core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:       game,
		screen:     core.NewScreen(runtime.ScreenW, gameRows(runtime.ScreenH)),
		cfg:        cfg,
		runtime:    runtime,
		keys:       DefaultKeyMap(),
		help:       h,
		log:        logger,
		inputFrame: core.NewInputFrame(),
		held:       make(map[core.Action]int),
		plain:      lipgloss.ColorProfile() == termenv.Ascii,
	}
}

// gameRows returns the rows left for the game once the help line is reserved.
func gameRows(termRows int) int {
	if termRows-helpRows < breakout.MinRows {
		return termRows
	}
	return termRows - helpRows
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.runtime)
	m.log.Info("game started", "seed", m.runtime.Seed, "tps", m.runtime.TickRate)

	// Start the tick loop
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.log.Info("quit requested", "score", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		m.hold(action)
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// hold latches a movement key and releases the opposite one.
func (m *Model) hold(action core.Action) {
	opposite := core.ActionRight
	if action == core.ActionRight {
		opposite = core.ActionLeft
	}
	delete(m.held, opposite)
	m.held[action] = m.cfg.Terminal.KeyHoldTicks
}

// applyHeld sets every latched movement action on the frame and counts its latch down.
func (m *Model) applyHeld() {
	for action, ticks := range m.held {
		if ticks <= 0 {
			delete(m.held, action)
			continue
		}
		m.inputFrame.Set(action)
		m.held[action] = ticks - 1
	}
}

// handleMouse converts pointer motion and left clicks to logical coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y := m.viewport().ToLogical(msg.X, msg.Y)

	switch {
	case msg.Action == tea.MouseActionMotion:
		m.inputFrame.MovePointer(x, y)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.inputFrame.MovePointer(x, y)
		m.inputFrame.Click(x, y)
	}

	return m, nil
}

// viewport maps the current screen onto the logical play area.
func (m Model) viewport() core.Viewport {
	return core.NewViewport(m.cfg.Screen.Width, m.cfg.Screen.Height, m.screen.Width(), m.screen.Height())
}

// handleResize processes window resize events. The game keeps running;
// only the cell grid it is drawn onto changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.applyHeld()

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.runtime.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)
	view := m.screen.String()
	if !m.plain {
		view = RenderScreen(m.screen)
	}

	if m.screen.Height() < m.runtime.ScreenH {
		view += "\n" + m.help.View(m.keys)
	}
	return view
}

// Run starts the Bubble Tea program for the game.
func Run(game *breakout.Game, cfg config.Config, runtime core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, runtime, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover needs motion without a pressed button
	)

	_, err := p.Run()
	return err
}
