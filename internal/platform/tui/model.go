package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/brickout/internal/core"
	"github.com/vovakirdan/brickout/internal/registry"
)

// Default logical field size for games that do not report one.
const (
	defaultFieldW = 800
	defaultFieldH = 600
)

// screenGameplay is the GameState screen name of a run in progress.
const screenGameplay = "gameplay"

// helpHeight is the number of terminal rows reserved for the help footer.
const helpHeight = 1

// FieldSizer is implemented by games that draw on a logical field.
type FieldSizer interface {
	FieldSize() (width, height float64)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	mapper     *KeyMapper
	held       *heldKeys
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	runID      string // Set while a run is in progress
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards all log output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		config:     cfg,
		mapper:     NewKeyMapper(DefaultKeyMap()),
		held:       newHeldKeys(cfg.TickRate),
		help:       h,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

// playHeight returns the rows left for the game below the help footer.
func playHeight(h int) int {
	return max(h-helpHeight, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started",
		"game", m.game.ID(),
		"width", m.config.ScreenW,
		"height", m.config.ScreenH,
		"tick_rate", m.config.TickRate,
	)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.mapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("quit", "game", m.game.ID(), "screen", m.gameState.Screen)
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
	case IsHeldAction(action):
		m.held.Press(action)
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The game keeps its state; only the drawing surface changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width

	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.held.Apply(m.inputFrame)

	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logTransition(prev, m.gameState)

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// logTransition records screen changes, run starts and run ends.
func (m *Model) logTransition(prev, next core.GameState) {
	if prev.Screen == next.Screen {
		return
	}

	m.logger.Debug("screen changed", "from", prev.Screen, "to", next.Screen)

	switch {
	case next.GameOver && m.runID != "":
		m.held.Release()
		m.logger.Info("run ended",
			"run", m.runID,
			"result", next.Screen,
			"score", next.Score,
			"lives", next.Lives,
		)
		m.runID = ""
	case next.Screen == screenGameplay:
		m.runID = uuid.NewString()
		m.held.Release()
		m.logger.Info("run started",
			"run", m.runID,
			"game", m.game.ID(),
			"difficulty", next.Difficulty,
			"blocks", next.Blocks,
		)
	}
}

// fieldSize returns the logical field the game draws on.
func (m Model) fieldSize() (w, h float64) {
	if fs, ok := m.game.(FieldSizer); ok {
		if w, h = fs.FieldSize(); w > 0 && h > 0 {
			return w, h
		}
	}
	return defaultFieldW, defaultFieldH
}

// RunID returns the identifier of the run in progress, or "".
func (m Model) RunID() string {
	return m.runID
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	w, h := m.fieldSize()
	m.game.Render(core.NewScaledCanvas(m.screen, w, h))

	return RenderScreen(m.screen) + "\n" + m.help.View(m.mapper.Keys())
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
