package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zombie-attack/internal/core"
)

// Game is what the platform needs from a game. Games contain pure logic with
// no Bubble Tea dependency; the platform handles input mapping, timing and
// rendering.
type Game interface {
	// ID returns a unique identifier for this game.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current aggregate state.
	State() core.GameState
}

// PointerMapper is implemented by games that take mouse input. It converts
// a terminal cell on a w×h screen to world coordinates.
type PointerMapper interface {
	ScreenToWorld(x, y, w, h int) core.Vec
}

// footerRows is the space reserved under the game for the short help line.
const footerRows = 1

// Options tune the model.
type Options struct {
	Logger *log.Logger
	// HoldWindow is how long a direction key stays down after an
	// auto-repeat, and how close two presses must be to count as one. Zero
	// picks a quarter of a second.
	HoldWindow time.Duration
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game     Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	held     *HeldKeys
	frame    core.InputFrame
	state    core.GameState
	logger   *log.Logger
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) *Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	window := opts.HoldWindow
	if window <= 0 {
		window = 250 * time.Millisecond
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := &Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerRows, 0)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		held:   NewHeldKeys(holdTicks(window, cfg.TickRate)),
		frame:  core.NewInputFrame(),
		logger: logger,
	}
	m.help.Width = cfg.ScreenW
	m.game.Reset(cfg)
	m.state = m.game.State()
	return m
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.handleResize(msg)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
	case isDirection(action):
		m.held.Press(action)
	default:
		m.frame.Set(action)
	}
	return m, nil
}

// handleMouse tracks the pointer. Only the left button shoots.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	mapper, ok := m.game.(PointerMapper)
	if !ok {
		return
	}
	p := mapper.ScreenToWorld(msg.X, msg.Y, m.screen.Width(), m.screen.Height())

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.frame.Press(p)
		}
	case tea.MouseActionRelease:
		m.frame.Release(p)
	case tea.MouseActionMotion:
		m.frame.Pointer = p
	}
}

// handleResize processes window resize events. The world has a fixed size,
// so the game keeps running and only the viewport changes.
func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerRows, 0))
	m.help.Width = msg.Width
	m.logger.Debug("resize", "width", msg.Width, "height", msg.Height)
}

// handleTick processes simulation ticks.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	m.held.Apply(&m.frame)
	result := m.game.Step(m.frame)

	if result.State.GameOver != m.state.GameOver {
		// Directions held into or out of the game-over screen are dropped
		m.held.Reset()
		if result.State.GameOver {
			m.logger.Info("game over", "level", result.State.Level, "kills", result.State.Kills)
		}
	}
	m.state = result.State

	// Clear input for next frame
	m.frame.Clear()
	m.held.Tick()

	if m.state.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.help.View(m.keys)
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-lipgloss.Height(footer), 0))

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + footer
}

// State returns the last aggregate state reported by the game.
func (m *Model) State() core.GameState {
	return m.state
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Aim follows the pointer without a button held
	)

	_, err := p.Run()
	return err
}
