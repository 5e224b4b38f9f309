package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// helpHeight is the number of rows reserved below the game for the key help.
const helpHeight = 1

// Game is what the terminal loop drives.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing and terminal output.
type Game interface {
	// ID returns a unique identifier, used for screenshot names.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts the game over with the given screen size.
	Reset(cfg core.RuntimeConfig)

	// Resize updates the screen size without restarting.
	Resize(w, h int)

	// Advance runs one frame covering elapsed wall time.
	Advance(elapsed time.Duration, in core.InputFrame) core.StepResult

	// Render draws the current game state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Options configures the terminal loop.
type Options struct {
	Keys       KeyMap
	HoldWindow time.Duration // How long a press counts as held
	Logger     *log.Logger   // nil discards log output
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game      Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	theme     Theme
	hold      *core.KeyHold
	pending   core.InputFrame // One-shot actions waiting for the next frame
	clock     *frameClock
	gameState core.GameState
	log       *log.Logger
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.HoldWindow <= 0 {
		opts.HoldWindow = 300 * time.Millisecond
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 1)),
		config:  cfg,
		keys:    opts.Keys,
		help:    h,
		theme:   GetTheme(),
		hold:    core.NewKeyHold(opts.HoldWindow),
		pending: core.NewInputFrame(),
		clock:   &frameClock{},
		log:     logger,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// gameConfig is the runtime config with the help footer taken off the height.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.screen.Height()
	return cfg
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
// Walking and jumping become held keys, everything else fires once.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionNone:
		return m, nil
	case Held(action):
		m.hold.Press(action, now)
	case action == core.ActionPause:
		// Keys pressed before pausing should not still be held on resume.
		m.hold.Reset()
		m.pending.Set(action)
	case action == core.ActionRestart:
		if m.gameState.Finished() {
			m.pending.Set(action)
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 1))
	m.help.Width = msg.Width

	// The viewport follows the player, so a resize never restarts the game.
	m.game.Resize(m.screen.Width(), m.screen.Height())

	return m, nil
}

// handleTick runs one frame of the game.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := m.clock.advance(now)

	in := m.hold.Frame(now)
	for a := range m.pending.Actions {
		in.Set(a)
	}
	m.pending.Clear()

	prev := m.gameState
	m.gameState = m.game.Advance(elapsed, in).State
	m.logTransition(prev, m.gameState)

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// logTransition records session-level changes seen by the platform.
func (m Model) logTransition(prev, next core.GameState) {
	switch {
	case next.Paused != prev.Paused:
		m.log.Debug("pause", "paused", next.Paused)
	case next.Finished() && !prev.Finished():
		m.log.Info("session finished", "complete", next.Complete, "level", next.Level)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".platformer", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen, m.theme) + "\n" + m.theme.Help.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given model.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
