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

	"github.com/vovakirdan/sidewalk/internal/config"
	"github.com/vovakirdan/sidewalk/internal/core"
)

// Default grid size until the terminal reports its own.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// errMsg ends the program with an error.
type errMsg struct{ err error }

// Model is the Bubble Tea model for running the game in a terminal.
type Model struct {
	game     core.Game
	runtime  core.RuntimeConfig
	screen   *core.Screen
	theme    Theme
	keys     KeyMap
	help     help.Model
	held     *heldKeys
	state    core.GameState
	log      *log.Logger
	quitting bool
	err      error
}

// NewModel creates a model for the given game. The game is started by Init.
func NewModel(game core.Game, cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) Model {
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:    game,
		runtime: rt,
		screen:  core.NewScreen(defaultWidth, defaultHeight-1),
		theme:   DefaultTheme(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		held:    newHeldKeys(time.Duration(cfg.Terminal.KeyHoldMS) * time.Millisecond),
		log:     logger,
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	if err := m.game.Start(m.runtime); err != nil {
		return func() tea.Msg { return errMsg{err} }
	}
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case errMsg:
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	m.held.Press(m.keys.Action(msg), time.Now())
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	res, err := m.game.Step(m.held.Frame(now))
	if err != nil {
		m.log.Error("simulation failed", "err", err)
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	if !m.state.GameOver && res.State.GameOver {
		m.log.Info("game over", "tick", res.State.Tick)
	}
	m.state = res.State

	return m, tickCmd(m.runtime.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	Rasterize(m.game.View(), m.screen, m.theme)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".sidewalk", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}
	m.log.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Rasterize(m.game.View(), m.screen, m.theme)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Resize fits the model to a terminal of the given size. The last row is
// kept for the help line.
func (m *Model) Resize(width, height int) {
	m.screen.Resize(max(width, 1), max(height-1, 1))
	m.help.Width = width
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// Run plays the model's game in the local terminal until the player quits.
func Run(model Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
