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

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/world"
)

// Options configures the terminal front-end.
type Options struct {
	TickRate      int    // Ticks per second
	ScreenW       int    // Initial terminal width
	ScreenH       int    // Initial terminal height
	ScreenshotDir string // Where ctrl+s writes; empty means ~/.gridsnake/screenshots
}

// Model is the Bubble Tea model for a running game.
type Model struct {
	world  *world.World
	screen *core.Screen
	keys   KeyMap
	help   help.Model
	opts   Options
	logger *log.Logger

	inputFrame core.InputFrame
	alive      bool
	quitting   bool

	telemetry world.Telemetry
	frames    int
	fpsStamp  time.Time
}

// NewModel creates a model that drives w. A nil logger discards output.
func NewModel(w *world.World, opts Options, logger *log.Logger) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.ShowAll = false

	return Model{
		world:      w,
		screen:     core.NewScreen(opts.ScreenW, core.Max(opts.ScreenH-helpHeight, 0)),
		keys:       DefaultKeyMap(),
		help:       h,
		opts:       opts,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		alive:      w.Alive(),
		telemetry:  w.Telemetry(0),
		fpsStamp:   time.Now(),
	}
}

// Rows reserved below the board for the help line.
const helpHeight = 1

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the action for the next tick. Restart is only honored
// after a death so a stray key does not throw a game away.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		if !m.alive {
			m.inputFrame.Set(action)
		}
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize fits the screen buffer to the terminal. The board itself has
// a fixed size; a terminal that is too small shows a notice instead.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.ScreenW = msg.Width
	m.opts.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-helpHeight, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick applies the queued input and advances the world one tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.world.HandleInput(m.inputFrame)
	m.inputFrame.Clear()

	result := m.world.Update()
	if result.Has(world.EventDied) {
		m.logger.Info("game over", "score", result.Score, "tick", result.Tick)
	}
	m.alive = result.Alive

	m.frames++
	if now.Sub(m.fpsStamp) >= time.Second {
		m.telemetry = m.world.Telemetry(m.frames)
		m.frames = 0
		m.fpsStamp = now
	}

	return m, tickCmd(m.opts.TickRate)
}

// saveScreenshot writes the current board as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.draw()

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("screenshot: %w", err)
		}
		dir = filepath.Join(home, ".gridsnake", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	filename := fmt.Sprintf("gridsnake_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// draw paints the current snapshot onto the screen buffer.
func (m *Model) draw() {
	m.world.Snapshot().Render(m.screen, m.telemetry.String())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for w.
func Run(w *world.World, opts Options, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(w, opts, logger),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
