package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pong/internal/core"
	"github.com/vovakirdan/pong/internal/games/pong"
)

// holdFor is how long a key counts as held after its last press event.
// Terminals report presses and auto-repeats but never releases.
const holdFor = 150 * time.Millisecond

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea frame driver for the terminal frontend.
type Model struct {
	game     *pong.Game
	screen   *core.Screen
	canvas   *ScreenCanvas
	keys     KeyMap
	help     help.Model
	held     map[core.Action]time.Time // last press time per action
	lastTick time.Time
	config   core.RuntimeConfig
	logger   *log.Logger
	quitting bool
}

// NewModel creates a terminal frame driver for game.
func NewModel(game *pong.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	m := Model{
		game:   game,
		keys:   DefaultKeyMap(),
		help:   h,
		held:   make(map[core.Action]time.Time),
		config: cfg,
		logger: logger,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.fieldHeight())
	m.canvas = NewScreenCanvas(m.screen)
	return m
}

// fieldHeight is the number of rows left for the game after the help bar.
func (m Model) fieldHeight() int {
	return max(1, m.config.ScreenH-lipgloss.Height(m.help.View(m.keys)))
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
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
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records key presses; they are sampled on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.fieldHeight())
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
		return m, nil
	}

	m.held[action] = time.Now()
	return m, nil
}

// handleResize rescales the grid. Game-space is independent of the
// terminal size, so the game itself is untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.fieldHeight())
	return m, nil
}

// handleTick runs one frame with the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt float64
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	out := m.game.Frame(m.inputAt(now), dt)
	if out.Scored() {
		st := m.game.State()
		m.logger.Debug("point scored", "winner", out.Winner, "left", st.Score.Left, "right", st.Score.Right)
	}

	return m, tickCmd(m.config.TickRate)
}

// inputAt returns the actions still held at now.
func (m Model) inputAt(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	for action, at := range m.held {
		if now.Sub(at) <= holdFor {
			in.Set(action)
		}
	}
	return in
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.canvas)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game *pong.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	logger.Info("starting terminal frontend", "cols", cfg.ScreenW, "rows", cfg.ScreenH, "tick", cfg.TickRate)
	_, err := p.Run()
	logger.Info("terminal frontend stopped", "frames", game.Frames())
	return err
}
