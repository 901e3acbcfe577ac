package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-dodger/internal/core"
)

// Result is how a session ended.
type Result struct {
	Lightyears int  // Final distance
	GameOver   bool // False when the player quit or cancelled
}

// Model is the Bubble Tea model that runs one game session.
type Model struct {
	game     Game
	screen   *core.Screen
	config   core.RuntimeConfig
	clock    *core.Clock
	hold     *HoldTracker
	keys     KeyMap
	help     help.Model
	state    core.GameState
	result   Result
	reported bool // Game over has been reported
	quitting bool
	now      func() time.Time
}

// NewModel creates a model for game. The bottom terminal row is kept for
// the help footer.
func NewModel(game Game, cfg core.RuntimeConfig, holdWindow time.Duration) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		config: cfg,
		clock:  core.NewClock(cfg.TickRate),
		hold:   NewHoldTracker(holdWindow),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		now:    time.Now,
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.clock.Reset()
	m.hold.Reset()
	return tickCmd(m.clock.Interval())
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Cancel):
		m.quitting = true
		return m, tea.Quit
	}

	if actions := m.keys.Actions(msg); len(actions) > 0 {
		m.hold.Press(m.now(), actions...)
	}
	return m, nil
}

// handleResize adapts the screen buffer. The world keeps its logical size,
// so the game is not reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.reported || m.quitting {
		return m, nil
	}

	dt := m.clock.Tick(now)
	res := m.game.Step(dt, m.hold.Frame(now))
	m.state = res.State

	if m.state.GameOver {
		m.reported = true
		m.result = Result{Lightyears: m.state.Score, GameOver: true}
		return m, tea.Quit
	}

	return m, tickCmd(m.clock.Interval())
}

// Result returns how the session ended.
func (m Model) Result() Result {
	return m.result
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.reported {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run plays game in the alternate screen until the player quits or the game
// ends, and returns the outcome.
func Run(game Game, cfg core.RuntimeConfig, holdWindow time.Duration) (Result, error) {
	p := tea.NewProgram(
		NewModel(game, cfg, holdWindow),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("tui: run %s: %w", game.ID(), err)
	}

	m, ok := final.(Model)
	if !ok {
		return Result{}, nil
	}
	return m.Result(), nil
}
