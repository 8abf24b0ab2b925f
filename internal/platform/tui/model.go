package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/session"
)

// Model is the Bubble Tea model for a snake session.
type Model struct {
	board   config.BoardConfig
	opts    session.Options
	session *session.Session
	surface *session.Board
	layout  session.Layout
	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	move    Loop
	clock   Loop
	err     error // set when the terminal cannot fit a board

	swiping    bool
	swipeStart [2]int

	width    int
	height   int
	quitting bool
}

// NewModel creates a model sized for a width x height terminal.
// opts.Surface is ignored; the model renders its own board.
func NewModel(cfg config.SnakeConfig, opts session.Options, width, height int) Model {
	m := Model{
		board: cfg.Board,
		opts:  opts,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		move:  NewLoop(MoveLoop, cfg.Timing.MoveInterval),
		clock: NewLoop(ClockLoop, cfg.Timing.ClockInterval),
	}
	m.rebuild(width, height)
	return m
}

// rebuild discards the current game and creates a new one that fits the
// terminal.
func (m *Model) rebuild(width, height int) {
	m.width, m.height = width, height
	m.move.Stop()
	m.clock.Stop()
	m.help.Width = width
	if m.screen == nil {
		m.screen = core.NewScreen(width, max(height-1, 0))
	} else {
		m.screen.Resize(width, max(height-1, 0))
	}

	layout, err := session.LayoutFor(width, height, m.board)
	if err != nil {
		m.err, m.session = err, nil
		return
	}

	opts := m.opts
	m.surface = session.NewBoard()
	opts.Surface = m.surface
	s, err := session.New(layout.Grid, opts)
	if err != nil {
		m.err, m.session = err, nil
		return
	}
	m.err = nil
	m.layout = layout
	m.session = s
}

// Init implements tea.Model. Loops start with the first game.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		if msg.Width == m.width && msg.Height == m.height {
			return m, nil
		}
		m.rebuild(msg.Width, msg.Height)
		return m, nil

	case LoopMsg:
		return m.handleLoop(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if m.session == nil {
		return m, nil
	}

	if d, ok := action.Direction(); ok {
		m.session.Steer(d)
		return m, nil
	}

	switch action {
	case core.ActionStart:
		if m.session.Status() == snake.StatusRunning {
			return m, nil
		}
		m.session.Start()
		return m, m.startLoops()
	case core.ActionRestart:
		if m.session.Status() == snake.StatusNotStarted {
			return m, nil
		}
		m.session.Restart()
		return m, m.startLoops()
	}
	return m, nil
}

// handleMouse turns a press-drag-release into a direction change.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.session == nil {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		// X10 reports releases without a button, so only presses are filtered
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		// swipes start on the board so HUD and help clicks do nothing
		if _, ok := m.layout.CellAt(msg.X, msg.Y); !ok {
			return m, nil
		}
		m.swiping = true
		m.swipeStart = [2]int{msg.X, msg.Y}
	case tea.MouseActionRelease:
		if !m.swiping {
			return m, nil
		}
		m.swiping = false
		// rows are about twice as tall as columns are wide
		dx := msg.X - m.swipeStart[0]
		dy := (msg.Y - m.swipeStart[1]) * 2
		if d, ok := core.Swipe(dx, dy); ok {
			m.session.Steer(d)
		}
	}
	return m, nil
}

// handleLoop advances the game on move ticks and the clock on clock ticks.
func (m Model) handleLoop(msg LoopMsg) (tea.Model, tea.Cmd) {
	if m.session == nil {
		return m, nil
	}

	switch {
	case m.move.Owns(msg):
		res := m.session.Step()
		if res.Kind != snake.TickMoved {
			m.move.Stop()
			m.clock.Stop()
			return m, nil
		}
		m.move.SetInterval(m.session.MoveInterval())
		return m, m.move.Next()

	case m.clock.Owns(msg):
		m.session.Second()
		return m, m.clock.Next()
	}

	// Stale tick from a stopped loop
	return m, nil
}

func (m *Model) startLoops() tea.Cmd {
	m.move.SetInterval(m.session.MoveInterval())
	m.clock.SetInterval(m.session.ClockInterval())
	return tea.Batch(m.move.Start(), m.clock.Start())
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.session == nil {
		return
	}
	m.surface.Render(m.screen, m.layout)

	dir := filepath.Join(os.Getenv("HOME"), ".snake", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return centerText(fmt.Sprintf("Terminal too small (%dx%d): %v", m.width, m.height, m.err), m.width) +
			"\n" + helpStyle.Render(centerText("q to quit", m.width))
	}

	m.surface.Render(m.screen, m.layout)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Session returns the running session, or nil if the terminal is too small.
func (m Model) Session() *session.Session {
	return m.session
}

// Err returns why no board could be created, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program with a new model.
func Run(cfg config.SnakeConfig, opts session.Options, width, height int) error {
	model := NewModel(cfg, opts, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Swipe steering
	)

	_, err := p.Run()
	return err
}
