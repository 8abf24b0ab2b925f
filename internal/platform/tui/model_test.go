package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/session"
)

func newTestModel(t *testing.T, width, height int) Model {
	t.Helper()
	return NewModel(config.DefaultSnakeConfig(), session.Options{Seed: 7}, width, height)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return nm, cmd
}

func startedModel(t *testing.T) Model {
	t.Helper()
	m := newTestModel(t, 40, 16)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.Equal(t, snake.StatusRunning, m.Session().Status())
	return m
}

func moveTick(m Model) LoopMsg {
	return LoopMsg{ID: MoveLoop, Gen: m.move.gen}
}

func TestModelStartsNotStarted(t *testing.T) {
	m := newTestModel(t, 40, 16)
	require.NoError(t, m.Err())
	require.NotNil(t, m.Session())

	assert.Equal(t, snake.StatusNotStarted, m.Session().Status())
	assert.False(t, m.move.Running())
	assert.Contains(t, m.View(), "ENTER to start")
}

func TestModelStartRunsLoops(t *testing.T) {
	m := startedModel(t)
	assert.True(t, m.move.Running())
	assert.True(t, m.clock.Running())
	assert.Equal(t, m.Session().MoveInterval(), m.move.Interval())

	// A second start while running changes nothing
	before := m.move.gen
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, before, m.move.gen)
}

func TestModelMoveTickAdvances(t *testing.T) {
	m := startedModel(t)
	head := m.Session().Snapshot().Head

	m, cmd := update(t, m, moveTick(m))
	require.NotNil(t, cmd, "loop must reschedule itself")

	snap := m.Session().Snapshot()
	assert.Equal(t, uint64(1), snap.Tick)
	assert.Equal(t, head.Add(core.DirRight), snap.Head)
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m := startedModel(t)
	stale := moveTick(m)

	m, _ = update(t, m, runeKey('r'))
	m, cmd := update(t, m, stale)
	assert.Nil(t, cmd)
	assert.Equal(t, uint64(0), m.Session().Snapshot().Tick)
}

func TestModelClockTick(t *testing.T) {
	m := startedModel(t)
	m, cmd := update(t, m, LoopMsg{ID: ClockLoop, Gen: m.clock.gen})
	require.NotNil(t, cmd)
	assert.Equal(t, "00:01", m.Session().Elapsed())
}

func TestModelSteer(t *testing.T) {
	m := startedModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, moveTick(m))
	assert.Equal(t, core.DirUp, m.Session().Snapshot().Dir)
}

func TestModelSwipe(t *testing.T) {
	m := startedModel(t)
	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 8, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m, _ = update(t, m, tea.MouseMsg{X: 11, Y: 12, Action: tea.MouseActionRelease})
	m, _ = update(t, m, moveTick(m))
	assert.Equal(t, core.DirDown, m.Session().Snapshot().Dir)
}

func TestModelSwipeMustStartOnBoard(t *testing.T) {
	m := startedModel(t)
	m, _ = update(t, m, tea.MouseMsg{X: 10, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m, _ = update(t, m, tea.MouseMsg{X: 11, Y: 6, Action: tea.MouseActionRelease})
	m, _ = update(t, m, moveTick(m))
	assert.Equal(t, core.DirRight, m.Session().Snapshot().Dir, "a press on the HUD is not a swipe")
}

func TestModelResizeReusesScreen(t *testing.T) {
	m := newTestModel(t, 40, 16)
	screen := m.screen

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	require.Same(t, screen, m.screen)
	assert.Equal(t, 60, m.screen.Width())
	assert.Equal(t, 19, m.screen.Height())
}

func TestModelGameOverStopsLoops(t *testing.T) {
	m := startedModel(t)

	// Run right until the wall
	for i := 0; i < 100 && m.Session().Status() == snake.StatusRunning; i++ {
		m, _ = update(t, m, moveTick(m))
	}
	require.Equal(t, snake.StatusGameOver, m.Session().Status())
	assert.Equal(t, snake.CauseWall, m.Session().Cause())
	assert.False(t, m.move.Running())
	assert.False(t, m.clock.Running())
	assert.Contains(t, m.View(), "GAME OVER")

	m, cmd := update(t, m, runeKey('r'))
	require.NotNil(t, cmd)
	assert.Equal(t, snake.StatusRunning, m.Session().Status())
}

func TestModelRestartIgnoredBeforeStart(t *testing.T) {
	m := newTestModel(t, 40, 16)
	m, cmd := update(t, m, runeKey('r'))
	assert.Nil(t, cmd)
	assert.Equal(t, snake.StatusNotStarted, m.Session().Status())
}

func TestModelResize(t *testing.T) {
	m := startedModel(t)
	s := m.Session()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 16})
	assert.Same(t, s, m.Session(), "same size keeps the game")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	require.NotSame(t, s, m.Session())
	assert.Equal(t, snake.StatusNotStarted, m.Session().Status())
	assert.False(t, m.move.Running())
}

func TestModelTooSmall(t *testing.T) {
	m := newTestModel(t, 40, 16)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 4, Height: 3})

	require.Error(t, m.Err())
	assert.Nil(t, m.Session())
	assert.Contains(t, m.View(), "too small")

	// Keys other than quit are ignored
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 16})
	assert.NoError(t, m.Err())
	assert.NotNil(t, m.Session())
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, 40, 16)
	m, cmd := update(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestModelHighScorePersists(t *testing.T) {
	store := &memScores{high: 50}
	opts := session.Options{Seed: 7, Store: store}
	m := NewModel(config.DefaultSnakeConfig(), opts, 40, 16)

	assert.Contains(t, m.View(), "HIGH 50")
}

type memScores struct{ high int }

func (s *memScores) HighScore() (int, error) { return s.high, nil }

func (s *memScores) SetHighScore(score int) error {
	s.high = score
	return nil
}
