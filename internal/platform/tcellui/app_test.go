package tcellui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/session"
)

func newTestScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestApp(t *testing.T, width, height int) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := newTestScreen(t, width, height)
	app := NewApp(screen, config.DefaultSnakeConfig(), session.Options{Seed: 3})
	t.Cleanup(app.stopTimers)
	return app, screen
}

// row returns the runes on screen row y.
func row(screen tcell.SimulationScreen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := range w {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func contents(screen tcell.SimulationScreen) string {
	_, h := screen.Size()
	rows := make([]string, h)
	for y := range h {
		rows[y] = row(screen, y)
	}
	return strings.Join(rows, "\n")
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func TestAppStartScreen(t *testing.T) {
	app, screen := newTestApp(t, 40, 16)
	require.NoError(t, app.Err())
	require.NotNil(t, app.Session())

	screen.Show()
	out := contents(screen)
	assert.Contains(t, out, "SNAKE")
	assert.Contains(t, out, "ENTER to start")
	assert.Contains(t, row(screen, 0), "SCORE 0")
}

func TestAppStartAndMove(t *testing.T) {
	app, screen := newTestApp(t, 40, 16)

	require.True(t, app.HandleEvent(key(tcell.KeyEnter, 0)))
	require.Equal(t, snake.StatusRunning, app.Session().Status())
	assert.True(t, app.ticking)

	before := app.Session().Snapshot().Head
	app.StepMove()
	after := app.Session().Snapshot().Head
	assert.Equal(t, before.Add(core.DirRight), after)

	// Drawn incrementally: new head is bright, old head is body or erased
	screen.Show()
	layout := app.surface.layout
	hr := layout.CellRect(after)
	_, _, headStyle, _ := screen.GetContent(hr.X, hr.Y)
	fg, _, _ := headStyle.Decompose()
	assert.Equal(t, tcell.ColorLime, fg)

	br := layout.CellRect(before)
	r, _, bodyStyle, _ := screen.GetContent(br.X, br.Y)
	if app.Session().Snapshot().SnakeLen == 1 {
		assert.Equal(t, ' ', r)
		return
	}
	fg, _, _ = bodyStyle.Decompose()
	assert.Equal(t, '█', r)
	assert.Equal(t, tcell.ColorGreen, fg)
}

func TestAppSteerKeys(t *testing.T) {
	app, _ := newTestApp(t, 40, 16)
	app.HandleEvent(key(tcell.KeyRune, ' '))
	app.HandleEvent(key(tcell.KeyRune, 'k'))
	app.StepMove()
	assert.Equal(t, core.DirUp, app.Session().Snapshot().Dir)
}

func TestAppClock(t *testing.T) {
	app, screen := newTestApp(t, 40, 16)
	app.HandleEvent(key(tcell.KeyEnter, 0))
	app.StepClock()
	screen.Show()
	assert.Contains(t, row(screen, 0), "TIME 00:01")
}

func TestAppGameOver(t *testing.T) {
	app, screen := newTestApp(t, 40, 16)
	app.HandleEvent(key(tcell.KeyEnter, 0))
	for i := 0; i < 100 && app.Session().Status() == snake.StatusRunning; i++ {
		app.StepMove()
	}
	require.Equal(t, snake.StatusGameOver, app.Session().Status())
	assert.False(t, app.ticking)

	screen.Show()
	assert.Contains(t, contents(screen), "GAME OVER")

	app.HandleEvent(key(tcell.KeyRune, 'r'))
	assert.Equal(t, snake.StatusRunning, app.Session().Status())
	assert.True(t, app.ticking)
}

func TestAppQuitKeys(t *testing.T) {
	app, _ := newTestApp(t, 40, 16)
	assert.False(t, app.HandleEvent(key(tcell.KeyRune, 'q')))
	assert.False(t, app.HandleEvent(key(tcell.KeyEscape, 0)))
	assert.False(t, app.HandleEvent(key(tcell.KeyCtrlC, 0)))
	assert.True(t, app.HandleEvent(key(tcell.KeyRune, 'x')))
}

func TestAppResize(t *testing.T) {
	app, screen := newTestApp(t, 40, 16)
	app.HandleEvent(key(tcell.KeyEnter, 0))
	first := app.Session()

	screen.SetSize(4, 3)
	app.HandleEvent(tcell.NewEventResize(4, 3))
	require.Error(t, app.Err())
	assert.Nil(t, app.Session())
	assert.False(t, app.ticking)

	screen.SetSize(60, 20)
	app.HandleEvent(tcell.NewEventResize(60, 20))
	require.NoError(t, app.Err())
	assert.NotSame(t, first, app.Session())
	assert.Equal(t, snake.StatusNotStarted, app.Session().Status())
}

func TestAppRunQuits(t *testing.T) {
	app, screen := newTestApp(t, 40, 16)

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}
}

func TestAppRunContextCancel(t *testing.T) {
	app, _ := newTestApp(t, 40, 16)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, app.Run(ctx), context.Canceled)
}
