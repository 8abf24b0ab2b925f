package tcellui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/session"
)

// App drives one snake session on a tcell screen. Input and both timers are
// serviced from a single goroutine, so the session needs no locking.
type App struct {
	screen tcell.Screen
	board  config.BoardConfig
	opts   session.Options

	surface *Surface
	session *session.Session
	err     error

	move    *time.Ticker
	clock   *time.Ticker
	ticking bool
}

// NewApp creates an app for an initialised screen. The caller owns the
// screen and must call Fini on it.
func NewApp(screen tcell.Screen, cfg config.SnakeConfig, opts session.Options) *App {
	a := &App{
		screen: screen,
		board:  cfg.Board,
		opts:   opts,
		move:   time.NewTicker(cfg.Timing.MoveInterval),
		clock:  time.NewTicker(cfg.Timing.ClockInterval),
	}
	a.stopTimers()
	a.rebuild()
	return a
}

// rebuild starts over with a board that fits the current screen size.
func (a *App) rebuild() {
	a.stopTimers()
	width, height := a.screen.Size()
	a.screen.Clear()

	layout, err := session.LayoutFor(width, height, a.board)
	if err != nil {
		a.err, a.session, a.surface = err, nil, nil
		a.drawTooSmall(width, height)
		return
	}

	surface := NewSurface(a.screen, layout)
	opts := a.opts
	opts.Surface = surface
	s, err := session.New(layout.Grid, opts)
	if err != nil {
		a.err, a.session, a.surface = err, nil, nil
		a.drawTooSmall(width, height)
		return
	}
	a.err = nil
	a.surface = surface
	a.session = s
	if a.opts.Logger != nil {
		a.opts.Logger.Debug("board built", "width", width, "height", height, "rows", layout.Grid.Rows, "cols", layout.Grid.Cols)
	}
}

func (a *App) drawTooSmall(width, height int) {
	msg := fmt.Sprintf("Terminal too small (%dx%d)", width, height)
	x := max((width-len(msg))/2, 0)
	for i, r := range msg {
		a.screen.SetContent(x+i, height/2, r, nil, tcell.StyleDefault.Foreground(tcell.ColorRed))
	}
}

func (a *App) startTimers() {
	a.move.Reset(a.session.MoveInterval())
	a.clock.Reset(a.session.ClockInterval())
	a.ticking = true
}

func (a *App) stopTimers() {
	a.move.Stop()
	a.clock.Stop()
	a.ticking = false
}

// actionFor maps a key event to a game action.
func actionFor(ev *tcell.EventKey) core.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyEnter:
		return core.ActionStart
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return core.ActionUp
		case 's', 'j':
			return core.ActionDown
		case 'a', 'h':
			return core.ActionLeft
		case 'd', 'l':
			return core.ActionRight
		case ' ':
			return core.ActionStart
		case 'r':
			return core.ActionRestart
		case 'q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action := actionFor(ev)
		if action == core.ActionQuit {
			return false
		}
		a.handleAction(action)

	case *tcell.EventResize:
		a.screen.Sync()
		a.rebuild()
	}
	return true
}

func (a *App) handleAction(action core.Action) {
	if a.session == nil {
		return
	}
	if d, ok := action.Direction(); ok {
		a.session.Steer(d)
		return
	}

	switch action {
	case core.ActionStart:
		if a.session.Start() {
			a.startTimers()
		}
	case core.ActionRestart:
		if a.session.Status() != snake.StatusNotStarted {
			a.session.Restart()
			a.startTimers()
		}
	}
}

// StepMove advances the snake one cell and retunes the move timer.
func (a *App) StepMove() {
	if a.session == nil {
		return
	}
	res := a.session.Step()
	if res.Kind != snake.TickMoved {
		a.stopTimers()
		return
	}
	a.move.Reset(a.session.MoveInterval())
}

// StepClock advances the elapsed-time counter.
func (a *App) StepClock() {
	if a.session != nil {
		a.session.Second()
	}
}

// Run services events and timers until the user quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	defer a.stopTimers()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	a.screen.Show()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if !a.HandleEvent(ev) {
				return nil
			}

		case <-a.move.C:
			if a.ticking {
				a.StepMove()
			}

		case <-a.clock.C:
			if a.ticking {
				a.StepClock()
			}
		}
		a.screen.Show()
	}
}

// Session returns the running session, or nil if the screen is too small.
func (a *App) Session() *session.Session {
	return a.session
}

// Err returns why no board could be created, if any.
func (a *App) Err() error {
	return a.err
}

// Run opens the terminal, plays until the user quits and restores the
// terminal.
func Run(ctx context.Context, cfg config.SnakeConfig, opts session.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	return NewApp(screen, cfg, opts).Run(ctx)
}
