package session

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Options configures a Session. Zero values select defaults.
type Options struct {
	Seed       int64      // 0 = time-based
	Rand       *rand.Rand // overrides Seed when set
	FoodPoints int

	MoveInterval    time.Duration
	MinMoveInterval time.Duration
	ClockInterval   time.Duration
	Difficulty      *config.DifficultyManager // nil keeps MoveInterval fixed

	Surface  Surface     // nil = internal Board
	Store    ScoreStore  // nil = high score lives only in memory
	Recorder RunRecorder // nil = finished runs are not recorded
	Logger   *log.Logger // nil = discard

	NewRunID func() string // nil = uuid.NewString
}

// OptionsFromConfig maps a loaded configuration onto Options.
func OptionsFromConfig(cfg config.SnakeConfig) Options {
	return Options{
		FoodPoints:      cfg.Scoring.FoodPoints,
		MoveInterval:    cfg.Timing.MoveInterval,
		MinMoveInterval: cfg.Timing.MinMoveInterval,
		ClockInterval:   cfg.Timing.ClockInterval,
		Difficulty:      config.NewDifficultyManager(cfg.Difficulty),
	}
}

// Session runs one game instance at a time on a fixed grid. It is not safe
// for concurrent use; the caller's event loop serialises every call.
type Session struct {
	opts    Options
	game    *snake.Game
	clock   snake.Clock
	surface Surface
	log     *log.Logger

	runID  string
	record bool // current run holds the stored high score
}

// New creates a session in the not-started state, loads the persisted high
// score and builds the surface.
func New(grid core.Grid, opts Options) (*Session, error) {
	rng := opts.Rand
	if rng == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	if opts.MoveInterval <= 0 {
		opts.MoveInterval = 400 * time.Millisecond
	}
	if opts.ClockInterval <= 0 {
		opts.ClockInterval = time.Second
	}
	if opts.NewRunID == nil {
		opts.NewRunID = uuid.NewString
	}

	game, err := snake.New(grid, rng)
	if err != nil {
		return nil, err
	}
	if opts.FoodPoints > 0 {
		game.SetFoodPoints(opts.FoodPoints)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	surface := opts.Surface
	if surface == nil {
		surface = NewBoard()
	}

	s := &Session{
		opts:    opts,
		game:    game,
		surface: surface,
		log:     logger,
	}

	s.loadHighScore()

	surface.Build(grid)
	surface.SetScore(0, game.HighScore())
	surface.SetElapsed(s.clock.String())
	surface.SetStatus(snake.StatusNotStarted, snake.CauseNone)
	return s, nil
}

// Start begins a game when none is running. Reports whether it did.
func (s *Session) Start() bool {
	if s.game.Status() == snake.StatusRunning {
		return false
	}
	s.begin()
	return true
}

// Restart abandons the current game, if any, and begins a new one.
func (s *Session) Restart() {
	if s.game.Status() == snake.StatusRunning {
		s.log.Debug("run abandoned", "run", s.runID, "score", s.game.Score())
	}
	s.begin()
}

func (s *Session) begin() {
	s.loadHighScore()
	s.apply(s.game.Reset())
	s.clock.Reset()
	s.clock.Start()
	s.runID = s.opts.NewRunID()
	s.record = false

	s.surface.SetRecord(false)
	s.surface.SetScore(s.game.Score(), s.game.HighScore())
	s.surface.SetElapsed(s.clock.String())
	s.surface.SetStatus(snake.StatusRunning, snake.CauseNone)
	s.log.Info("game started", "run", s.runID, "rows", s.game.Grid().Rows, "cols", s.game.Grid().Cols, "high", s.game.HighScore())
}

// Steer requests a direction for the next move. Ignored unless running.
func (s *Session) Steer(d core.Direction) bool {
	if s.game.Status() != snake.StatusRunning {
		return false
	}
	return s.game.SetDirection(d)
}

// Step advances the game by one move and pushes the result to the
// collaborators. Called by the move scheduler.
func (s *Session) Step() snake.TickResult {
	res := s.game.Tick()
	if res.Kind == snake.TickIdle {
		return res
	}

	s.apply(res.Patch())
	if res.HighScoreChanged {
		s.record = s.persistHighScore(res.HighScore)
	}
	if res.Grew {
		s.surface.SetScore(res.Score, s.game.HighScore())
	}
	if res.Kind == snake.TickGameOver {
		s.finish(res)
	}
	return res
}

// Second advances the elapsed-time counter. Called by the clock scheduler.
func (s *Session) Second() bool {
	if !s.clock.Tick() {
		return false
	}
	s.surface.SetElapsed(s.clock.String())
	return true
}

func (s *Session) apply(p snake.Patch) {
	for _, m := range p.Unmark {
		s.surface.UnmarkCell(m.Cell, m.Category)
	}
	for _, m := range p.Mark {
		s.surface.MarkCell(m.Cell, m.Category)
	}
}

// loadHighScore adopts the stored high score when another session has
// raised it past the one this game knows.
func (s *Session) loadHighScore() {
	if s.opts.Store == nil {
		return
	}
	high, err := s.opts.Store.HighScore()
	if err != nil {
		s.log.Warn("could not load high score", "error", err)
		return
	}
	s.game.SetHighScore(max(high, s.game.HighScore()))
}

// persistHighScore offers score to the store and reports whether it is now
// the stored record. A higher stored value replaces the game's high score.
func (s *Session) persistHighScore(score int) bool {
	if s.opts.Store == nil {
		return true
	}
	if err := s.opts.Store.SetHighScore(score); err != nil {
		s.log.Warn("could not save high score", "score", score, "error", err)
		return true
	}
	stored, err := s.opts.Store.HighScore()
	if err != nil {
		s.log.Warn("could not load high score", "error", err)
		return true
	}
	if stored > score {
		s.log.Debug("high score raised elsewhere", "run", s.runID, "score", score, "stored", stored)
		s.game.SetHighScore(stored)
		return false
	}
	return true
}

func (s *Session) finish(res snake.TickResult) {
	s.clock.Stop()
	s.surface.SetRecord(s.record)
	s.surface.SetStatus(snake.StatusGameOver, res.Cause)
	s.log.Info("game over",
		"run", s.runID,
		"cause", res.Cause.String(),
		"score", res.Score,
		"record", s.record,
		"elapsed", s.clock.String(),
	)
	s.log.Debug("final state", "run", s.runID, "state", s.game.DebugState())

	if s.opts.Recorder == nil {
		return
	}
	if _, err := s.opts.Recorder.SaveScore(s.runID, res.Score, s.clock.Elapsed()); err != nil {
		s.log.Warn("could not record run", "run", s.runID, "error", err)
	}
}

// MoveInterval returns the current move period. With difficulty enabled it
// shrinks as the score grows.
func (s *Session) MoveInterval() time.Duration {
	if !s.opts.Difficulty.IsEnabled() {
		return s.opts.MoveInterval
	}
	snap := s.game.Snapshot()
	return s.opts.Difficulty.Interval(s.opts.MoveInterval, s.opts.MinMoveInterval, snap.Score, int(snap.Tick))
}

// ClockInterval returns the elapsed-time period.
func (s *Session) ClockInterval() time.Duration {
	return s.opts.ClockInterval
}

// Status returns the game status.
func (s *Session) Status() snake.Status { return s.game.Status() }

// Cause returns why the last game ended.
func (s *Session) Cause() snake.Cause { return s.game.Cause() }

// Score returns the current game's score.
func (s *Session) Score() int { return s.game.Score() }

// HighScore returns the best score known to this session.
func (s *Session) HighScore() int { return s.game.HighScore() }

// Record reports whether the current or last run set the stored high score.
func (s *Session) Record() bool { return s.record }

// Grid returns the board dimensions.
func (s *Session) Grid() core.Grid { return s.game.Grid() }

// Elapsed returns the run time as MM:SS.
func (s *Session) Elapsed() string { return s.clock.String() }

// RunID returns the id of the current or last run; empty before the first.
func (s *Session) RunID() string { return s.runID }

// Surface returns the surface the session draws on.
func (s *Session) Surface() Surface { return s.surface }

// Snapshot returns the engine snapshot.
func (s *Session) Snapshot() snake.Snapshot {
	return s.game.Snapshot()
}
