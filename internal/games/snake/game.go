// Package snake implements the snake engine: a deterministic discrete-time
// state machine advanced once per tick by an external scheduler.
//
// The engine owns the snake, the food, the direction, the score and the game
// status of one game instance. Each tick returns a TickResult describing the
// change so the caller can patch its display instead of redrawing everything.
package snake

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// DefaultFoodPoints is the score awarded per food eaten.
const DefaultFoodPoints = 10

// foodAttempts bounds the random probes before falling back to a scan.
const foodAttempts = 32

var (
	// ErrInvalidGrid is returned for non-positive grid or cell dimensions.
	ErrInvalidGrid = errors.New("snake: grid dimensions must be positive")
	// ErrSurfaceTooSmall is returned when a surface cannot hold a single cell.
	ErrSurfaceTooSmall = errors.New("snake: surface too small for one cell")
)

// Game is one game instance.
type Game struct {
	grid   core.Grid
	rng    *rand.Rand
	points int
	tick   uint64

	status Status
	cause  Cause

	// Snake state
	snake     []core.Cell // Head at index 0
	occupied  *intmap.Map[int, struct{}]
	direction core.Direction // Direction used on the most recent tick
	pending   core.Direction // Applied at the start of the next tick

	food    core.Cell
	hasFood bool

	score     int
	highScore int
}

// New creates a game on the given grid. The game starts in StatusNotStarted
// with an empty board; call Reset to start playing.
func New(grid core.Grid, rng *rand.Rand) (*Game, error) {
	if !grid.Valid() {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, grid.Rows, grid.Cols)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Game{
		grid:      grid,
		rng:       rng,
		points:    DefaultFoodPoints,
		occupied:  intmap.New[int, struct{}](grid.Area()),
		direction: core.DirRight,
		pending:   core.DirRight,
	}, nil
}

// Initialize creates a running game with a fresh random snake and food.
func Initialize(rows, cols int, rng *rand.Rand) (*Game, error) {
	g, err := New(core.Grid{Rows: rows, Cols: cols}, rng)
	if err != nil {
		return nil, err
	}
	g.Reset()
	return g, nil
}

// SetFoodPoints overrides the score awarded per food. Non-positive values are ignored.
func (g *Game) SetFoodPoints(points int) {
	if points > 0 {
		g.points = points
	}
}

// SetHighScore seeds the high score, typically from persistent storage.
func (g *Game) SetHighScore(score int) {
	g.highScore = max(score, 0)
}

// Reset (re)initializes the game: one random snake cell heading right, food on
// a free cell, score zero, status running. The returned patch erases the
// previous board and draws the new one.
func (g *Game) Reset() Patch {
	var p Patch
	for _, c := range g.snake {
		p.Unmark = append(p.Unmark, Mark{Cell: c, Category: CategorySnake})
	}
	if g.hasFood {
		p.Unmark = append(p.Unmark, Mark{Cell: g.food, Category: CategoryFood})
	}

	g.tick = 0
	g.score = 0
	g.status = StatusRunning
	g.cause = CauseNone
	g.direction = core.DirRight
	g.pending = core.DirRight

	start := core.Cell{Row: g.rng.Intn(g.grid.Rows), Col: g.rng.Intn(g.grid.Cols)}
	g.snake = append(g.snake[:0], start)
	g.rebuildOccupancy()
	g.placeFood()

	p.Mark = append(p.Mark, Mark{Cell: start, Category: CategorySnake})
	if g.hasFood {
		p.Mark = append(p.Mark, Mark{Cell: g.food, Category: CategoryFood})
	}
	return p
}

// SetDirection records d as the direction for the next tick. A request for the
// reverse of the direction the snake last moved in is ignored, so several
// inputs between two ticks can never fold the snake back onto itself.
// Reports whether the request was accepted.
func (g *Game) SetDirection(d core.Direction) bool {
	if d < core.DirRight || d > core.DirUp {
		return false
	}
	if d.IsOpposite(g.direction) {
		return false
	}
	g.pending = d
	return true
}

// Tick advances the game by one move. It is a no-op returning TickIdle unless
// the game is running.
func (g *Game) Tick() TickResult {
	if g.status != StatusRunning || len(g.snake) == 0 {
		return TickResult{
			Kind:      TickIdle,
			Tick:      g.tick,
			Direction: g.direction,
			Score:     g.score,
			HighScore: g.highScore,
		}
	}

	g.tick++
	g.direction = g.pending
	newHead := g.snake[0].Add(g.direction)

	res := TickResult{
		Tick:      g.tick,
		Direction: g.direction,
		NewHead:   newHead,
		Score:     g.score,
		HighScore: g.highScore,
	}

	// Wall collision
	if !g.grid.Contains(newHead) {
		return g.end(res, CauseWall)
	}

	grow := g.hasFood && newHead == g.food
	tail := g.snake[len(g.snake)-1]

	// Self collision; the tail cell is free unless the snake grows this tick
	if g.isOccupied(newHead) && (grow || newHead != tail) {
		return g.end(res, CauseSelf)
	}

	// Prepend the new head
	g.snake = append(g.snake, core.Cell{})
	copy(g.snake[1:], g.snake)
	g.snake[0] = newHead
	g.occupied.Put(g.grid.Index(newHead), struct{}{})

	if grow {
		g.score += g.points
		res.Grew = true
		res.Eaten = newHead
		res.Score = g.score
		if g.score > g.highScore {
			g.highScore = g.score
			res.HighScoreChanged = true
		}
		res.HighScore = g.highScore

		res.FoodMoved = true
		res.HasFood = g.placeFood()
		res.Food = g.food
		if !res.HasFood {
			return g.end(res, CauseBoardFull)
		}
	} else {
		g.snake = g.snake[:len(g.snake)-1]
		if tail != newHead {
			g.occupied.Del(g.grid.Index(tail))
		}
		res.Removed = tail
		res.HasRemoved = true
	}

	res.Kind = TickMoved
	return res
}

// end switches to game over and completes the result.
func (g *Game) end(res TickResult, cause Cause) TickResult {
	g.status = StatusGameOver
	g.cause = cause
	res.Kind = TickGameOver
	res.Cause = cause
	return res
}

// rebuildOccupancy resynchronises the occupancy index with the snake slice.
func (g *Game) rebuildOccupancy() {
	g.occupied.Clear()
	for _, c := range g.snake {
		g.occupied.Put(g.grid.Index(c), struct{}{})
	}
}

// isOccupied checks if the snake covers the given in-bounds cell.
func (g *Game) isOccupied(c core.Cell) bool {
	_, ok := g.occupied.Get(g.grid.Index(c))
	return ok
}

// --- Accessors ---

// Grid returns the board dimensions.
func (g *Game) Grid() core.Grid {
	return g.grid
}

// Status returns the lifecycle state.
func (g *Game) Status() Status {
	return g.status
}

// Cause returns why the game ended, CauseNone while running.
func (g *Game) Cause() Cause {
	return g.cause
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// HighScore returns the best score known to this game.
func (g *Game) HighScore() int {
	return g.highScore
}

// Direction returns the direction used on the most recent tick.
func (g *Game) Direction() core.Direction {
	return g.direction
}

// Pending returns the direction the next tick will use.
func (g *Game) Pending() core.Direction {
	return g.pending
}

// Cells returns a copy of the snake, head first.
func (g *Game) Cells() []core.Cell {
	out := make([]core.Cell, len(g.snake))
	copy(out, g.snake)
	return out
}

// Head returns the head cell. Only meaningful once the game has been reset.
func (g *Game) Head() core.Cell {
	if len(g.snake) == 0 {
		return core.Cell{}
	}
	return g.snake[0]
}

// Food returns the food cell and whether there is one on the board.
func (g *Game) Food() (core.Cell, bool) {
	return g.food, g.hasFood
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, High: %d, Status: %s\n", g.tick, g.score, g.highScore, g.status)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Pending: %s\n", len(g.snake), g.direction, g.pending)
	if len(g.snake) > 0 {
		fmt.Fprintf(&b, "Head: %s, Food: %s (%v)\n", g.snake[0], g.food, g.hasFood)
	}
	return b.String()
}
