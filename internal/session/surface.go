// Package session wires one snake game to its collaborators: the display
// surface it pushes diffs to, the score store, the run history and the two
// scheduler entry points (move and clock).
package session

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Surface receives board diffs and status text. Implementations only draw;
// they never feed state back into the game.
type Surface interface {
	Build(grid core.Grid)
	MarkCell(c core.Cell, cat snake.Category)
	UnmarkCell(c core.Cell, cat snake.Category)
	SetScore(score, high int)
	SetRecord(record bool)
	SetElapsed(text string)
	SetStatus(status snake.Status, cause snake.Cause)
}

// ScoreStore persists the best score across game instances.
type ScoreStore interface {
	HighScore() (int, error)
	SetHighScore(score int) error
}

// RunRecorder keeps the history of finished runs.
type RunRecorder interface {
	SaveScore(runID string, score int, duration time.Duration) (int64, error)
}

// Board is an in-memory Surface: a matrix of category bitmasks plus the
// status line values. Frontends embed it or read it when rendering.
type Board struct {
	grid    core.Grid
	cells   []snake.Category
	head    core.Cell // last cell marked as snake
	hasHead bool
	score   int
	high    int
	record  bool
	elapsed string
	status  snake.Status
	cause   snake.Cause
}

// NewBoard returns an empty board. Build must be called before marking cells.
func NewBoard() *Board {
	return &Board{elapsed: "00:00"}
}

// Build sizes the board for grid and clears every cell.
func (b *Board) Build(grid core.Grid) {
	b.grid = grid
	b.hasHead = false
	if cap(b.cells) >= grid.Area() {
		b.cells = b.cells[:grid.Area()]
		clear(b.cells)
	} else {
		b.cells = make([]snake.Category, grid.Area())
	}
}

// MarkCell adds cat to the cell. Out-of-range cells are ignored.
// The engine marks the new head last, so the latest snake mark is the head.
func (b *Board) MarkCell(c core.Cell, cat snake.Category) {
	if !b.grid.Contains(c) {
		return
	}
	b.cells[b.grid.Index(c)] |= cat
	if cat&snake.CategorySnake != 0 {
		b.head = c
		b.hasHead = true
	}
}

// UnmarkCell removes cat from the cell. Out-of-range cells are ignored.
func (b *Board) UnmarkCell(c core.Cell, cat snake.Category) {
	if !b.grid.Contains(c) {
		return
	}
	b.cells[b.grid.Index(c)] &^= cat
	if cat&snake.CategorySnake != 0 && b.hasHead && c == b.head {
		b.hasHead = false
	}
}

// Head returns the snake head as seen by the board.
func (b *Board) Head() (core.Cell, bool) {
	return b.head, b.hasHead
}

// SetScore sets the score and high score shown in the HUD.
func (b *Board) SetScore(score, high int) {
	b.score = score
	b.high = high
}

// SetRecord marks whether the run set a new stored high score. The game
// over overlay announces it.
func (b *Board) SetRecord(record bool) {
	b.record = record
}

// SetElapsed sets the run time shown in the HUD.
func (b *Board) SetElapsed(text string) {
	b.elapsed = text
}

// SetStatus sets the game status and, once over, why it ended.
func (b *Board) SetStatus(status snake.Status, cause snake.Cause) {
	b.status = status
	b.cause = cause
}

// At returns the categories marked on c.
func (b *Board) At(c core.Cell) snake.Category {
	if !b.grid.Contains(c) {
		return 0
	}
	return b.cells[b.grid.Index(c)]
}

// Has reports whether c is marked with cat.
func (b *Board) Has(c core.Cell, cat snake.Category) bool {
	return b.At(c)&cat != 0
}

// Count returns how many cells carry cat.
func (b *Board) Count(cat snake.Category) int {
	n := 0
	for _, v := range b.cells {
		if v&cat != 0 {
			n++
		}
	}
	return n
}

// Grid returns the dimensions the board was built for.
func (b *Board) Grid() core.Grid { return b.grid }

// Score returns the last score set.
func (b *Board) Score() int { return b.score }

// HighScore returns the last high score set.
func (b *Board) HighScore() int { return b.high }

// Record reports whether the board announces a new high score.
func (b *Board) Record() bool { return b.record }

// Elapsed returns the last run time set.
func (b *Board) Elapsed() string { return b.elapsed }

// Status returns the last status set.
func (b *Board) Status() snake.Status { return b.status }

// Cause returns the last game-over cause set.
func (b *Board) Cause() snake.Cause { return b.cause }

var _ Surface = (*Board)(nil)
