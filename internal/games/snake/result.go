package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Status is the lifecycle state of one game instance.
type Status int

const (
	StatusNotStarted Status = iota
	StatusRunning
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusRunning:
		return "running"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Cause explains why a game ended.
type Cause int

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
	CauseBoardFull
)

func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseBoardFull:
		return "board_full"
	default:
		return "none"
	}
}

// TickKind classifies the outcome of Tick.
type TickKind int

const (
	// TickIdle is returned when the game is not running; nothing changed.
	TickIdle TickKind = iota
	// TickMoved means the snake advanced one cell.
	TickMoved
	// TickGameOver means this tick ended the game.
	TickGameOver
)

func (k TickKind) String() string {
	switch k {
	case TickIdle:
		return "idle"
	case TickMoved:
		return "moved"
	case TickGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// TickResult describes what changed during one tick so a display surface can
// redraw only the affected cells.
type TickResult struct {
	Kind  TickKind
	Cause Cause // set when Kind is TickGameOver
	Tick  uint64

	Direction core.Direction // direction applied on this tick
	NewHead   core.Cell      // target cell of the move, even when it ended the game

	Removed    core.Cell // tail cell freed by the move
	HasRemoved bool

	Grew      bool
	Eaten     core.Cell // food cell consumed, valid when Grew
	Food      core.Cell // new food cell, valid when FoodMoved && HasFood
	FoodMoved bool
	HasFood   bool

	Score            int
	HighScore        int
	HighScoreChanged bool
}

// Advanced reports whether the snake actually moved on this tick.
// A full board ends the game after the final move, walls and self hits before it.
func (r TickResult) Advanced() bool {
	return r.Kind == TickMoved || (r.Kind == TickGameOver && r.Cause == CauseBoardFull)
}

// Category is a visual category a board cell can be marked with.
type Category uint8

const (
	CategorySnake Category = 1 << iota
	CategoryFood
)

func (c Category) String() string {
	switch c {
	case CategorySnake:
		return "snake"
	case CategoryFood:
		return "food"
	default:
		return "none"
	}
}

// Mark is a single cell/category pair of a Patch.
type Mark struct {
	Cell     core.Cell
	Category Category
}

// Patch is a minimal board diff. Unmarks apply before marks.
type Patch struct {
	Unmark []Mark
	Mark   []Mark
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return len(p.Unmark) == 0 && len(p.Mark) == 0
}

// Patch converts the tick result into board operations.
func (r TickResult) Patch() Patch {
	var p Patch
	if !r.Advanced() {
		return p
	}
	if r.HasRemoved {
		p.Unmark = append(p.Unmark, Mark{Cell: r.Removed, Category: CategorySnake})
	}
	if r.Grew {
		p.Unmark = append(p.Unmark, Mark{Cell: r.Eaten, Category: CategoryFood})
	}
	p.Mark = append(p.Mark, Mark{Cell: r.NewHead, Category: CategorySnake})
	if r.FoodMoved && r.HasFood {
		p.Mark = append(p.Mark, Mark{Cell: r.Food, Category: CategoryFood})
	}
	return p
}
