package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Score     int
	HighScore int
	SnakeLen  int
	Head      core.Cell
	Dir       core.Direction
	Food      core.Cell
	HasFood   bool
	Status    Status
	Cause     Cause
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		HighScore: g.highScore,
		SnakeLen:  len(g.snake),
		Head:      g.Head(),
		Dir:       g.direction,
		Food:      g.food,
		HasFood:   g.hasFood,
		Status:    g.status,
		Cause:     g.cause,
	}
}
