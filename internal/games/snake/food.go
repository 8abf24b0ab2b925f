package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// placeFood puts the food on a uniformly random cell not covered by the snake.
// Random probes are cheap while the board is mostly empty; once they keep
// hitting the snake, a scan over the free cells picks one uniformly.
// Returns false and clears the food when no free cell is left.
func (g *Game) placeFood() bool {
	free := g.grid.Area() - len(g.snake)
	if free <= 0 {
		g.hasFood = false
		return false
	}

	for range foodAttempts {
		c := core.Cell{Row: g.rng.Intn(g.grid.Rows), Col: g.rng.Intn(g.grid.Cols)}
		if !g.isOccupied(c) {
			g.food = c
			g.hasFood = true
			return true
		}
	}

	n := g.rng.Intn(free)
	for i := range g.grid.Area() {
		c := g.grid.CellAt(i)
		if g.isOccupied(c) {
			continue
		}
		if n == 0 {
			g.food = c
			g.hasFood = true
			return true
		}
		n--
	}

	g.hasFood = false
	return false
}
