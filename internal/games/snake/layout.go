package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// GridFor derives the board from the size a display surface reports and the
// size of one cell in the same units. Partial cells are dropped.
func GridFor(width, height, cellW, cellH int) (core.Grid, error) {
	if cellW <= 0 || cellH <= 0 {
		return core.Grid{}, fmt.Errorf("%w: cell %dx%d", ErrInvalidGrid, cellW, cellH)
	}
	grid := core.Grid{Rows: height / cellH, Cols: width / cellW}
	if !grid.Valid() {
		return core.Grid{}, fmt.Errorf("%w: %dx%d with cell %dx%d", ErrSurfaceTooSmall, width, height, cellW, cellH)
	}
	return grid, nil
}
