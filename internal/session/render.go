package session

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Screen rows taken by chrome: HUD, two borders and the help line.
const (
	hudRows    = 1
	borderSize = 1
	helpRows   = 1
)

// Layout places a grid on a terminal screen.
type Layout struct {
	Grid   core.Grid
	CellW  int
	CellH  int
	X, Y   int // top-left of the board interior
	Width  int // screen size the layout was computed for
	Height int
}

// LayoutFor fits the largest grid into a width x height terminal, using the
// cell size the board configuration picks for that width.
func LayoutFor(width, height int, board config.BoardConfig) (Layout, error) {
	cellW, cellH := board.CellSize(width)
	innerW := width - 2*borderSize
	innerH := height - hudRows - helpRows - 2*borderSize
	grid, err := snake.GridFor(innerW, innerH, cellW, cellH)
	if err != nil {
		return Layout{}, err
	}
	return Layout{
		Grid:   grid,
		CellW:  cellW,
		CellH:  cellH,
		X:      (width-grid.Cols*cellW-2*borderSize)/2 + borderSize,
		Y:      hudRows + borderSize,
		Width:  width,
		Height: height,
	}, nil
}

// CellRect returns the screen rectangle of a grid cell.
func (l Layout) CellRect(c core.Cell) core.Rect {
	return core.NewRect(l.X+c.Col*l.CellW, l.Y+c.Row*l.CellH, l.CellW, l.CellH)
}

// CellAt maps a screen position to the grid cell under it.
func (l Layout) CellAt(x, y int) (core.Cell, bool) {
	if x < l.X || y < l.Y {
		return core.Cell{}, false
	}
	c := core.Cell{Row: (y - l.Y) / l.CellH, Col: (x - l.X) / l.CellW}
	return c, l.Grid.Contains(c)
}

// Frame returns the board border rectangle.
func (l Layout) Frame() core.Rect {
	return core.NewRect(l.X-borderSize, l.Y-borderSize, l.Grid.Cols*l.CellW+2*borderSize, l.Grid.Rows*l.CellH+2*borderSize)
}

// HelpRow returns the screen row reserved for key hints.
func (l Layout) HelpRow() int {
	return l.Height - helpRows
}

// Glyph returns how a cell with the given categories is drawn.
func Glyph(cat snake.Category, head bool) core.Glyph {
	switch {
	case cat&snake.CategorySnake != 0 && head:
		return core.Glyph{Rune: '█', Color: core.ColorBrightGreen}
	case cat&snake.CategorySnake != 0:
		return core.Glyph{Rune: '█', Color: core.ColorGreen}
	case cat&snake.CategoryFood != 0:
		return core.Glyph{Rune: '█', Color: core.ColorRed}
	default:
		return core.Glyph{Rune: ' ', Color: core.ColorDefault}
	}
}

// HUD returns the status line text.
func (b *Board) HUD() string {
	return fmt.Sprintf("SCORE %d   HIGH %d   TIME %s", b.score, b.high, b.elapsed)
}

// Render paints the whole board, its HUD and any status overlay onto dst.
func (b *Board) Render(dst *core.Screen, l Layout) {
	dst.Clear()
	dst.DrawTextCentered(0, b.HUD(), core.ColorBrightWhite)
	dst.DrawBox(l.Frame(), core.ColorGray)

	for i, cat := range b.cells {
		c := b.grid.CellAt(i)
		if cat == 0 {
			continue
		}
		PaintCell(dst, l, c, Glyph(cat, c == b.head && b.hasHead))
	}

	switch b.status {
	case snake.StatusNotStarted:
		renderOverlay(dst, l, core.ColorBrightGreen, "SNAKE", "", "ENTER to start")
	case snake.StatusGameOver:
		title, color := "GAME OVER", core.ColorBrightRed
		if b.cause == snake.CauseBoardFull {
			title, color = "YOU WIN", core.ColorBrightGreen
		}
		lines := []string{title, causeText(b.cause), fmt.Sprintf("Score: %d", b.score)}
		if b.record {
			lines = append(lines, "New high score!")
		}
		lines = append(lines, "", "R to restart")
		renderOverlay(dst, l, color, lines...)
	}
}

// PaintCell fills the screen rectangle of one grid cell.
func PaintCell(dst *core.Screen, l Layout, c core.Cell, g core.Glyph) {
	r := l.CellRect(c)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, y, g.Rune, g.Color)
		}
	}
}

// renderOverlay draws a centered modal box over the board.
func renderOverlay(dst *core.Screen, l Layout, title core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}
	box := l.Frame().Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, line := range lines {
		x := box.X + (box.W-len([]rune(line)))/2
		if i == 0 {
			dst.DrawTextColored(x, box.Y+1, line, title)
			continue
		}
		dst.DrawText(x, box.Y+1+i, line)
	}
}

func causeText(c snake.Cause) string {
	switch c {
	case snake.CauseWall:
		return "Hit the wall"
	case snake.CauseSelf:
		return "Bit your own tail"
	case snake.CauseBoardFull:
		return "The board is full"
	default:
		return ""
	}
}
