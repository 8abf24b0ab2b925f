// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Cell is one board coordinate. Rows grow downwards, columns to the right.
type Cell struct {
	Row, Col int
}

// String returns the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns the cell moved one step in direction d.
func (c Cell) Add(d Direction) Cell {
	dr, dc := d.Delta()
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Distance returns the Manhattan distance between two cells.
func (c Cell) Distance(other Cell) int {
	return Abs(c.Row-other.Row) + Abs(c.Col-other.Col)
}

// Adjacent reports whether two cells share an edge.
func (c Cell) Adjacent(other Cell) bool {
	return c.Distance(other) == 1
}

// Grid holds the board dimensions of one game instance.
type Grid struct {
	Rows, Cols int
}

// Valid reports whether both dimensions are positive.
func (g Grid) Valid() bool {
	return g.Rows > 0 && g.Cols > 0
}

// Area returns the number of cells on the board.
func (g Grid) Area() int {
	return g.Rows * g.Cols
}

// Contains reports whether the cell lies inside [0,Rows)x[0,Cols).
func (g Grid) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Index returns the row-major linear index of an in-bounds cell.
func (g Grid) Index(c Cell) int {
	return c.Row*g.Cols + c.Col
}

// CellAt is the inverse of Index.
func (g Grid) CellAt(i int) Cell {
	return Cell{Row: i / g.Cols, Col: i % g.Cols}
}

// Direction is a direction of travel on the board.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the unit vector (row, col) for the direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// IsOpposite reports whether d and other point in reverse directions.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Rect represents an axis-aligned box in screen coordinates.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Centered returns a w x h rectangle centered inside r.
func (r Rect) Centered(w, h int) Rect {
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
