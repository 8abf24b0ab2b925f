// Package tcellui is a tcell frontend for snake. Unlike the Bubble Tea
// frontend, which re-renders a full frame per update, it draws each board
// change straight to the terminal cell that changed.
package tcellui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/session"
)

const helpText = "arrows/wasd/hjkl move  enter start  r restart  q quit"

var styles = map[core.Color]tcell.Style{
	core.ColorDefault:     tcell.StyleDefault,
	core.ColorRed:         tcell.StyleDefault.Foreground(tcell.ColorMaroon),
	core.ColorGreen:       tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.ColorYellow:      tcell.StyleDefault.Foreground(tcell.ColorOlive),
	core.ColorCyan:        tcell.StyleDefault.Foreground(tcell.ColorTeal),
	core.ColorBrightRed:   tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	core.ColorBrightGreen: tcell.StyleDefault.Foreground(tcell.ColorLime),
	core.ColorBrightWhite: tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
	core.ColorGray:        tcell.StyleDefault.Foreground(tcell.ColorGray),
}

func styleFor(c core.Color) tcell.Style {
	if s, ok := styles[c]; ok {
		return s
	}
	return tcell.StyleDefault
}

// Surface is a session.Surface that draws onto a tcell screen. Board state
// is kept in the embedded session.Board; this type only adds drawing.
// Changes are buffered by tcell until Show is called.
type Surface struct {
	*session.Board

	screen tcell.Screen
	layout session.Layout
	frame  *core.Screen // scratch buffer for full repaints
}

var _ session.Surface = (*Surface)(nil)

// NewSurface creates a surface drawing into screen with the given layout.
func NewSurface(screen tcell.Screen, layout session.Layout) *Surface {
	return &Surface{
		Board:  session.NewBoard(),
		screen: screen,
		layout: layout,
		frame:  core.NewScreen(layout.Width, layout.Height),
	}
}

// Build implements session.Surface.
func (s *Surface) Build(grid core.Grid) {
	s.Board.Build(grid)
	s.Repaint()
}

// MarkCell implements session.Surface.
func (s *Surface) MarkCell(c core.Cell, cat snake.Category) {
	prev, hadHead := s.Head()
	s.Board.MarkCell(c, cat)
	if hadHead && prev != c {
		// old head turns into body
		s.drawCell(prev)
	}
	s.drawCell(c)
}

// UnmarkCell implements session.Surface.
func (s *Surface) UnmarkCell(c core.Cell, cat snake.Category) {
	s.Board.UnmarkCell(c, cat)
	s.drawCell(c)
}

// SetScore implements session.Surface.
func (s *Surface) SetScore(score, high int) {
	s.Board.SetScore(score, high)
	s.drawHUD()
}

// SetElapsed implements session.Surface.
func (s *Surface) SetElapsed(text string) {
	s.Board.SetElapsed(text)
	s.drawHUD()
}

// SetStatus implements session.Surface. Status changes add or remove the
// overlay, so the whole screen is redrawn.
func (s *Surface) SetStatus(status snake.Status, cause snake.Cause) {
	s.Board.SetStatus(status, cause)
	s.Repaint()
}

// Repaint redraws every screen cell from the board.
func (s *Surface) Repaint() {
	s.Board.Render(s.frame, s.layout)
	s.frame.DrawTextCentered(s.layout.HelpRow(), helpText, core.ColorGray)
	s.blit(0, s.frame.Height())
}

// drawCell redraws one grid cell.
func (s *Surface) drawCell(c core.Cell) {
	head, ok := s.Head()
	g := session.Glyph(s.At(c), ok && head == c)
	style := styleFor(g.Color)

	r := s.layout.CellRect(c)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.screen.SetContent(x, y, g.Rune, nil, style)
		}
	}
}

// drawHUD redraws the status line.
func (s *Surface) drawHUD() {
	for x := 0; x < s.frame.Width(); x++ {
		s.frame.Set(x, 0, ' ')
	}
	s.frame.DrawTextCentered(0, s.HUD(), core.ColorBrightWhite)
	s.blit(0, 1)
}

// blit copies frame rows [from, to) to the terminal.
func (s *Surface) blit(from, to int) {
	for y := from; y < to; y++ {
		for x := 0; x < s.frame.Width(); x++ {
			g := s.frame.GetCell(x, y)
			s.screen.SetContent(x, y, g.Rune, nil, styleFor(g.Color))
		}
	}
}

// Show flushes pending changes to the terminal.
func (s *Surface) Show() {
	s.screen.Show()
}
