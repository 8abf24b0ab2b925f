package core

// Color represents a foreground color for a screen cell.
// Frontends map these to lipgloss or tcell styles.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorBrightRed
	ColorBrightGreen
	ColorBrightWhite
	ColorGray
)
