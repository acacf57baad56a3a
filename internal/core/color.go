package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for board elements and status text.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorOrange
	ColorGray
)

// Attr is a set of text attributes for a screen cell.
type Attr uint8

const (
	AttrReverse Attr = 1 << iota // swap foreground and background
	AttrBold
)

// Has reports whether every attribute in mask is set.
func (a Attr) Has(mask Attr) bool {
	return a&mask == mask
}
