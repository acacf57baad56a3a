package tui

import (
	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
)

// Neighbour bits for wall art.
const (
	wallNorth = 1 << iota
	wallEast
	wallSouth
	wallWest
)

// wallArt is indexed by the neighbour pattern of a wall cell.
var wallArt = [16]rune{
	'┼', '│', '─', '└',
	'│', '│', '┌', '├',
	'─', '┘', '─', '┴',
	'┐', '┤', '┬', '┼',
}

// Board element colors.
const (
	wallColor       = core.ColorBlue
	boxColor        = core.ColorYellow
	storedBoxColor  = core.ColorGreen
	storeColor      = core.ColorCyan
	workerColor     = core.ColorBrightYellow
	workerDoneColor = core.ColorOrange
)

// BoardRenderer draws a board into a screen buffer.
type BoardRenderer struct {
	SimpleWalls bool
}

// WallPattern returns the neighbour pattern of the cell at (r, c):
// north=1, east=2, south=4, west=8 for each adjacent wall.
func WallPattern(b *sokoban.Board, r, c int) int {
	pattern := 0
	if b.CellAt(r-1, c).IsWall() {
		pattern |= wallNorth
	}
	if b.CellAt(r, c+1).IsWall() {
		pattern |= wallEast
	}
	if b.CellAt(r+1, c).IsWall() {
		pattern |= wallSouth
	}
	if b.CellAt(r, c-1).IsWall() {
		pattern |= wallWest
	}
	return pattern
}

// Glyph returns the screen cell for board cell (r, c).
func (br BoardRenderer) Glyph(b *sokoban.Board, r, c int) core.Cell {
	cell := b.CellAt(r, c)

	var out core.Cell
	switch {
	case cell.IsWall():
		out = core.Cell{Rune: '#', Color: wallColor}
		if !br.SimpleWalls {
			out.Rune = wallArt[WallPattern(b, r, c)]
		}
	case cell.HasWorker() && cell.IsStore():
		out = core.Cell{Rune: '+', Color: workerDoneColor}
	case cell.HasBox() && cell.IsStore():
		out = core.Cell{Rune: '*', Color: storedBoxColor}
	case cell.HasWorker():
		out = core.Cell{Rune: '@', Color: workerColor}
	case cell.HasBox():
		out = core.Cell{Rune: '$', Color: boxColor}
	case cell.IsStore():
		out = core.Cell{Rune: '.', Color: storeColor}
	default:
		out = core.Cell{Rune: ' '}
	}

	if cell.Highlight {
		out.Attr |= core.AttrReverse
	}
	return out
}

// Draw paints every stored cell of b with its top-left corner at (x, y).
// Cells past the end of a short row are left untouched.
func (br BoardRenderer) Draw(s *core.Screen, b *sokoban.Board, x, y int) {
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.RowLen(r); c++ {
			s.SetCell(x+c, y+r, br.Glyph(b, r, c))
		}
	}
}

// Placement returns where a board is drawn in a width x height area.
func Placement(b *sokoban.Board, width, height int) core.Rect {
	return core.Centered(width, height, b.Cols(), b.Rows())
}
