package sokoban

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidBoard is returned by NewBoard when the grid and worker disagree.
var ErrInvalidBoard = errors.New("sokoban: invalid board")

// Board is the grid of cells for one level.
// Rows may have different lengths; anything outside the stored cells reads
// as open floor. The tracked worker position is the single source of truth
// for where the worker is; MovePiece keeps the grid in sync with it.
type Board struct {
	cells  [][]Cell
	widths []int // row lengths as loaded
	cols   int
	worker Position
	level  int
}

// NewBoard builds a board from rows of cells. The rows are copied.
// The worker position must hold the only worker on the grid.
func NewBoard(level int, rows [][]Cell, worker Position) (*Board, error) {
	if len(rows) > MaxRows {
		return nil, fmt.Errorf("%w: %d rows (limit %d)", ErrPositionOverflow, len(rows), MaxRows)
	}

	b := &Board{
		cells:  make([][]Cell, len(rows)),
		widths: make([]int, len(rows)),
		worker: worker,
		level:  level,
	}

	workers := 0
	for r, row := range rows {
		if len(row) > MaxCols {
			return nil, fmt.Errorf("%w: row %d has %d columns (limit %d)", ErrPositionOverflow, r, len(row), MaxCols)
		}
		b.cells[r] = make([]Cell, len(row))
		copy(b.cells[r], row)
		b.widths[r] = len(row)
		if len(row) > b.cols {
			b.cols = len(row)
		}
		for _, c := range row {
			if c.HasWorker() {
				workers++
			}
		}
	}

	if workers != 1 {
		return nil, fmt.Errorf("%w: found %d workers", ErrInvalidBoard, workers)
	}
	if !b.inBounds(worker.Row, worker.Col) || !b.cells[worker.Row][worker.Col].HasWorker() {
		return nil, fmt.Errorf("%w: no worker at %s", ErrInvalidBoard, worker)
	}

	return b, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return len(b.cells)
}

// Cols returns the length of the longest row.
func (b *Board) Cols() int {
	return b.cols
}

// RowLen returns the stored length of row r, 0 outside the board.
func (b *Board) RowLen(r int) int {
	if r < 0 || r >= len(b.cells) {
		return 0
	}
	return len(b.cells[r])
}

// Worker returns the worker's current position.
func (b *Board) Worker() Position {
	return b.worker
}

// Level returns the level ordinal the board was loaded from.
func (b *Board) Level() int {
	return b.level
}

// inBounds reports whether (r, c) is a stored cell.
func (b *Board) inBounds(r, c int) bool {
	return r >= 0 && r < len(b.cells) && c >= 0 && c < len(b.cells[r])
}

// Addressable reports whether a piece may be placed at (r, c).
// Cells to the right of a short row are addressable and get created on
// demand; cells above, below or left of the map are not.
func (b *Board) Addressable(r, c int) bool {
	return r >= 0 && r < len(b.cells) && c >= 0 && c < MaxCols
}

// CellAt returns the cell at (r, c).
// Out-of-bounds coordinates read as open floor, never as an error.
func (b *Board) CellAt(r, c int) Cell {
	if !b.inBounds(r, c) {
		return Floor()
	}
	return b.cells[r][c]
}

// At is CellAt for a Position.
func (b *Board) At(p Position) Cell {
	return b.CellAt(p.Row, p.Col)
}

// set stores a cell, growing a short row with floor if needed.
// Positions that are not addressable are ignored.
func (b *Board) set(r, c int, cell Cell) {
	if !b.Addressable(r, c) {
		return
	}
	row := b.cells[r]
	for len(row) <= c {
		row = append(row, Floor())
	}
	row[c] = cell
	b.cells[r] = row
	if len(row) > b.cols {
		b.cols = len(row)
	}
}

// SetHighlight marks the cell at (r, c) for highlighted drawing.
// No-op outside the board and on walls.
func (b *Board) SetHighlight(r, c int) {
	if !b.inBounds(r, c) || b.cells[r][c].IsWall() {
		return
	}
	b.cells[r][c].Highlight = true
}

// ClearHighlight removes the highlight from the cell at (r, c).
func (b *Board) ClearHighlight(r, c int) {
	if !b.inBounds(r, c) {
		return
	}
	b.cells[r][c].Highlight = false
}

// MovePiece moves whatever occupies (r0, c0) to (r1, c1).
// The source keeps its store and highlight and becomes empty floor; the
// destination keeps its own store and highlight and gains the occupant.
// If the source is the worker's position the tracked position follows.
// A wall destination leaves the board unchanged.
func (b *Board) MovePiece(r0, c0, r1, c1 int) {
	src := b.CellAt(r0, c0)
	dst := b.CellAt(r1, c1)
	if dst.IsWall() || src.IsWall() {
		return
	}

	if b.worker.Row == r0 && b.worker.Col == c0 {
		b.worker = Position{Row: r1, Col: c1}
	}

	occupant := src.Occupant
	src.Occupant = OccupantNone
	dst.Occupant = occupant

	b.set(r0, c0, src)
	b.set(r1, c1, dst)
}

// Move is MovePiece for Positions.
func (b *Board) Move(from, to Position) {
	b.MovePiece(from.Row, from.Col, to.Row, to.Col)
}

// Boxes returns the positions of every box, in row-major order.
func (b *Board) Boxes() []Position {
	var out []Position
	b.each(func(p Position, c Cell) {
		if c.HasBox() {
			out = append(out, p)
		}
	})
	return out
}

// Stores returns the positions of every storage cell, in row-major order.
func (b *Board) Stores() []Position {
	var out []Position
	b.each(func(p Position, c Cell) {
		if c.IsStore() {
			out = append(out, p)
		}
	})
	return out
}

// each visits every stored cell in row-major order.
func (b *Board) each(fn func(Position, Cell)) {
	for r, row := range b.cells {
		for c, cell := range row {
			fn(Position{Row: r, Col: c}, cell)
		}
	}
}

// Validate checks the cell invariants and that the grid agrees with the
// tracked worker position.
func (b *Board) Validate() error {
	workers := 0
	var err error
	b.each(func(p Position, c Cell) {
		if err != nil {
			return
		}
		if c.IsWall() && (c.Occupant != OccupantNone || c.Store || c.Highlight) {
			err = fmt.Errorf("%w: wall at %s carries other state", ErrInvalidBoard, p)
			return
		}
		if c.HasWorker() {
			workers++
			if p != b.worker {
				err = fmt.Errorf("%w: worker at %s but tracked at %s", ErrInvalidBoard, p, b.worker)
			}
		}
	})
	if err != nil {
		return err
	}
	if workers != 1 {
		return fmt.Errorf("%w: found %d workers", ErrInvalidBoard, workers)
	}
	return nil
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([][]Cell, len(b.cells))
	for r, row := range b.cells {
		cells[r] = make([]Cell, len(row))
		copy(cells[r], row)
	}
	widths := make([]int, len(b.widths))
	copy(widths, b.widths)
	return &Board{
		cells:  cells,
		widths: widths,
		cols:   b.cols,
		worker: b.worker,
		level:  b.level,
	}
}

// Equal reports whether two boards read the same everywhere.
// Cells materialised as floor past the end of a short row compare equal to
// the implicit floor they replaced.
func (b *Board) Equal(other *Board) bool {
	if b.Rows() != other.Rows() || b.worker != other.worker || b.level != other.level {
		return false
	}
	cols := max(b.cols, other.cols)
	for r := range b.cells {
		for c := 0; c < cols; c++ {
			if b.CellAt(r, c) != other.CellAt(r, c) {
				return false
			}
		}
	}
	return true
}

// String renders the board in the level-map alphabet, one line per row.
// Plain floor materialised past the loaded end of a row is not rendered.
func (b *Board) String() string {
	var sb strings.Builder
	for r, row := range b.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		end := len(row)
		for end > b.widths[r] && row[end-1] == Floor() {
			end--
		}
		for _, c := range row[:end] {
			sb.WriteRune(c.Glyph())
		}
	}
	return sb.String()
}
