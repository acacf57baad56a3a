package sokoban

import (
	"errors"
	"fmt"
)

// Board size limits. The packed form keeps column in bits 0-5 and row in
// bits 6-11, so neither axis may reach 64.
const (
	MaxRows = 64
	MaxCols = 64

	axisBits = 6
	axisMask = 1<<axisBits - 1
)

// Packed is the compact integer form of a Position.
type Packed uint16

// PullMarker is set on a packed undo entry whose move pushed a box.
// It sits above the row bits and never overlaps them.
const PullMarker Packed = 1 << (2 * axisBits)

// ErrPositionOverflow is returned when a row or column does not fit the
// packed encoding.
var ErrPositionOverflow = errors.New("sokoban: position out of range")

// Position is a (row, column) board coordinate.
// Row grows downward, column grows to the right.
type Position struct {
	Row int
	Col int
}

// P is a convenience constructor that does not validate.
func P(row, col int) Position {
	return Position{Row: row, Col: col}
}

// NewPosition returns a validated position inside the 64x64 limit.
func NewPosition(row, col int) (Position, error) {
	p := Position{Row: row, Col: col}
	if !p.Valid() {
		return Position{}, fmt.Errorf("%w: row %d, col %d (limit %dx%d)", ErrPositionOverflow, row, col, MaxRows, MaxCols)
	}
	return p, nil
}

// Valid reports whether the position fits the packed encoding.
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < MaxRows && p.Col >= 0 && p.Col < MaxCols
}

// Step returns the neighbouring position in the given direction.
func (p Position) Step(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Pack encodes the position.
func (p Position) Pack() (Packed, error) {
	return Encode(p.Row, p.Col)
}

// Encode packs (row, col), rejecting values that would lose bits.
func Encode(row, col int) (Packed, error) {
	if _, err := NewPosition(row, col); err != nil {
		return 0, err
	}
	return Packed(row<<axisBits | col), nil
}

// Decode unpacks a position, ignoring the pull marker.
func Decode(v Packed) Position {
	return Position{
		Row: int(v>>axisBits) & axisMask,
		Col: int(v) & axisMask,
	}
}
