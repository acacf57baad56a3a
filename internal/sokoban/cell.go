// Package sokoban implements the board, move/push engine, undo log and win
// detection for the Sokoban puzzle.
// It has no terminal or file dependencies; loaders and renderers use the
// read-only query methods and mutate state only through Session.
//
// Cells outside the stored grid read as open floor. A piece may move past
// the end of a short row, which grows the row; moves above the first row,
// below the last row or left of column 0 are blocked, so the grid never
// grows in those directions.
package sokoban

// Kind separates walls from floor cells.
type Kind uint8

const (
	KindFloor Kind = iota
	KindWall
)

// Occupant is the single piece standing on a floor cell.
type Occupant uint8

const (
	OccupantNone Occupant = iota
	OccupantBox
	OccupantWorker
)

// String returns a human-readable name for the occupant.
func (o Occupant) String() string {
	switch o {
	case OccupantNone:
		return "None"
	case OccupantBox:
		return "Box"
	case OccupantWorker:
		return "Worker"
	default:
		return "Unknown"
	}
}

// Flag is the bit-set view of a cell, used by renderers and tests.
type Flag uint8

const (
	FlagWall Flag = 1 << iota
	FlagBox
	FlagStore
	FlagWorker
	FlagSpace
	FlagHighlight
)

// Cell is a single board location.
// A wall never carries an occupant, store or highlight. A floor cell has
// exactly one occupant state, so "two occupants" cannot be represented.
type Cell struct {
	Kind      Kind
	Occupant  Occupant
	Store     bool // storage target, never cleared by play
	Highlight bool // presentation only
}

// Floor returns an empty floor cell.
func Floor() Cell {
	return Cell{Kind: KindFloor}
}

// Wall returns a wall cell.
func Wall() Cell {
	return Cell{Kind: KindWall}
}

// StoreCell returns an empty storage cell.
func StoreCell() Cell {
	return Cell{Kind: KindFloor, Store: true}
}

// BoxCell returns a floor cell holding a box.
func BoxCell(onStore bool) Cell {
	return Cell{Kind: KindFloor, Occupant: OccupantBox, Store: onStore}
}

// WorkerCell returns a floor cell holding the worker.
func WorkerCell(onStore bool) Cell {
	return Cell{Kind: KindFloor, Occupant: OccupantWorker, Store: onStore}
}

// IsWall reports whether the cell is a wall.
func (c Cell) IsWall() bool {
	return c.Kind == KindWall
}

// IsSpace reports whether the cell is open floor nothing stands on.
func (c Cell) IsSpace() bool {
	return c.Kind == KindFloor && c.Occupant == OccupantNone
}

// HasBox reports whether a box stands on the cell.
func (c Cell) HasBox() bool {
	return c.Kind == KindFloor && c.Occupant == OccupantBox
}

// HasWorker reports whether the worker stands on the cell.
func (c Cell) HasWorker() bool {
	return c.Kind == KindFloor && c.Occupant == OccupantWorker
}

// IsStore reports whether the cell is a storage target.
func (c Cell) IsStore() bool {
	return c.Kind == KindFloor && c.Store
}

// Flags projects the cell onto the bit-set view.
func (c Cell) Flags() Flag {
	if c.Kind == KindWall {
		return FlagWall
	}

	var f Flag
	switch c.Occupant {
	case OccupantBox:
		f |= FlagBox
	case OccupantWorker:
		f |= FlagWorker
	default:
		f |= FlagSpace
	}
	if c.Store {
		f |= FlagStore
	}
	if c.Highlight {
		f |= FlagHighlight
	}
	return f
}

// Has reports whether any of the given flags is set.
func (c Cell) Has(f Flag) bool {
	return c.Flags()&f != 0
}

// Glyph returns the level-map character for the cell.
// Highlight has no map representation and is ignored.
func (c Cell) Glyph() rune {
	switch {
	case c.IsWall():
		return '#'
	case c.HasWorker() && c.Store:
		return '+'
	case c.HasBox() && c.Store:
		return '*'
	case c.HasWorker():
		return '@'
	case c.HasBox():
		return '$'
	case c.Store:
		return '.'
	default:
		return ' '
	}
}
