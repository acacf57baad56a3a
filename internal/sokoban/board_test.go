package sokoban

import (
	"errors"
	"testing"
)

func TestBoardDimensions(t *testing.T) {
	b := mustBoard(t,
		"#####",
		"#@ .#",
		"# $ ###",
		"#####",
	)

	if b.Rows() != 4 {
		t.Errorf("Rows() = %d, expected 4", b.Rows())
	}
	if b.Cols() != 7 {
		t.Errorf("Cols() = %d, expected 7", b.Cols())
	}
	if b.RowLen(1) != 5 {
		t.Errorf("RowLen(1) = %d, expected 5", b.RowLen(1))
	}
	if b.RowLen(9) != 0 {
		t.Errorf("RowLen(9) = %d, expected 0", b.RowLen(9))
	}
	if b.Worker() != P(1, 1) {
		t.Errorf("Worker() = %v, expected (1,1)", b.Worker())
	}
}

func TestBoardCellAtOutOfBounds(t *testing.T) {
	b := mustBoard(t,
		"###",
		"#@#",
		"##",
	)

	tests := []struct {
		name string
		r, c int
	}{
		{"above", -1, 0},
		{"below", 3, 0},
		{"left", 1, -1},
		{"right of jagged row", 2, 2},
		{"far right", 0, 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.CellAt(tc.r, tc.c); !got.IsSpace() || got.Flags() != FlagSpace {
				t.Errorf("CellAt(%d, %d) = %+v, expected plain space", tc.r, tc.c, got)
			}
		})
	}
}

func TestBoardSetHighlight(t *testing.T) {
	b := mustBoard(t,
		"#####",
		"#@$.#",
		"#####",
	)

	b.SetHighlight(1, 2)
	if !b.CellAt(1, 2).Highlight {
		t.Error("SetHighlight should mark the box cell")
	}

	// Outside the board and on walls nothing happens
	b.SetHighlight(-1, 0)
	b.SetHighlight(1, 40)
	b.SetHighlight(0, 0)
	if b.CellAt(0, 0).Flags() != FlagWall {
		t.Errorf("wall flags = %b after SetHighlight, expected wall only", b.CellAt(0, 0).Flags())
	}
	if b.Rows() != 3 || b.Cols() != 5 {
		t.Errorf("SetHighlight outside bounds changed dimensions to %dx%d", b.Rows(), b.Cols())
	}
}

func TestMovePieceKeepsOverlays(t *testing.T) {
	b := mustBoard(t,
		"######",
		"#@*. #",
		"######",
	)
	b.SetHighlight(1, 2)

	before := b.Clone()

	// Box on a highlighted store moves onto a plain store
	b.MovePiece(1, 2, 1, 3)

	src := b.CellAt(1, 2)
	if !src.IsSpace() || !src.Store || !src.Highlight {
		t.Errorf("source = %+v, expected empty store keeping highlight", src)
	}
	dst := b.CellAt(1, 3)
	if !dst.HasBox() || !dst.Store || dst.Highlight {
		t.Errorf("destination = %+v, expected box on unhighlighted store", dst)
	}

	// Swapped arguments restore both cells
	b.MovePiece(1, 3, 1, 2)
	if !b.Equal(before) {
		t.Errorf("MovePiece is not its own inverse:\n%s\nvs\n%s", b, before)
	}
}

func TestMovePieceTracksWorker(t *testing.T) {
	b := mustBoard(t,
		"#####",
		"#@  #",
		"#####",
	)

	b.MovePiece(1, 1, 1, 2)
	if b.Worker() != P(1, 2) {
		t.Errorf("Worker() = %v, expected (1,2)", b.Worker())
	}
	if !b.CellAt(1, 2).HasWorker() || !b.CellAt(1, 1).IsSpace() {
		t.Errorf("grid out of sync:\n%s", b)
	}
	checkInvariants(t, b)
}

func TestMovePieceIntoWallIsIgnored(t *testing.T) {
	b := mustBoard(t,
		"###",
		"#@#",
		"###",
	)
	before := b.Clone()

	b.MovePiece(1, 1, 1, 2)
	if !b.Equal(before) {
		t.Errorf("MovePiece into a wall changed the board:\n%s", b)
	}
}

func TestMovePieceGrowsShortRow(t *testing.T) {
	b := mustBoard(t,
		"#####",
		"#@",
		"#####",
	)

	b.MovePiece(1, 1, 1, 2)
	if b.RowLen(1) != 3 {
		t.Errorf("RowLen(1) = %d, expected 3", b.RowLen(1))
	}
	if b.Worker() != P(1, 2) {
		t.Errorf("Worker() = %v, expected (1,2)", b.Worker())
	}
	checkInvariants(t, b)
}

func TestNewBoardRejectsBadGrids(t *testing.T) {
	t.Run("no worker", func(t *testing.T) {
		_, err := NewBoard(1, [][]Cell{{Wall(), Floor(), Wall()}}, P(0, 1))
		if !errors.Is(err, ErrInvalidBoard) {
			t.Errorf("error = %v, expected ErrInvalidBoard", err)
		}
	})

	t.Run("two workers", func(t *testing.T) {
		_, err := NewBoard(1, [][]Cell{{WorkerCell(false), WorkerCell(false)}}, P(0, 0))
		if !errors.Is(err, ErrInvalidBoard) {
			t.Errorf("error = %v, expected ErrInvalidBoard", err)
		}
	})

	t.Run("too many columns", func(t *testing.T) {
		row := make([]Cell, MaxCols+1)
		row[0] = WorkerCell(false)
		_, err := NewBoard(1, [][]Cell{row}, P(0, 0))
		if !errors.Is(err, ErrPositionOverflow) {
			t.Errorf("error = %v, expected ErrPositionOverflow", err)
		}
	})

	t.Run("too many rows", func(t *testing.T) {
		rows := make([][]Cell, MaxRows+1)
		rows[0] = []Cell{WorkerCell(false)}
		_, err := NewBoard(1, rows, P(0, 0))
		if !errors.Is(err, ErrPositionOverflow) {
			t.Errorf("error = %v, expected ErrPositionOverflow", err)
		}
	})
}

func TestBoardString(t *testing.T) {
	rows := []string{
		"#####",
		"#+*$#",
		"# . #",
		"#####",
	}
	b := mustBoard(t, rows...)

	expected := "#####\n#+*$#\n# . #\n#####"
	if b.String() != expected {
		t.Errorf("String() = %q, expected %q", b.String(), expected)
	}
	if len(b.Boxes()) != 2 || len(b.Stores()) != 3 {
		t.Errorf("Boxes()=%v Stores()=%v, expected 2 boxes and 3 stores", b.Boxes(), b.Stores())
	}
}

func TestCellFlags(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want Flag
	}{
		{"wall", Wall(), FlagWall},
		{"floor", Floor(), FlagSpace},
		{"store", StoreCell(), FlagStore | FlagSpace},
		{"box", BoxCell(false), FlagBox},
		{"box on store", BoxCell(true), FlagBox | FlagStore},
		{"worker", WorkerCell(false), FlagWorker},
		{"worker on store", WorkerCell(true), FlagWorker | FlagStore},
		{"highlighted box", Cell{Occupant: OccupantBox, Highlight: true}, FlagBox | FlagHighlight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cell.Flags(); got != tc.want {
				t.Errorf("Flags() = %b, expected %b", got, tc.want)
			}
		})
	}
}
