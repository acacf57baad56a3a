package sokoban

import "testing"

// mustBoard builds a board from map rows using the standard level alphabet.
func mustBoard(t *testing.T, rows ...string) *Board {
	t.Helper()

	cells := make([][]Cell, len(rows))
	var worker Position
	for r, line := range rows {
		cells[r] = make([]Cell, 0, len(line))
		for c, ch := range line {
			var cell Cell
			switch ch {
			case '#':
				cell = Wall()
			case ' ':
				cell = Floor()
			case '.':
				cell = StoreCell()
			case '$':
				cell = BoxCell(false)
			case '*':
				cell = BoxCell(true)
			case '@':
				cell = WorkerCell(false)
				worker = P(r, c)
			case '+':
				cell = WorkerCell(true)
				worker = P(r, c)
			default:
				t.Fatalf("unexpected glyph %q", ch)
			}
			cells[r] = append(cells[r], cell)
		}
	}

	b, err := NewBoard(1, cells, worker)
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}
	return b
}

// checkInvariants fails the test if any cell invariant is broken.
func checkInvariants(t *testing.T, b *Board) {
	t.Helper()
	if err := b.Validate(); err != nil {
		t.Fatalf("board invariant broken: %v\n%s", err, b)
	}
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			f := b.CellAt(r, c).Flags()
			occupants := 0
			for _, bit := range []Flag{FlagBox, FlagWorker, FlagSpace} {
				if f&bit != 0 {
					occupants++
				}
			}
			if f&FlagWall != 0 && f != FlagWall {
				t.Fatalf("wall at (%d,%d) has extra flags %b", r, c, f)
			}
			if f&FlagWall == 0 && occupants != 1 {
				t.Fatalf("cell (%d,%d) has %d occupant bits (%b)", r, c, occupants, f)
			}
		}
	}
}
