package sokoban

// IsWon reports whether every box rests on a storage cell.
// Only a winning scan highlights anything: the first pass returns early on
// any unsatisfied box, the second marks every box.
func IsWon(b *Board) bool {
	rows, cols := b.Rows(), b.Cols()

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := b.CellAt(r, c)
			if cell.HasBox() && !cell.IsStore() {
				return false
			}
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if b.CellAt(r, c).HasBox() {
				b.SetHighlight(r, c)
			}
		}
	}
	return true
}

// ClearHighlights removes every highlight from the board.
func ClearHighlights(b *Board) {
	rows := b.Rows()
	for r := 0; r < rows; r++ {
		for c := 0; c < b.RowLen(r); c++ {
			b.ClearHighlight(r, c)
		}
	}
}
