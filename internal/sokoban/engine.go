package sokoban

// MoveResult is the outcome of a move attempt.
type MoveResult uint8

const (
	MoveBlocked MoveResult = iota
	MoveSlid
	MovePushed
)

// OK reports whether the worker moved.
func (r MoveResult) OK() bool {
	return r == MoveSlid || r == MovePushed
}

// String returns a human-readable name for the result.
func (r MoveResult) String() string {
	switch r {
	case MoveBlocked:
		return "Blocked"
	case MoveSlid:
		return "Slid"
	case MovePushed:
		return "Pushed"
	default:
		return "Unknown"
	}
}

// AttemptMove moves the worker one step in dir, pushing a box if one is
// in the way and the cell beyond it is open.
// On success it returns the undo entry describing the move; on MoveBlocked
// the board is untouched.
func AttemptMove(b *Board, dir Direction) (MoveResult, UndoEntry) {
	dr, dc := dir.Delta()
	w := b.Worker()
	r, c := w.Row, w.Col

	sr, sc := r+dr, c+dc
	ahead := b.CellAt(sr, sc)

	switch {
	case ahead.IsSpace():
		if !b.Addressable(sr, sc) {
			return MoveBlocked, UndoEntry{}
		}
		b.MovePiece(r, c, sr, sc)
		return MoveSlid, UndoEntry{From: w}

	case ahead.HasBox():
		nr, nc := sr+dr, sc+dc
		if !b.CellAt(nr, nc).IsSpace() || !b.Addressable(nr, nc) {
			return MoveBlocked, UndoEntry{}
		}
		// Box first, so the worker never shares a cell with it.
		b.MovePiece(sr, sc, nr, nc)
		b.MovePiece(r, c, sr, sc)
		return MovePushed, UndoEntry{From: w, Pull: true}
	}

	return MoveBlocked, UndoEntry{}
}

// ReverseMove undoes the move described by e. The worker steps back to
// e.From; for a push the box is pulled from the mirror of the worker's
// displacement into the cell the worker vacated.
func ReverseMove(b *Board, e UndoEntry) {
	w := b.Worker()
	r, c := w.Row, w.Col
	sr, sc := e.From.Row, e.From.Col

	b.MovePiece(r, c, sr, sc)
	if e.Pull {
		gr := r - (sr - r)
		gc := c - (sc - c)
		b.MovePiece(gr, gc, r, c)
	}
}
