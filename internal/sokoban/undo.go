package sokoban

// initialUndoCapacity is the starting size of the undo log.
const initialUndoCapacity = 10

// UndoEntry records one successful move: where the worker stood before it,
// and whether a box was pushed (so undo must pull it back).
type UndoEntry struct {
	From Position
	Pull bool
}

// Pack encodes the entry as a packed position with the pull marker.
func (e UndoEntry) Pack() (Packed, error) {
	v, err := e.From.Pack()
	if err != nil {
		return 0, err
	}
	if e.Pull {
		v |= PullMarker
	}
	return v, nil
}

// UnpackEntry decodes a packed undo entry.
func UnpackEntry(v Packed) UndoEntry {
	return UndoEntry{
		From: Decode(v),
		Pull: v&PullMarker != 0,
	}
}

// UndoStack is the append-only log of moves for one level.
// Its backing storage doubles when full.
type UndoStack struct {
	entries []UndoEntry
}

// NewUndoStack creates an empty undo stack.
func NewUndoStack() *UndoStack {
	return &UndoStack{
		entries: make([]UndoEntry, 0, initialUndoCapacity),
	}
}

// Push appends an entry.
func (s *UndoStack) Push(e UndoEntry) {
	if len(s.entries) == cap(s.entries) {
		grown := make([]UndoEntry, len(s.entries), max(2*cap(s.entries), initialUndoCapacity))
		copy(grown, s.entries)
		s.entries = grown
	}
	s.entries = append(s.entries, e)
}

// Pop removes and returns the most recent entry.
// Returns false if the stack is empty.
func (s *UndoStack) Pop() (UndoEntry, bool) {
	if len(s.entries) == 0 {
		return UndoEntry{}, false
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return top, true
}

// Len returns the number of recorded moves.
func (s *UndoStack) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the log, oldest first.
func (s *UndoStack) Entries() []UndoEntry {
	out := make([]UndoEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Packed returns the log in packed form, oldest first.
func (s *UndoStack) Packed() ([]Packed, error) {
	out := make([]Packed, len(s.entries))
	for i, e := range s.entries {
		v, err := e.Pack()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
