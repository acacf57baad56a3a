package sokoban

// Snapshot captures the session state for determinism tests and replays.
type Snapshot struct {
	Level  int
	Moves  int
	Pushes int
	Won    bool
	Worker Position
	Map    string   // Board in the level-map alphabet
	Undo   []Packed // Undo log in packed form, oldest first
}

// Snapshot returns the current session snapshot.
// Boards are limited to 64x64 by NewBoard, so every entry packs.
func (s *Session) Snapshot() Snapshot {
	packed, _ := s.undo.Packed()
	return Snapshot{
		Level:  s.board.Level(),
		Moves:  s.moves,
		Pushes: s.pushes,
		Won:    s.won,
		Worker: s.board.Worker(),
		Map:    s.board.String(),
		Undo:   packed,
	}
}
