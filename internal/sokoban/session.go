package sokoban

import "time"

// inchesPerMove and inchPerSecMPH turn the move rate into the tongue-in-cheek
// "speed" shown on the status line.
const (
	inchesPerMove = 0.1
	inchPerSecMPH = 0.056818182
)

// Session is the mutable play state for one level: the board, its undo log
// and the move counter. It is created when a level loads and discarded
// when the next one does. A Session is not safe for concurrent use.
type Session struct {
	board   *Board
	undo    *UndoStack
	moves   int
	pushes  int
	started time.Time
	won     bool
}

// NewSession starts play on b. started is the level's start time.
func NewSession(b *Board, started time.Time) *Session {
	return &Session{
		board:   b,
		undo:    NewUndoStack(),
		started: started,
	}
}

// Board returns the board. Callers must treat it as read-only.
func (s *Session) Board() *Board {
	return s.board
}

// Level returns the level ordinal.
func (s *Session) Level() int {
	return s.board.Level()
}

// Moves returns the move counter. It always equals the undo log length.
func (s *Session) Moves() int {
	return s.moves
}

// Pushes returns how many of the recorded moves pushed a box.
func (s *Session) Pushes() int {
	return s.pushes
}

// Started returns the level start time.
func (s *Session) Started() time.Time {
	return s.started
}

// Won reports whether the last win check succeeded.
func (s *Session) Won() bool {
	return s.won
}

// History returns the undo log, oldest first.
func (s *Session) History() []UndoEntry {
	return s.undo.Entries()
}

// Move attempts one step. A won level accepts no further moves.
func (s *Session) Move(dir Direction) MoveResult {
	if s.won {
		return MoveBlocked
	}

	result, entry := AttemptMove(s.board, dir)
	if !result.OK() {
		return result
	}

	s.undo.Push(entry)
	s.moves++
	if result == MovePushed {
		s.pushes++
	}
	return result
}

// Undo reverses the most recent move. Returns false if there is none.
// Undoing out of a won position clears the win and its highlight.
func (s *Session) Undo() bool {
	entry, ok := s.undo.Pop()
	if !ok {
		return false
	}

	ReverseMove(s.board, entry)
	s.moves--
	if entry.Pull {
		s.pushes--
	}

	if s.won {
		ClearHighlights(s.board)
		s.won = false
	}
	return true
}

// CheckWin runs the win detector and remembers the result.
func (s *Session) CheckWin() bool {
	if s.won {
		return true
	}
	s.won = IsWon(s.board)
	return s.won
}

// Repeat calls op up to n times, stopping at the first failure.
// Returns how many calls succeeded.
func (s *Session) Repeat(n int, op func() bool) int {
	done := 0
	for ; done < n; done++ {
		if !op() {
			break
		}
	}
	return done
}

// Play applies a sequence of moves, stopping at the first blocked one.
// Returns how many moves were made.
func (s *Session) Play(dirs []Direction) int {
	for i, d := range dirs {
		if !s.Move(d).OK() {
			return i
		}
	}
	return len(dirs)
}

// Solution returns the moves made so far in LURD notation.
func (s *Session) Solution() string {
	entries := s.undo.Entries()
	out := make([]rune, 0, len(entries))
	for i, e := range entries {
		next := s.board.Worker()
		if i+1 < len(entries) {
			next = entries[i+1].From
		}
		out = append(out, directionBetween(e.From, next).LURD(e.Pull))
	}
	return string(out)
}

// directionBetween returns the direction of a single step from a to b.
func directionBetween(a, b Position) Direction {
	switch {
	case b.Row < a.Row:
		return North
	case b.Row > a.Row:
		return South
	case b.Col < a.Col:
		return West
	default:
		return East
	}
}

// Stats is the presentation summary of a session.
type Stats struct {
	Level    int
	Moves    int
	Pushes   int
	Elapsed  time.Duration
	SpeedMPH float64
}

// Stats computes the summary at time now.
func (s *Session) Stats(now time.Time) Stats {
	elapsed := now.Sub(s.started).Truncate(time.Second)
	if elapsed < 0 {
		elapsed = 0
	}

	var speed float64
	if secs := elapsed.Seconds(); secs > 0 {
		speed = float64(s.moves) * inchesPerMove / secs * inchPerSecMPH
	}

	return Stats{
		Level:    s.board.Level(),
		Moves:    s.moves,
		Pushes:   s.pushes,
		Elapsed:  elapsed,
		SpeedMPH: speed,
	}
}
