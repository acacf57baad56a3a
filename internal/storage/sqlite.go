// Package storage provides SQLite-based persistence for solved levels.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// sqliteTimeLayout is how CURRENT_TIMESTAMP comes back when scanned as text.
const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for solve records.
type Store struct {
	db *sql.DB
}

// Solve is one completed level: how many moves and pushes it took and how
// long the player spent on it.
type Solve struct {
	ID        int64
	RunID     string // identifies one play session; several solves may share it
	Level     int
	Moves     int
	Pushes    int
	Duration  time.Duration
	CreatedAt time.Time
}

// LevelStats contains aggregated statistics for one level.
type LevelStats struct {
	Level      int
	Solves     int
	BestMoves  int
	BestPushes int
	LastSolved time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SQLite has a single writer; SSH sessions share this Store.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			level INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			pushes INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_level ON solves(level);
		CREATE INDEX IF NOT EXISTS idx_solves_best ON solves(level, moves ASC, pushes ASC);
		CREATE INDEX IF NOT EXISTS idx_solves_run ON solves(run_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// NewRunID returns a fresh identifier for a play session.
func NewRunID() string {
	return uuid.NewString()
}

// SaveSolve records a solved level. An empty RunID gets a new one.
// Returns the ID of the inserted record.
func (s *Store) SaveSolve(solve Solve) (int64, error) {
	if solve.Level < 0 || solve.Moves < 0 || solve.Pushes < 0 {
		return 0, fmt.Errorf("storage: invalid solve %+v", solve)
	}
	if solve.RunID == "" {
		solve.RunID = NewRunID()
	}

	result, err := s.db.Exec(
		`INSERT INTO solves (run_id, level, moves, pushes, duration_secs)
		 VALUES (?, ?, ?, ?, ?)`,
		solve.RunID, solve.Level, solve.Moves, solve.Pushes, int64(solve.Duration/time.Second),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestSolves retrieves the best N solves for the given level.
// Results are ordered by moves, then pushes, then time, ascending.
func (s *Store) BestSolves(level, limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, level, moves, pushes, duration_secs, created_at
		 FROM solves
		 WHERE level = ?
		 ORDER BY moves ASC, pushes ASC, duration_secs ASC, id ASC
		 LIMIT ?`,
		level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var e Solve
		var secs int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RunID, &e.Level, &e.Moves, &e.Pushes, &secs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(secs) * time.Second
		e.CreatedAt = parseTime(createdAt)
		solves = append(solves, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return solves, nil
}

// BestMoves returns the fewest moves any solve of the level took.
// The boolean is false if the level has never been solved.
func (s *Store) BestMoves(level int) (int, bool, error) {
	var moves sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(moves) FROM solves WHERE level = ?",
		level,
	).Scan(&moves)

	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best moves: %w", err)
	}

	if !moves.Valid {
		return 0, false, nil
	}

	return int(moves.Int64), true, nil
}

// SolvedLevels returns statistics for every level solved at least once,
// ordered by level.
func (s *Store) SolvedLevels() ([]LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level, COUNT(*), MIN(moves), MIN(pushes), MAX(created_at)
		 FROM solves
		 GROUP BY level
		 ORDER BY level ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	defer rows.Close()

	var stats []LevelStats
	for rows.Next() {
		var st LevelStats
		var lastSolved any
		if err := rows.Scan(&st.Level, &st.Solves, &st.BestMoves, &st.BestPushes, &lastSolved); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastSolved = parseTime(lastSolved)
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// RunSolves returns every solve recorded under runID, oldest first.
func (s *Store) RunSolves(runID string) ([]Solve, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, level, moves, pushes, duration_secs, created_at
		 FROM solves
		 WHERE run_id = ?
		 ORDER BY id ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var e Solve
		var secs int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RunID, &e.Level, &e.Moves, &e.Pushes, &secs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(secs) * time.Second
		e.CreatedAt = parseTime(createdAt)
		solves = append(solves, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return solves, nil
}

// LastSolve returns the most recent solve of the level, or nil if none.
func (s *Store) LastSolve(level int) (*Solve, error) {
	var e Solve
	var secs int64
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, run_id, level, moves, pushes, duration_secs, created_at
		 FROM solves
		 WHERE level = ?
		 ORDER BY id DESC
		 LIMIT 1`,
		level,
	).Scan(&e.ID, &e.RunID, &e.Level, &e.Moves, &e.Pushes, &secs, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query last solve: %w", err)
	}

	e.Duration = time.Duration(secs) * time.Second
	e.CreatedAt = parseTime(createdAt)
	return &e, nil
}

// ClearLevel deletes all solves for the given level.
func (s *Store) ClearLevel(level int) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE level = ?", level)
	if err != nil {
		return fmt.Errorf("storage: cannot clear level %d: %w", level, err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
