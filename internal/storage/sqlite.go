// Package storage provides SQLite-based persistence for level progress.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

//go:embed migrations/*.sql
var migrations embed.FS

// goose keeps its dialect and file system in package globals.
var gooseMu sync.Mutex

// Store manages the SQLite database connection for progress persistence.
type Store struct {
	db *sql.DB
}

// Completion is one won round.
type Completion struct {
	ID        int64
	Pack      string
	LevelID   string
	Name      string
	Author    string
	Turns     int
	CreatedAt time.Time
}

// Outcome names the end of a round in the attempts table.
type Outcome string

const (
	OutcomeWon        Outcome = "won"
	OutcomeLostZapper Outcome = "lost_zapper"
	OutcomeLostDeath  Outcome = "lost_death"
	OutcomeQuit       Outcome = "quit"
)

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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate applies all pending embedded migrations.
func (s *Store) migrate(ctx context.Context) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetLogger(goose.NopLogger())
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	return goose.UpContext(ctx, s.db, "migrations")
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordCompletion records a won round.
// Returns the ID of the inserted record.
func (s *Store) RecordCompletion(c Completion) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO completions (pack, level_id, name, author, turns) VALUES (?, ?, ?, ?, ?)",
		c.Pack, c.LevelID, c.Name, c.Author, c.Turns,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save completion: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Completions retrieves the latest completions of a pack, newest first.
// An empty pack returns completions of every pack.
func (s *Store) Completions(pack string, limit int) ([]Completion, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, pack, level_id, name, author, turns, created_at
		 FROM completions
		 WHERE ? = '' OR pack = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		pack, pack, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completions: %w", err)
	}
	defer rows.Close()

	var entries []Completion
	for rows.Next() {
		var c Completion
		var createdAt any
		if err := rows.Scan(&c.ID, &c.Pack, &c.LevelID, &c.Name, &c.Author, &c.Turns, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		c.CreatedAt = parseTime(createdAt)
		entries = append(entries, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// CompletedSet returns the IDs of every completed level in a pack.
func (s *Store) CompletedSet(pack string) (map[string]bool, error) {
	rows, err := s.db.Query("SELECT DISTINCT level_id FROM completions WHERE pack = ?", pack)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completed levels: %w", err)
	}
	defer rows.Close()

	set := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		set[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return set, nil
}

// IsCompleted reports whether a level has been won at least once.
func (s *Store) IsCompleted(pack, levelID string) (bool, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM completions WHERE pack = ? AND level_id = ?",
		pack, levelID,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("storage: cannot query completion: %w", err)
	}
	return n > 0, nil
}

// BestTurns returns the fewest turns a level was won in.
// Returns 0 if the level was never won.
func (s *Store) BestTurns(pack, levelID string) (int, error) {
	var turns sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(turns) FROM completions WHERE pack = ? AND level_id = ?",
		pack, levelID,
	).Scan(&turns)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best turns: %w", err)
	}

	if !turns.Valid {
		return 0, nil
	}

	return int(turns.Int64), nil
}

// ClearProgress deletes all progress of a pack.
func (s *Store) ClearProgress(pack string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot clear progress: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM completions WHERE pack = ?", pack); err != nil {
		return fmt.Errorf("storage: cannot clear progress: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM attempts WHERE pack = ?", pack); err != nil {
		return fmt.Errorf("storage: cannot clear progress: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot clear progress: %w", err)
	}
	return nil
}

// RecordAttempt records the end of any round, won or not.
func (s *Store) RecordAttempt(pack, levelID string, outcome Outcome, turns int) error {
	_, err := s.db.Exec(
		"INSERT INTO attempts (pack, level_id, outcome, turns) VALUES (?, ?, ?, ?)",
		pack, levelID, string(outcome), turns,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save attempt: %w", err)
	}
	return nil
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	Pack       string
	LevelID    string
	Attempts   int
	Wins       int
	BestTurns  int
	LastPlayed time.Time
}

// GetLevelStats retrieves aggregated statistics for a specific level.
func (s *Store) GetLevelStats(pack, levelID string) (*LevelStats, error) {
	stats := &LevelStats{Pack: pack, LevelID: levelID}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MIN(CASE WHEN outcome = ? THEN turns END), 0)
		 FROM attempts WHERE pack = ? AND level_id = ?`,
		string(OutcomeWon), string(OutcomeWon), pack, levelID,
	).Scan(&stats.Attempts, &stats.Wins, &stats.BestTurns)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM attempts WHERE pack = ? AND level_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		pack, levelID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles the datetime column as either time.Time or string,
// depending on how the driver returns it.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
