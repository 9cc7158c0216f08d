// Package storage provides SQLite-based persistence for finished game
// sessions and movement telemetry.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/bubblepop/internal/core"
	"github.com/vovakirdan/bubblepop/internal/event"
)

// DefaultPath is where the CLI keeps its database.
const DefaultPath = "~/.bubblepop/bubblepop.db"

const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Session is the summary of one finished game, written on quit.
// Sessions are a scoreboard only; nothing is ever restored from them.
type Session struct {
	ID        int64
	Key       string // Identifies the run; movements reference it
	Player    string
	Score     int
	Level     int
	Hits      int
	Misses    int
	Duration  time.Duration
	CreatedAt time.Time
}

// Accuracy returns the share of clicks that popped something.
func (s Session) Accuracy() float64 {
	clicks := s.Hits + s.Misses
	if clicks == 0 {
		return 0
	}
	return float64(s.Hits) / float64(clicks)
}

// MovementRecord is a stored movement event.
type MovementRecord struct {
	ID         int64
	SessionKey string
	event.Movement
	CreatedAt time.Time
}

// Stats contains aggregated statistics over all sessions.
type Stats struct {
	Sessions   int
	HighScore  int
	AvgScore   float64
	TopLevel   int
	TotalHits  int64
	Movements  int64
	LastPlayed time.Time
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
	// SSH sessions write concurrently; one connection serializes them
	// instead of surfacing SQLITE_BUSY.
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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_key TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			hits INTEGER NOT NULL DEFAULT 0,
			misses INTEGER NOT NULL DEFAULT 0,
			duration_secs REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_top ON sessions(score DESC);
		CREATE INDEX IF NOT EXISTS idx_sessions_key ON sessions(session_key);

		CREATE TABLE IF NOT EXISTS movements (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_key TEXT NOT NULL,
			from_x INTEGER NOT NULL,
			from_y INTEGER NOT NULL,
			to_x INTEGER NOT NULL,
			to_y INTEGER NOT NULL,
			side INTEGER NOT NULL,
			speed INTEGER NOT NULL,
			direction REAL NOT NULL,
			elapsed REAL NOT NULL,
			distance REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_movements_key ON movements(session_key);
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

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(sess Session) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions (session_key, player, score, level, hits, misses, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sess.Key, sess.Player, sess.Score, sess.Level, sess.Hits, sess.Misses, sess.Duration.Seconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopSessions retrieves the top N sessions by score.
func (s *Store) TopSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_key, player, score, level, hits, misses, duration_secs, created_at
		 FROM sessions
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var secs float64
		var createdAt any
		if err := rows.Scan(&sess.ID, &sess.Key, &sess.Player, &sess.Score, &sess.Level,
			&sess.Hits, &sess.Misses, &secs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.Duration = time.Duration(secs * float64(time.Second))
		sess.CreatedAt = parseTime(createdAt)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// HighScore returns the best session score.
// Returns 0 if no sessions exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM sessions").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// SaveMovement records a movement event for the session identified by key.
func (s *Store) SaveMovement(key string, m event.Movement) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO movements
		 (session_key, from_x, from_y, to_x, to_y, side, speed, direction, elapsed, distance)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		key, m.From.X, m.From.Y, m.To.X, m.To.Y, m.Side, m.Speed, m.Direction, m.Elapsed, m.Distance(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save movement: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentMovements retrieves the most recent movements, newest first.
// An empty key returns movements from every session.
func (s *Store) RecentMovements(key string, limit int) ([]MovementRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_key, from_x, from_y, to_x, to_y, side, speed, direction, elapsed, created_at
		 FROM movements
		 WHERE ? = '' OR session_key = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		key, key, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query movements: %w", err)
	}
	defer rows.Close()

	var records []MovementRecord
	for rows.Next() {
		var r MovementRecord
		var from, to core.Point
		var createdAt any
		if err := rows.Scan(&r.ID, &r.SessionKey, &from.X, &from.Y, &to.X, &to.Y,
			&r.Side, &r.Speed, &r.Direction, &r.Elapsed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.From, r.To = from, to
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Stats retrieves aggregated statistics over all sessions.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(level), 0), COALESCE(SUM(hits), 0), MAX(created_at)
		 FROM sessions`,
	).Scan(&stats.Sessions, &stats.HighScore, &stats.AvgScore, &stats.TopLevel, &stats.TotalHits, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	if err := s.db.QueryRow("SELECT COUNT(*) FROM movements").Scan(&stats.Movements); err != nil {
		return nil, fmt.Errorf("storage: cannot count movements: %w", err)
	}

	return stats, nil
}

// SessionByKey retrieves a session by its key.
// Returns nil if no session was saved under it.
func (s *Store) SessionByKey(key string) (*Session, error) {
	var sess Session
	var secs float64
	var createdAt any
	err := s.db.QueryRow(
		`SELECT id, session_key, player, score, level, hits, misses, duration_secs, created_at
		 FROM sessions WHERE session_key = ?
		 ORDER BY id DESC LIMIT 1`,
		key,
	).Scan(&sess.ID, &sess.Key, &sess.Player, &sess.Score, &sess.Level,
		&sess.Hits, &sess.Misses, &secs, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}
	sess.Duration = time.Duration(secs * float64(time.Second))
	sess.CreatedAt = parseTime(createdAt)
	return &sess, nil
}

// Clear deletes all sessions and movements.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM movements; DELETE FROM sessions;"); err != nil {
		return fmt.Errorf("storage: cannot clear: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(sqliteTime, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
