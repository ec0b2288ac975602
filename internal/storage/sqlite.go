// Package storage provides SQLite-based persistence for finished rounds.
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

// Store manages the SQLite database connection for round history.
type Store struct {
	db *sql.DB
}

// RoundRecord is one finished round against a program.
type RoundRecord struct {
	ID         int64
	RoundID    string // Generated when empty
	SessionID  string // Groups the rounds of one play session
	Program    string
	Winner     string // "human" or "ai"
	HumanScore int    // Session score after this round
	AIScore    int
	Ticks      int
	Duration   time.Duration
	CreatedAt  time.Time
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
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL UNIQUE,
			session_id TEXT NOT NULL,
			program TEXT NOT NULL,
			winner TEXT NOT NULL,
			human_score INTEGER NOT NULL DEFAULT 0,
			ai_score INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_program ON rounds(program);
		CREATE INDEX IF NOT EXISTS idx_rounds_session ON rounds(session_id);
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

// SaveRound records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(r RoundRecord) (int64, error) {
	if r.RoundID == "" {
		r.RoundID = uuid.NewString()
	}
	if r.Winner != "human" && r.Winner != "ai" {
		return 0, fmt.Errorf("storage: invalid winner %q", r.Winner)
	}

	res, err := s.db.Exec(
		`INSERT INTO rounds
		 (round_id, session_id, program, winner, human_score, ai_score, ticks, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RoundID,
		r.SessionID,
		r.Program,
		r.Winner,
		r.HumanScore,
		r.AIScore,
		r.Ticks,
		r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRounds retrieves the most recent rounds, newest first.
// An empty program matches every program.
func (s *Store) RecentRounds(program string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, round_id, session_id, program, winner,
		        human_score, ai_score, ticks, duration_ms, created_at
		 FROM rounds
		 WHERE ? = '' OR program = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		program, program, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var records []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var durationMs int64
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.RoundID,
			&r.SessionID,
			&r.Program,
			&r.Winner,
			&r.HumanScore,
			&r.AIScore,
			&r.Ticks,
			&durationMs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// SessionRounds retrieves every round of one session in play order.
func (s *Store) SessionRounds(sessionID string) ([]RoundRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, round_id, session_id, program, winner,
		        human_score, ai_score, ticks, duration_ms, created_at
		 FROM rounds
		 WHERE session_id = ?
		 ORDER BY id ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session rounds: %w", err)
	}
	defer rows.Close()

	var records []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var durationMs int64
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.RoundID,
			&r.SessionID,
			&r.Program,
			&r.Winner,
			&r.HumanScore,
			&r.AIScore,
			&r.Ticks,
			&durationMs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	return records, rows.Err()
}

// ClearRounds deletes all rounds against the given program.
func (s *Store) ClearRounds(program string) error {
	_, err := s.db.Exec("DELETE FROM rounds WHERE program = ?", program)
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// ProgramStats contains aggregated results against one program.
type ProgramStats struct {
	Program     string
	Rounds      int
	HumanWins   int
	AIWins      int
	LongestTick int // Longest round in ticks
	LastPlayed  time.Time
}

// WinRate returns the fraction of rounds the human won.
func (p ProgramStats) WinRate() float64 {
	if p.Rounds == 0 {
		return 0
	}
	return float64(p.HumanWins) / float64(p.Rounds)
}

// GetProgramStats retrieves aggregated statistics for a specific program.
func (s *Store) GetProgramStats(program string) (*ProgramStats, error) {
	stats := &ProgramStats{Program: program}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = 'human' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 'ai' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(ticks), 0),
		        MAX(created_at)
		 FROM rounds WHERE program = ?`,
		program,
	).Scan(&stats.Rounds, &stats.HumanWins, &stats.AIWins, &stats.LongestTick, &lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get program stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// GetAllProgramStats retrieves statistics for every program that has been played.
func (s *Store) GetAllProgramStats() (map[string]*ProgramStats, error) {
	rows, err := s.db.Query(
		`SELECT program,
		        COUNT(*),
		        SUM(CASE WHEN winner = 'human' THEN 1 ELSE 0 END),
		        SUM(CASE WHEN winner = 'ai' THEN 1 ELSE 0 END),
		        MAX(ticks),
		        MAX(created_at)
		 FROM rounds
		 GROUP BY program`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all program stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ProgramStats)
	for rows.Next() {
		var p ProgramStats
		var lastPlayed any
		if err := rows.Scan(&p.Program, &p.Rounds, &p.HumanWins, &p.AIWins, &p.LongestTick, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		p.LastPlayed = parseTime(lastPlayed)
		stats[p.Program] = &p
	}

	return stats, rows.Err()
}

// parseTime handles the datetime column as either time.Time or string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
