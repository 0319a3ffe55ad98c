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

// Store manages the SQLite database connection for round persistence.
type Store struct {
	db *sql.DB
}

// RoundRecord is a finished round.
type RoundRecord struct {
	ID         string // UUID, assigned on save when empty
	Difficulty string
	Score      int
	Lives      int
	Processed  int
	Total      int
	Cleared    bool // Ended with lives remaining
	CreatedAt  time.Time
	Mistakes   []MistakeRecord // Only filled by RoundByID
}

// MistakeRecord is one wrongly caught item within a round.
type MistakeRecord struct {
	Label  string
	Reason string
	Count  int
}

// MistakeTotal aggregates a mistake across rounds.
type MistakeTotal struct {
	Label  string
	Reason string
	Count  int // Total wrong catches
	Rounds int // Rounds it happened in
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
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL,
			lives INTEGER NOT NULL,
			processed INTEGER NOT NULL,
			total INTEGER NOT NULL,
			cleared INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_difficulty ON rounds(difficulty);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(difficulty, score DESC);

		CREATE TABLE IF NOT EXISTS mistakes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL,
			label TEXT NOT NULL,
			reason TEXT NOT NULL DEFAULT '',
			count INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_mistakes_round ON mistakes(round_id);
		CREATE INDEX IF NOT EXISTS idx_mistakes_label ON mistakes(label);
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

// SaveRound records a finished round and its mistakes in one transaction.
// Returns the round ID.
func (s *Store) SaveRound(r RoundRecord) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO rounds (id, difficulty, score, lives, processed, total, cleared)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Difficulty, r.Score, r.Lives, r.Processed, r.Total, r.Cleared,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save round: %w", err)
	}

	for _, m := range r.Mistakes {
		_, err := tx.Exec(
			"INSERT INTO mistakes (round_id, label, reason, count) VALUES (?, ?, ?, ?)",
			r.ID, m.Label, m.Reason, m.Count,
		)
		if err != nil {
			return "", fmt.Errorf("storage: cannot save mistake %q: %w", m.Label, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit round: %w", err)
	}
	return r.ID, nil
}

const roundColumns = `id, difficulty, score, lives, processed, total, cleared, created_at`

// TopScores retrieves the top N rounds for the given difficulty.
// Results are ordered by score descending, earlier rounds first on ties.
func (s *Store) TopScores(difficulty string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE difficulty = ?
		 ORDER BY score DESC, seq ASC
		 LIMIT ?`,
		difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanRounds(rows)
}

// RecentRounds retrieves the most recently saved rounds of any difficulty.
func (s *Store) RecentRounds(limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 ORDER BY seq DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	return scanRounds(rows)
}

// RoundByID retrieves a round with its mistakes. Returns nil if not found.
func (s *Store) RoundByID(id string) (*RoundRecord, error) {
	var r RoundRecord
	var createdAt any

	err := s.db.QueryRow(
		`SELECT `+roundColumns+` FROM rounds WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.Difficulty, &r.Score, &r.Lives, &r.Processed, &r.Total, &r.Cleared, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query round: %w", err)
	}
	r.CreatedAt = parseTimestamp(createdAt)

	rows, err := s.db.Query(
		`SELECT label, reason, count FROM mistakes WHERE round_id = ? ORDER BY id`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query mistakes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m MistakeRecord
		if err := rows.Scan(&m.Label, &m.Reason, &m.Count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan mistake: %w", err)
		}
		r.Mistakes = append(r.Mistakes, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return &r, nil
}

// HighScore returns the highest score for the given difficulty.
// Returns 0 if no rounds exist.
func (s *Store) HighScore(difficulty string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM rounds WHERE difficulty = ?",
		difficulty,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// MistakeTotals aggregates the most frequent wrong catches across all
// rounds, most frequent first.
func (s *Store) MistakeTotals(limit int) ([]MistakeTotal, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT label, MAX(reason), SUM(count), COUNT(DISTINCT round_id)
		 FROM mistakes
		 GROUP BY label
		 ORDER BY SUM(count) DESC, MIN(id) ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query mistake totals: %w", err)
	}
	defer rows.Close()

	var totals []MistakeTotal
	for rows.Next() {
		var m MistakeTotal
		if err := rows.Scan(&m.Label, &m.Reason, &m.Count, &m.Rounds); err != nil {
			return nil, fmt.Errorf("storage: cannot scan mistake total: %w", err)
		}
		totals = append(totals, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return totals, nil
}

// ClearScores deletes every round and mistake for the given difficulty.
func (s *Store) ClearScores(difficulty string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"DELETE FROM mistakes WHERE round_id IN (SELECT id FROM rounds WHERE difficulty = ?)",
		difficulty,
	); err != nil {
		return fmt.Errorf("storage: cannot clear mistakes: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM rounds WHERE difficulty = ?", difficulty); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit clear: %w", err)
	}
	return nil
}

// DifficultyStats contains aggregated statistics for a difficulty.
type DifficultyStats struct {
	Difficulty  string
	RoundsCount int
	Cleared     int
	HighScore   int
	AvgScore    float64
	LastPlayed  time.Time
}

// GetStats retrieves aggregated statistics for a specific difficulty.
func (s *Store) GetStats(difficulty string) (*DifficultyStats, error) {
	stats := &DifficultyStats{Difficulty: difficulty}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(cleared), 0), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), MAX(created_at)
		 FROM rounds WHERE difficulty = ?`,
		difficulty,
	).Scan(&stats.RoundsCount, &stats.Cleared, &stats.HighScore, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTimestamp(lastPlayed)

	return stats, nil
}

// GetAllStats retrieves statistics for every difficulty that has been played.
func (s *Store) GetAllStats() (map[string]*DifficultyStats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*), SUM(cleared), MAX(score), AVG(score), MAX(created_at)
		 FROM rounds
		 GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*DifficultyStats)
	for rows.Next() {
		var st DifficultyStats
		var lastPlayed any
		if err := rows.Scan(&st.Difficulty, &st.RoundsCount, &st.Cleared, &st.HighScore, &st.AvgScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTimestamp(lastPlayed)
		stats[st.Difficulty] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// scanRounds reads round rows and closes them.
func scanRounds(rows *sql.Rows) ([]RoundRecord, error) {
	defer rows.Close()

	var rounds []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Difficulty, &r.Score, &r.Lives, &r.Processed, &r.Total, &r.Cleared, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// parseTimestamp handles the driver returning either time.Time or a string.
func parseTimestamp(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
