// Package store mirrors interaction rows into SQLite so the stats
// command can aggregate them without parsing the CSV log.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/abhisek/continha/internal/session"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the SQLite handle. It implements session.Recorder.
type Store struct {
	db *sql.DB
}

// Open creates a Store at path, applying WAL pragmas and creating the
// schema when missing.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_journal=WAL&_sync=NORMAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return s, nil
}

func (s *Store) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS interactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TEXT NOT NULL,
		session_id TEXT NOT NULL,
		age_bracket TEXT NOT NULL,
		operation TEXT NOT NULL,
		question TEXT NOT NULL,
		operand_a INTEGER NOT NULL,
		operand_b INTEGER NOT NULL,
		answer TEXT NOT NULL,
		correct_answer INTEGER NOT NULL,
		correct INTEGER NOT NULL,
		attempts_json TEXT NOT NULL,
		difficulty_factor REAL NOT NULL,
		recent_accuracy REAL NOT NULL,
		operation_count INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_interactions_session ON interactions(session_id);
	CREATE INDEX IF NOT EXISTS idx_interactions_operation ON interactions(operation);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Append inserts one interaction row.
func (s *Store) Append(ctx context.Context, row session.Row) error {
	attempts, err := json.Marshal(row.Attempts)
	if err != nil {
		return fmt.Errorf("marshal attempts: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO interactions (
			created_at, session_id, age_bracket, operation, question,
			operand_a, operand_b, answer, correct_answer, correct,
			attempts_json, difficulty_factor, recent_accuracy, operation_count
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.Timestamp.Format(time.RFC3339),
		row.SessionID,
		string(row.Bracket),
		string(row.Operation),
		row.QuestionText,
		row.OperandA,
		row.OperandB,
		row.Answer,
		row.CorrectAnswer,
		boolToInt(row.Correct),
		string(attempts),
		row.DifficultyFactor,
		row.RecentAccuracy,
		row.OperationCount,
	)
	if err != nil {
		return fmt.Errorf("insert interaction: %w", err)
	}
	return nil
}

// OperationStats aggregates outcomes for one operation.
type OperationStats struct {
	Operation string
	Total     int
	Correct   int
	Accuracy  float64
}

// StatsByOperation returns per-operation totals across all sessions.
func (s *Store) StatsByOperation(ctx context.Context) ([]OperationStats, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT operation, COUNT(*), SUM(correct)
		FROM interactions
		GROUP BY operation
		ORDER BY operation`)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	var out []OperationStats
	for rows.Next() {
		var st OperationStats
		if err := rows.Scan(&st.Operation, &st.Total, &st.Correct); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		if st.Total > 0 {
			st.Accuracy = float64(st.Correct) / float64(st.Total)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// TotalRows reports how many interactions were recorded.
func (s *Store) TotalRows(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM interactions`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count interactions: %w", err)
	}
	return n, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
