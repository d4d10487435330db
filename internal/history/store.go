// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a journal of search submissions in SQLite. The
// journal records what was asked and how it ended; it never stores or
// serves articles.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Outcome values stored in the journal.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// timeLayout has fixed-width fractional seconds so stored timestamps sort
// lexically in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// DefaultLimit is the number of entries Recent returns when limit <= 0.
const DefaultLimit = 20

// Entry is one recorded submission.
type Entry struct {
	ID           int64     `json:"id" yaml:"id"`
	RequestedAt  time.Time `json:"requested_at" yaml:"requested_at"`
	Query        string    `json:"query" yaml:"query"`
	Language     string    `json:"language" yaml:"language"`
	SortBy       string    `json:"sort_by" yaml:"sort_by"`
	Outcome      string    `json:"outcome" yaml:"outcome"`
	TotalResults int       `json:"total_results" yaml:"total_results"`
	Shown        int       `json:"shown" yaml:"shown"`
	Error        string    `json:"error,omitempty" yaml:"error,omitempty"`
}

// Store manages the journal database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the journal at path and creates the schema if it
// does not exist.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS searches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			requested_at TEXT NOT NULL,
			query TEXT NOT NULL,
			language TEXT NOT NULL,
			sort_by TEXT NOT NULL,
			outcome TEXT NOT NULL,
			total_results INTEGER NOT NULL DEFAULT 0,
			shown INTEGER NOT NULL DEFAULT 0,
			error TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_searches_requested_at ON searches(requested_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record appends one entry.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.RequestedAt.IsZero() {
		e.RequestedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO searches (requested_at, query, language, sort_by, outcome, total_results, shown, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.RequestedAt.UTC().Format(timeLayout),
		e.Query, e.Language, e.SortBy, e.Outcome, e.TotalResults, e.Shown,
		nullString(e.Error),
	)
	if err != nil {
		return fmt.Errorf("inserting search: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, requested_at, query, language, sort_by, outcome, total_results, shown, error
		 FROM searches ORDER BY requested_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying searches: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e       Entry
			at      string
			errText sql.NullString
		)
		if err := rows.Scan(&e.ID, &at, &e.Query, &e.Language, &e.SortBy, &e.Outcome, &e.TotalResults, &e.Shown, &errText); err != nil {
			return nil, fmt.Errorf("scanning search: %w", err)
		}
		e.RequestedAt, err = time.Parse(timeLayout, at)
		if err != nil {
			return nil, fmt.Errorf("parsing requested_at %q: %w", at, err)
		}
		e.Error = errText.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
