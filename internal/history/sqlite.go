package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// timeLayout has fixed-width fractions so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore keeps history in a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// DefaultSQLitePath is used when no path is configured.
func DefaultSQLitePath() string {
	return filepath.Join(os.Getenv("HOME"), ".go_ats", "history.db")
}

// OpenSQLite opens (or creates) the history database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		path = DefaultSQLitePath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("history: mkdir %s: %w", filepath.Dir(path), err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open db: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer
	if err := initSQLiteSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: init schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func initSQLiteSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS analyses (
		id               TEXT PRIMARY KEY,
		created_at       TEXT NOT NULL,
		resume_hash      TEXT NOT NULL,
		total_words      INTEGER NOT NULL,
		unique_keywords  INTEGER NOT NULL,
		top_role         TEXT,
		top_role_score   INTEGER NOT NULL DEFAULT 0,
		match_percentage INTEGER,
		missing_count    INTEGER NOT NULL DEFAULT 0
	)`)
	return err
}

// Record inserts e.
func (s *SQLiteStore) Record(ctx context.Context, e Entry) error {
	if err := validate(e); err != nil {
		return err
	}
	var match sql.NullInt64
	if e.MatchPercentage != nil {
		match = sql.NullInt64{Int64: int64(*e.MatchPercentage), Valid: true}
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO analyses (id, created_at, resume_hash, total_words, unique_keywords,
		 top_role, top_role_score, match_percentage, missing_count)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.CreatedAt.UTC().Format(timeLayout), e.ResumeHash, e.TotalWords,
		e.UniqueKeywords, e.TopRole, e.TopRoleScore, match, e.MissingCount,
	)
	if err != nil {
		return fmt.Errorf("history: insert: %w", err)
	}
	return nil
}

// List returns up to limit entries, newest first.
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, resume_hash, total_words, unique_keywords,
		 top_role, top_role_score, match_percentage, missing_count
		 FROM analyses ORDER BY created_at DESC, id LIMIT ?`,
		clampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var (
			e         Entry
			createdAt string
			topRole   sql.NullString
			match     sql.NullInt64
		)
		if err := rows.Scan(&e.ID, &createdAt, &e.ResumeHash, &e.TotalWords, &e.UniqueKeywords,
			&topRole, &e.TopRoleScore, &match, &e.MissingCount); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		e.CreatedAt, err = time.Parse(timeLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("history: created_at %q: %w", createdAt, err)
		}
		e.TopRole = topRole.String
		if match.Valid {
			pct := int(match.Int64)
			e.MatchPercentage = &pct
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
