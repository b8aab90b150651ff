package history

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `CREATE TABLE IF NOT EXISTS keyword_analyses (
	id               UUID PRIMARY KEY,
	created_at       TIMESTAMPTZ NOT NULL,
	resume_hash      TEXT NOT NULL,
	total_words      INTEGER NOT NULL,
	unique_keywords  INTEGER NOT NULL,
	top_role         TEXT,
	top_role_score   INTEGER NOT NULL DEFAULT 0,
	match_percentage INTEGER,
	missing_count    INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS keyword_analyses_created_at_idx ON keyword_analyses (created_at DESC)`

// PostgresStore keeps history in PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgres creates a pgx pool and ensures the schema exists.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 1

	config.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, "SET search_path TO public")
		return err
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("history schema: %w", err)
	}

	slog.Info("history postgres connected", slog.String("addr", config.ConnConfig.Host))
	return &PostgresStore{pool: pool}, nil
}

// Record inserts e.
func (s *PostgresStore) Record(ctx context.Context, e Entry) error {
	if err := validate(e); err != nil {
		return err
	}
	id := uuid.MustParse(e.ID)
	_, err := s.pool.Exec(ctx,
		`INSERT INTO keyword_analyses (id, created_at, resume_hash, total_words, unique_keywords,
		 top_role, top_role_score, match_percentage, missing_count)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9)`,
		id, e.CreatedAt, e.ResumeHash, e.TotalWords, e.UniqueKeywords,
		e.TopRole, e.TopRoleScore, e.MatchPercentage, e.MissingCount,
	)
	if err != nil {
		return fmt.Errorf("history: insert: %w", err)
	}
	return nil
}

// List returns up to limit entries, newest first.
func (s *PostgresStore) List(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id::text, created_at, resume_hash, total_words, unique_keywords,
		 COALESCE(top_role, ''), top_role_score, match_percentage, missing_count
		 FROM keyword_analyses ORDER BY created_at DESC, id LIMIT $1`,
		clampLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.ResumeHash, &e.TotalWords, &e.UniqueKeywords,
			&e.TopRole, &e.TopRoleScore, &e.MatchPercentage, &e.MissingCount); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
