// Package history persists snapshots of keyword analyses so a user can see how
// a resume's scores change between edits.
package history

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/anatolykoptev/go_ats/internal/engine/keywords"
)

// ErrDisabled is returned by tools when no store is configured.
var ErrDisabled = errors.New("analysis history is disabled")

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// Entry is one recorded analysis.
type Entry struct {
	ID              string    `json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	ResumeHash      string    `json:"resume_hash"`
	TotalWords      int       `json:"total_words"`
	UniqueKeywords  int       `json:"unique_keywords"`
	TopRole         string    `json:"top_role,omitempty"`
	TopRoleScore    int       `json:"top_role_score"`
	MatchPercentage *int      `json:"match_percentage,omitempty"` // nil without a job description
	MissingCount    int       `json:"missing_count"`
}

// Store records and lists entries. Implementations are safe for concurrent use.
type Store interface {
	Record(ctx context.Context, e Entry) error
	List(ctx context.Context, limit int) ([]Entry, error)
	Close() error
}

// Options selects the backing store.
type Options struct {
	Path        string // SQLite file
	DatabaseURL string // PostgreSQL; takes precedence over Path
}

// Open connects the store named by opts: PostgreSQL when DatabaseURL is set,
// SQLite otherwise.
func Open(ctx context.Context, opts Options) (Store, error) {
	if opts.DatabaseURL != "" {
		pg, err := retryConnect(ctx, connectBackoff, func() (*PostgresStore, error) {
			return ConnectPostgres(ctx, opts.DatabaseURL)
		})
		if err != nil {
			return nil, err
		}
		return pg, nil
	}
	lite, err := OpenSQLite(opts.Path)
	if err != nil {
		return nil, err
	}
	return lite, nil
}

// NewEntry builds an entry for an analysis of corpus. The corpus itself is not
// stored, only its SHA-256.
func NewEntry(corpus string, res keywords.AnalysisResult) Entry {
	sum := sha256.Sum256([]byte(corpus))
	e := Entry{
		ID:             uuid.NewString(),
		CreatedAt:      time.Now().UTC(),
		ResumeHash:     hex.EncodeToString(sum[:]),
		TotalWords:     res.TotalWords,
		UniqueKeywords: res.UniqueKeywords,
	}
	if len(res.RoleScores) > 0 {
		e.TopRole = res.RoleScores[0].Role
		e.TopRoleScore = res.RoleScores[0].Score
	}
	if res.Comparison != nil {
		pct := res.Comparison.MatchPercentage
		e.MatchPercentage = &pct
		e.MissingCount = len(res.Comparison.MissingKeywords)
	}
	return e
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > maxListLimit {
		return defaultListLimit
	}
	return limit
}

func validate(e Entry) error {
	if _, err := uuid.Parse(e.ID); err != nil {
		return errors.New("history: entry id must be a uuid")
	}
	if e.CreatedAt.IsZero() {
		return errors.New("history: entry created_at is required")
	}
	return nil
}
