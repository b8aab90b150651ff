package history

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_ats/internal/engine/keywords"
)

func openTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNewEntry(t *testing.T) {
	a := keywords.NewAnalyzer(nil, keywords.DefaultPolicy())
	corpus := "Skilled Python backend engineer."

	t.Run("with job description", func(t *testing.T) {
		res := a.Analyze(corpus, "Looking for a Python Python Python developer with Django.")
		e := NewEntry(corpus, res)

		_, err := uuid.Parse(e.ID)
		require.NoError(t, err)
		assert.Len(t, e.ResumeHash, 64)
		assert.Equal(t, 4, e.TotalWords)
		assert.Equal(t, res.RoleScores[0].Role, e.TopRole)
		require.NotNil(t, e.MatchPercentage)
		assert.Equal(t, 50, *e.MatchPercentage)
		assert.Equal(t, 1, e.MissingCount)
	})

	t.Run("without job description", func(t *testing.T) {
		e := NewEntry(corpus, a.Analyze(corpus, ""))
		assert.Nil(t, e.MatchPercentage)
		assert.Zero(t, e.MissingCount)
	})

	t.Run("same corpus same hash, new id", func(t *testing.T) {
		e1 := NewEntry(corpus, keywords.AnalysisResult{})
		e2 := NewEntry(corpus, keywords.AnalysisResult{})
		assert.Equal(t, e1.ResumeHash, e2.ResumeHash)
		assert.NotEqual(t, e1.ID, e2.ID)
	})
}

func TestSQLiteStore_RecordList(t *testing.T) {
	s := openTestSQLite(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	pct := 75
	for i := 0; i < 3; i++ {
		e := Entry{
			ID:             uuid.NewString(),
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
			ResumeHash:     "hash",
			TotalWords:     100 + i,
			UniqueKeywords: 40,
			TopRole:        "backend",
			TopRoleScore:   30,
		}
		if i == 2 {
			e.MatchPercentage = &pct
			e.MissingCount = 4
		}
		require.NoError(t, s.Record(ctx, e))
	}

	got, err := s.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, 102, got[0].TotalWords, "newest first")
	require.NotNil(t, got[0].MatchPercentage)
	assert.Equal(t, 75, *got[0].MatchPercentage)
	assert.Equal(t, 4, got[0].MissingCount)
	assert.True(t, got[0].CreatedAt.Equal(base.Add(2*time.Minute)))
	assert.Nil(t, got[2].MatchPercentage)
	assert.Equal(t, "backend", got[2].TopRole)

	limited, err := s.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestSQLiteStore_EmptyList(t *testing.T) {
	s := openTestSQLite(t)
	got, err := s.List(context.Background(), 0)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSQLiteStore_RejectsInvalidEntry(t *testing.T) {
	s := openTestSQLite(t)
	ctx := context.Background()

	assert.Error(t, s.Record(ctx, Entry{ID: "not-a-uuid", CreatedAt: time.Now()}))
	assert.Error(t, s.Record(ctx, Entry{ID: uuid.NewString()}))
}

func TestSQLiteStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Record(ctx, NewEntry("corpus", keywords.AnalysisResult{TotalWords: 1})))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.List(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestOpen_DefaultsToSQLite(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	st, err := Open(context.Background(), Options{})
	require.NoError(t, err)
	defer st.Close()
	assert.IsType(t, &SQLiteStore{}, st)
	_, err = os.Stat(DefaultSQLitePath())
	assert.NoError(t, err)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, defaultListLimit, clampLimit(0))
	assert.Equal(t, defaultListLimit, clampLimit(-3))
	assert.Equal(t, defaultListLimit, clampLimit(1000))
	assert.Equal(t, 7, clampLimit(7))
}

func TestPostgresStore(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	s, err := ConnectPostgres(ctx, url)
	require.NoError(t, err)
	defer s.Close()

	e := NewEntry("postgres corpus", keywords.AnalysisResult{TotalWords: 2})
	require.NoError(t, s.Record(ctx, e))

	got, err := s.List(ctx, 100)
	require.NoError(t, err)
	found := false
	for _, g := range got {
		if g.ID == e.ID {
			found = true
			assert.Equal(t, e.ResumeHash, g.ResumeHash)
		}
	}
	assert.True(t, found, "recorded entry not listed")
}
