package engine

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration, maxEntries int) *Cache {
	t.Helper()
	c := NewCache(CacheOptions{TTL: ttl, MaxEntries: maxEntries, CleanupInterval: 5 * time.Minute})
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCacheKey(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, CacheKey("keyword_density", "react"), CacheKey("keyword_density", "react"))
	})

	t.Run("different inputs differ", func(t *testing.T) {
		assert.NotEqual(t, CacheKey("keyword_density", "react"), CacheKey("keyword_density", "vue"))
	})

	t.Run("part boundaries matter", func(t *testing.T) {
		assert.NotEqual(t, CacheKey("ab", "c"), CacheKey("a", "bc"))
	})

	t.Run("separator inside a part", func(t *testing.T) {
		assert.NotEqual(t,
			CacheKey("job_match", "Python|Django", "Python Django"),
			CacheKey("job_match", "Python", "Django|Python Django"))
		assert.NotEqual(t, CacheKey("a|", "b"), CacheKey("a", "|b"))
		assert.NotEqual(t, CacheKey("1:a", ""), CacheKey("", "1:a"))
	})

	t.Run("has prefix", func(t *testing.T) {
		assert.Equal(t, "kw:", CacheKey("test")[:3])
		assert.Len(t, CacheKey("test"), 3+24)
	})
}

func TestCacheGetSet(t *testing.T) {
	c := newTestCache(t, time.Minute, 100)
	ctx := context.Background()
	key := CacheKey("test", "round-trip")

	_, ok := c.Get(ctx, key)
	assert.False(t, ok, "expected miss on empty cache")

	c.Set(ctx, key, []byte("hello"))

	got, ok := c.Get(ctx, key)
	require.True(t, ok, "expected hit after set")
	assert.Equal(t, "hello", string(got))
}

func TestCacheJSON(t *testing.T) {
	c := newTestCache(t, time.Minute, 100)
	ctx := context.Background()

	type payload struct {
		Score int      `json:"score"`
		Roles []string `json:"roles"`
	}
	StoreJSON(ctx, c, "k", payload{Score: 25, Roles: []string{"frontend"}})

	got, ok := LoadJSON[payload](ctx, c, "k")
	require.True(t, ok)
	assert.Equal(t, payload{Score: 25, Roles: []string{"frontend"}}, got)

	c.Set(ctx, "bad", []byte("{not json"))
	_, ok = LoadJSON[payload](ctx, c, "bad")
	assert.False(t, ok, "corrupt entry must read as a miss")
}

func TestCacheExpiration(t *testing.T) {
	c := newTestCache(t, time.Millisecond, 100)
	ctx := context.Background()
	key := CacheKey("test", "expiry")

	c.Set(ctx, key, []byte("temp"))
	time.Sleep(5 * time.Millisecond)

	_, ok := c.Get(ctx, key)
	assert.False(t, ok, "expected miss after TTL expiry")
}

func TestCacheEviction(t *testing.T) {
	c := newTestCache(t, time.Minute, 3)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		c.Set(ctx, CacheKey("evict", fmt.Sprintf("item-%d", i)), []byte(fmt.Sprintf("v%d", i)))
	}

	count := 0
	c.l1.Range(func(_, _ any) bool {
		count++
		return true
	})
	assert.LessOrEqual(t, count, 3)

	_, ok := c.Get(ctx, CacheKey("evict", "item-4"))
	assert.True(t, ok, "newest entry must survive eviction")
}

func TestCacheStats(t *testing.T) {
	c := newTestCache(t, time.Minute, 100)
	ctx := context.Background()
	key := CacheKey("stats", "test")

	c.Get(ctx, key)
	hits, misses := c.Stats()
	assert.Equal(t, int64(0), hits)
	assert.Equal(t, int64(1), misses)

	c.Set(ctx, key, []byte("x"))
	c.Get(ctx, key)

	hits, misses = c.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}

func TestCacheNil(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	c.Set(ctx, "k", []byte("v"))
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)

	hits, misses := c.Stats()
	assert.Zero(t, hits)
	assert.Zero(t, misses)
	assert.NoError(t, c.Close())
}

func TestCacheCloseIdempotent(t *testing.T) {
	c := NewCache(CacheOptions{CleanupInterval: time.Millisecond})
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
}
