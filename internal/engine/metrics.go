package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	Analyses        atomic.Int64
	DensityChecks   atomic.Int64
	RoleMatches     atomic.Int64
	JobComparisons  atomic.Int64
	Suggestions     atomic.Int64
	DictionaryReads atomic.Int64
	HistoryWrites   atomic.Int64
	HistoryErrors   atomic.Int64
	ToolErrors      atomic.Int64
}

// metricsCache is the cache whose hit/miss counters are reported.
var metricsCache atomic.Pointer[Cache]

// SetMetricsCache selects the cache reported by GetMetrics.
func SetMetricsCache(c *Cache) { metricsCache.Store(c) }

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := metricsCache.Load().Stats()
	return map[string]int64{
		"analyses":         metrics.Analyses.Load(),
		"density_checks":   metrics.DensityChecks.Load(),
		"role_matches":     metrics.RoleMatches.Load(),
		"job_comparisons":  metrics.JobComparisons.Load(),
		"suggestions":      metrics.Suggestions.Load(),
		"dictionary_reads": metrics.DictionaryReads.Load(),
		"history_writes":   metrics.HistoryWrites.Load(),
		"history_errors":   metrics.HistoryErrors.Load(),
		"tool_errors":      metrics.ToolErrors.Load(),
		"cache_hits":       hits,
		"cache_misses":     misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"analyses", "density_checks", "role_matches", "job_comparisons",
		"suggestions", "dictionary_reads",
		"history_writes", "history_errors",
		"tool_errors",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the tool layer.
func IncrAnalyses()        { metrics.Analyses.Add(1) }
func IncrDensityChecks()   { metrics.DensityChecks.Add(1) }
func IncrRoleMatches()     { metrics.RoleMatches.Add(1) }
func IncrJobComparisons()  { metrics.JobComparisons.Add(1) }
func IncrSuggestions()     { metrics.Suggestions.Add(1) }
func IncrDictionaryReads() { metrics.DictionaryReads.Add(1) }
func IncrHistoryWrites()   { metrics.HistoryWrites.Add(1) }
func IncrHistoryErrors()   { metrics.HistoryErrors.Add(1) }
func IncrToolErrors()      { metrics.ToolErrors.Add(1) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
