// go_ats: resume keyword intelligence MCP server.
//
// Exposes keyword analysis tools: keyword_analyze, keyword_density,
// role_match, job_match, keyword_suggest, role_dictionary, analysis_history.
// Runs as HTTP MCP server or stdio transport.
package main

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/keywords"
	"github.com/anatolykoptev/go_ats/internal/history"
	"github.com/anatolykoptev/go_ats/internal/jobserver"
)

var version = "dev"

func main() {
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()
	mcpPort := env.Str("MCP_PORT", "8893")

	deps, cleanup := initEngine()
	defer cleanup()

	slog.Info("starting go_ats",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_ats",
		Version: version,
	}, nil)

	n := jobserver.RegisterTools(server, deps)
	slog.Info("tools registered", slog.Int("count", n))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_ats",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 60 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
		cleanup()
		os.Exit(1)
	}
}

func initEngine() (jobserver.Deps, func()) {
	def := keywords.DefaultPolicy()
	c := engine.Config{
		DictionaryPath: env.Str("DICTIONARY_PATH", ""),
		Policy: keywords.Policy{
			DensityLow:       env.Float("DENSITY_LOW", def.DensityLow),
			DensityHigh:      env.Float("DENSITY_HIGH", def.DensityHigh),
			ImportanceHigh:   env.Int("IMPORTANCE_HIGH", def.ImportanceHigh),
			ImportanceMedium: env.Int("IMPORTANCE_MEDIUM", def.ImportanceMedium),
			MissingLimit:     env.Int("MISSING_LIMIT", def.MissingLimit),
			TopKeywords:      env.Int("TOP_KEYWORDS", def.TopKeywords),
			KeepStopWords:    envBool("KEEP_STOP_WORDS"),
		},
		RedisURL:             env.Str("REDIS_URL", ""),
		CacheTTL:             env.Duration("CACHE_TTL", engine.DefaultCacheTTL),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
		HistoryEnabled:       envBool("HISTORY_ENABLED"),
		HistoryPath:          env.Str("HISTORY_PATH", ""),
		DatabaseURL:          env.Str("DATABASE_URL", ""),
	}
	engine.Init(c)

	dict, err := engine.LoadDictionary()
	if err != nil {
		slog.Warn("dictionary load failed, using embedded dictionary",
			slog.String("path", c.DictionaryPath), slog.Any("error", err))
		dict = keywords.DefaultDictionary()
	}
	slog.Info("dictionary loaded", slog.Int("version", dict.Version), slog.Int("roles", len(dict.RoleNames())))

	cache := engine.NewCache(engine.CacheOptions{
		RedisURL:        c.RedisURL,
		TTL:             c.CacheTTL,
		MaxEntries:      c.CacheMaxEntries,
		CleanupInterval: c.CacheCleanupInterval,
	})
	engine.SetMetricsCache(cache)

	deps := jobserver.Deps{
		Analyzer: keywords.NewAnalyzer(dict, c.Policy),
		Cache:    cache,
	}

	// Analysis history (SQLite by default, PostgreSQL with DATABASE_URL)
	if c.HistoryEnabled {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		st, err := history.Open(ctx, history.Options{Path: c.HistoryPath, DatabaseURL: c.DatabaseURL})
		cancel()
		if err != nil {
			slog.Warn("history init failed, running without history", slog.Any("error", err))
		} else {
			deps.History = st
			slog.Info("history initialized", slog.Bool("postgres", c.DatabaseURL != ""))
		}
	}

	cleanup := func() {
		if deps.History != nil {
			deps.History.Close()
		}
		cache.Close()
	}
	return deps, cleanup
}

func envBool(key string) bool {
	v, _ := strconv.ParseBool(env.Str(key, "false"))
	return v
}
