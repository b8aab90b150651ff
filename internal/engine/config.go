package engine

import (
	"time"

	"github.com/anatolykoptev/go_ats/internal/engine/keywords"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	DictionaryPath       string // empty = embedded dictionary
	Policy               keywords.Policy
	RedisURL             string // empty = L1 only
	CacheTTL             time.Duration
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
	HistoryEnabled       bool
	HistoryPath          string // SQLite file; ignored when DatabaseURL is set
	DatabaseURL          string // PostgreSQL history store
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages.
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}

// LoadDictionary returns the dictionary named by Cfg.DictionaryPath, or the
// embedded one when the path is empty.
func LoadDictionary() (*keywords.Dictionary, error) {
	if Cfg.DictionaryPath == "" {
		return keywords.DefaultDictionary(), nil
	}
	return keywords.LoadDictionaryFile(Cfg.DictionaryPath)
}
