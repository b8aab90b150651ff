package jobserver

import (
	"fmt"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/keywords"
	"github.com/anatolykoptev/go_ats/internal/history"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// maxTopN caps keyword_analyze's top_n.
const maxTopN = 50

// Deps are the collaborators shared by all tools.
type Deps struct {
	Analyzer *keywords.Analyzer
	Cache    *engine.Cache // nil = no caching
	History  history.Store // nil = history disabled
}

// tools holds the handlers; each is a plain method so tests can call it
// without a server.
type tools struct {
	Deps
	fingerprint string // dictionary + policy, mixed into cache keys
}

func newTools(d Deps) *tools {
	if d.Analyzer == nil {
		d.Analyzer = keywords.NewAnalyzer(nil, keywords.DefaultPolicy())
	}
	return &tools{
		Deps:        d,
		fingerprint: fmt.Sprintf("v%d|%+v", d.Analyzer.Dictionary().Version, d.Analyzer.Policy()),
	}
}

// RegisterTools registers the keyword tools on the given MCP server:
// keyword_analyze, keyword_density, role_match, job_match, keyword_suggest,
// role_dictionary, analysis_history. It returns the number registered.
func RegisterTools(server *mcp.Server, d Deps) int {
	t := newTools(d)
	registerKeywordAnalyze(server, t)
	registerKeywordDensity(server, t)
	registerRoleMatch(server, t)
	registerJobMatch(server, t)
	registerKeywordSuggest(server, t)
	registerRoleDictionary(server, t)
	registerAnalysisHistory(server, t)
	return 7
}

func (t *tools) cacheKey(tool string, parts ...string) string {
	return engine.CacheKey(append([]string{tool, t.fingerprint}, parts...)...)
}

// fail counts a tool error and returns it.
func fail(err error) error {
	engine.IncrToolErrors()
	return err
}
