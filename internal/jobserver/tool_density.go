package jobserver

import (
	"context"
	"errors"
	"strings"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/keywords"
	"github.com/anatolykoptev/go_ats/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerKeywordDensity(server *mcp.Server, t *tools) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "keyword_density",
		Description: "Measure how often one keyword appears in a resume. Counts whole-word, case-insensitive matches (C++, node.js and similar are matched literally) and classifies the density as low (absent or under 0.5%), good, or high (over 3%, likely keyword stuffing).",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, t.density)
}

func (t *tools) density(ctx context.Context, _ *mcp.CallToolRequest, input engine.KeywordDensityInput) (*mcp.CallToolResult, keywords.DensityResult, error) {
	if strings.TrimSpace(input.Keyword) == "" {
		return nil, keywords.DensityResult{}, fail(errors.New("keyword is required"))
	}
	corpus, err := toolutil.ResumeCorpus(input.ResumeJSON, input.ResumeText)
	if err != nil {
		return nil, keywords.DensityResult{}, fail(err)
	}
	engine.IncrDensityChecks()
	return nil, t.Analyzer.Density(corpus, input.Keyword), nil
}
