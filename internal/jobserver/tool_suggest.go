package jobserver

import (
	"context"
	"errors"
	"strings"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/keywords"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// maxKeywordRunes bounds the keyword echoed into suggestion text.
const maxKeywordRunes = 80

func registerKeywordSuggest(server *mcp.Server, t *tools) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "keyword_suggest",
		Description: "Suggest where to work a missing keyword into a resume: skills section, an experience bullet, the professional summary, or a project.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, t.suggest)
}

func (t *tools) suggest(_ context.Context, _ *mcp.CallToolRequest, input engine.KeywordSuggestInput) (*mcp.CallToolResult, engine.KeywordSuggestOutput, error) {
	kw := strings.TrimSpace(input.Keyword)
	if kw == "" {
		return nil, engine.KeywordSuggestOutput{}, fail(errors.New("keyword is required"))
	}
	kw = engine.TruncateRunes(kw, maxKeywordRunes, "...")
	engine.IncrSuggestions()
	return nil, engine.KeywordSuggestOutput{Keyword: kw, Suggestions: keywords.Suggest(kw)}, nil
}
