package jobserver

import (
	"context"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/history"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerAnalysisHistory(server *mcp.Server, t *tools) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "analysis_history",
		Description: "List recent keyword_analyze runs, newest first: resume hash, word counts, best role and job match percentage. Requires HISTORY_ENABLED.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, t.listHistory)
}

func (t *tools) listHistory(ctx context.Context, _ *mcp.CallToolRequest, input engine.AnalysisHistoryInput) (*mcp.CallToolResult, engine.AnalysisHistoryOutput, error) {
	if t.History == nil {
		return nil, engine.AnalysisHistoryOutput{}, fail(history.ErrDisabled)
	}
	entries, err := t.History.List(ctx, input.Limit)
	if err != nil {
		return nil, engine.AnalysisHistoryOutput{}, fail(err)
	}
	return nil, engine.AnalysisHistoryOutput{Entries: entries, Total: len(entries)}, nil
}
