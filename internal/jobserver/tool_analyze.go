package jobserver

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/keywords"
	"github.com/anatolykoptev/go_ats/internal/history"
	"github.com/anatolykoptev/go_ats/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerKeywordAnalyze(server *mcp.Server, t *tools) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "keyword_analyze",
		Description: "Analyze a resume's keywords. Returns total and unique word counts, the most frequent keywords, coverage scores for each role in the keyword dictionary (frontend, backend, devops, ...), and ordered improvement suggestions. With a job description it also returns the match percentage, per-keyword importance and the missing keywords.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, t.analyze)
}

func (t *tools) analyze(ctx context.Context, _ *mcp.CallToolRequest, input engine.KeywordAnalyzeInput) (*mcp.CallToolResult, engine.KeywordAnalyzeOutput, error) {
	corpus, err := toolutil.ResumeCorpus(input.ResumeJSON, input.ResumeText)
	if err != nil {
		return nil, engine.KeywordAnalyzeOutput{}, fail(err)
	}
	jd := engine.NormalizeJobDescription(input.JobDescription)

	a := t.Analyzer
	if input.TopN > 0 {
		p := a.Policy()
		p.TopKeywords = min(input.TopN, maxTopN)
		a = keywords.NewAnalyzer(a.Dictionary(), p)
	}

	var res keywords.AnalysisResult
	err = engine.TrackOperation(ctx, "keyword_analyze", func(ctx context.Context) error {
		key := t.cacheKey("keyword_analyze", corpus, jd, strconv.Itoa(a.Policy().TopKeywords))
		res, err = toolutil.Cached(ctx, t.Cache, key, func() (keywords.AnalysisResult, error) {
			return a.Analyze(corpus, jd), nil
		})
		return err
	})
	if err != nil {
		return nil, engine.KeywordAnalyzeOutput{}, fail(err)
	}
	engine.IncrAnalyses()

	out := engine.KeywordAnalyzeOutput{Analysis: res}
	if t.History != nil {
		entry := history.NewEntry(corpus, res)
		if err := t.History.Record(ctx, entry); err != nil {
			engine.IncrHistoryErrors()
			slog.Warn("keyword_analyze: history record failed", slog.Any("error", err))
		} else {
			engine.IncrHistoryWrites()
			out.HistoryID = entry.ID
		}
	}
	return nil, out, nil
}
