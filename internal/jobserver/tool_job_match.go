package jobserver

import (
	"context"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/keywords"
	"github.com/anatolykoptev/go_ats/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerJobMatch(server *mcp.Server, t *tools) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_match",
		Description: "Compare a resume with a job description. Every job keyword gets an importance (high when it is a curated dictionary keyword or appears 3+ times, medium at 2, low otherwise) and whether the resume contains it. Returns the percentage of high-importance keywords covered and up to 20 missing high/medium keywords. HTML job postings are converted to text first. An empty resume or job description yields a zero match.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, t.jobMatch)
}

func (t *tools) jobMatch(ctx context.Context, _ *mcp.CallToolRequest, input engine.JobMatchInput) (*mcp.CallToolResult, keywords.Comparison, error) {
	corpus, err := toolutil.ResumeCorpus(input.ResumeJSON, input.ResumeText)
	if err != nil {
		return nil, keywords.Comparison{}, fail(err)
	}
	jd := engine.NormalizeJobDescription(input.JobDescription)

	key := t.cacheKey("job_match", corpus, jd)
	cmp, _ := toolutil.Cached(ctx, t.Cache, key, func() (keywords.Comparison, error) {
		return t.Analyzer.Compare(corpus, jd), nil
	})
	engine.IncrJobComparisons()
	return nil, cmp, nil
}
