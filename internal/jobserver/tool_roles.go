package jobserver

import (
	"context"
	"strings"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/keywords"
	"github.com/anatolykoptev/go_ats/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerRoleMatch(server *mcp.Server, t *tools) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "role_match",
		Description: "Score a resume against job roles from the keyword dictionary. Each score is the rounded percentage of the role's curated keywords found in the resume (0-100). Results are sorted best first. Unknown role names are rejected with the list of valid roles.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, t.roleMatch)
}

func (t *tools) roleMatch(ctx context.Context, _ *mcp.CallToolRequest, input engine.RoleMatchInput) (*mcp.CallToolResult, engine.RoleMatchOutput, error) {
	corpus, err := toolutil.ResumeCorpus(input.ResumeJSON, input.ResumeText)
	if err != nil {
		return nil, engine.RoleMatchOutput{}, fail(err)
	}

	roles := make([]string, 0, len(input.Roles))
	for _, r := range input.Roles {
		if r = strings.ToLower(strings.TrimSpace(r)); r != "" {
			roles = append(roles, r)
		}
	}

	key := t.cacheKey("role_match", corpus, strings.Join(roles, ","))
	scores, err := toolutil.Cached(ctx, t.Cache, key, func() ([]keywords.RoleScore, error) {
		return t.Analyzer.MatchRoles(corpus, roles...)
	})
	if err != nil {
		return nil, engine.RoleMatchOutput{}, fail(err)
	}
	engine.IncrRoleMatches()
	return nil, engine.RoleMatchOutput{Roles: scores}, nil
}
