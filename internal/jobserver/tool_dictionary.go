package jobserver

import (
	"context"
	"strings"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerRoleDictionary(server *mcp.Server, t *tools) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "role_dictionary",
		Description: "List the curated keyword dictionary used for role scoring and keyword importance: roles, their keyword categories, and the multi-word phrases recognized as single keywords.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, t.dictionary)
}

func (t *tools) dictionary(_ context.Context, _ *mcp.CallToolRequest, input engine.RoleDictionaryInput) (*mcp.CallToolResult, engine.RoleDictionaryOutput, error) {
	d := t.Analyzer.Dictionary()
	names := d.RoleNames()
	role := strings.ToLower(strings.TrimSpace(input.Role))
	if role != "" {
		if _, err := d.Keywords(role); err != nil {
			return nil, engine.RoleDictionaryOutput{}, fail(err)
		}
		names = []string{role}
	}

	out := engine.RoleDictionaryOutput{
		Version: d.Version,
		Roles:   make([]engine.RoleEntry, 0, len(names)),
	}
	if role == "" {
		out.Phrases = append([]string(nil), d.Phrases...)
	}
	for _, name := range names {
		entry := engine.RoleEntry{Role: name, Categories: make(map[string][]string, len(d.Roles[name]))}
		for cat, kws := range d.Roles[name] {
			entry.Categories[cat] = append([]string(nil), kws...)
			entry.Total += len(kws)
		}
		out.Roles = append(out.Roles, entry)
	}
	engine.IncrDictionaryReads()
	return nil, out, nil
}
