// Package toolutil provides shared helper functions for go_ats MCP tools.
package toolutil

import (
	"context"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/keywords"
)

// ResumeCorpus turns tool input into a keyword corpus. resume_json wins over
// resume_text; both blank yield an empty corpus, which the engine scores as
// zero.
func ResumeCorpus(resumeJSON, resumeText string) (string, error) {
	if strings.TrimSpace(resumeJSON) != "" {
		r, err := keywords.ParseResume([]byte(resumeJSON))
		if err != nil {
			return "", fmt.Errorf("resume_json: %w", err)
		}
		return keywords.Extract(r), nil
	}
	return strings.TrimSpace(resumeText), nil
}

// Cached returns the value stored under key, or runs compute and stores its
// result. Errors are not cached.
func Cached[T any](ctx context.Context, c *engine.Cache, key string, compute func() (T, error)) (T, error) {
	if out, ok := engine.LoadJSON[T](ctx, c, key); ok {
		return out, nil
	}
	out, err := compute()
	if err != nil {
		return out, err
	}
	engine.StoreJSON(ctx, c, key, out)
	return out, nil
}
