package keywords

import (
	"sort"
	"strings"
)

// RoleScore is the share of a role's dictionary keywords found in a corpus.
type RoleScore struct {
	Role    string `json:"role"`
	Score   int    `json:"score"`
	Matched int    `json:"matched"`
	Total   int    `json:"total"`
}

// MatchRoles scores corpus against each role of d. Containment is a
// case-insensitive substring test on the corpus itself, so curated phrases
// count even when the tokenizer would split them. With no role names every
// role is scored; an unknown name fails with *InvalidRoleError.
// Results are ordered by score descending, then role name.
func MatchRoles(corpus string, d *Dictionary, roles ...string) ([]RoleScore, error) {
	names := roles
	if len(names) == 0 {
		names = d.RoleNames()
	}
	for _, name := range names {
		if !d.HasRole(name) {
			return nil, &InvalidRoleError{Role: name, Known: d.RoleNames()}
		}
	}

	lower := Fold(corpus)
	seen := make(map[string]bool, len(names))
	out := make([]RoleScore, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		kws, _ := d.Keywords(name)
		matched := 0
		for _, kw := range kws {
			if strings.Contains(lower, kw) {
				matched++
			}
		}
		out = append(out, RoleScore{
			Role:    name,
			Score:   RoundPercent(matched, len(kws)),
			Matched: matched,
			Total:   len(kws),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Role < out[j].Role
	})
	return out, nil
}
