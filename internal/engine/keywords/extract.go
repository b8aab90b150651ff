package keywords

import "strings"

// Extract flattens the enabled sections of r, in stored order, into one corpus.
// Non-empty fields are joined by single spaces. Absent fields contribute nothing.
func Extract(r Resume) string {
	var sb strings.Builder
	for _, s := range r.Sections {
		if !s.Enabled || s.Content == nil {
			continue
		}
		for _, t := range s.Content.texts() {
			t = strings.TrimSpace(t)
			if t == "" {
				continue
			}
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(t)
		}
	}
	return sb.String()
}
