package engine

import (
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/anatolykoptev/go-kit/strutil"
)

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]+>`)
	htmlLikeRe   = regexp.MustCompile(`(?i)<(p|div|br|ul|ol|li|h[1-6]|span|strong|b|em|i|a|table|section)\b[^>]*>`)
	mdLinkDestRe = regexp.MustCompile(`\]\([^)]*\)`)
	mdEscapeRe   = regexp.MustCompile(`\\([\\` + "`" + `*_{}\[\]()#+\-.!|<>])`)
	mdMarkupRe   = regexp.MustCompile("(?m)^\\s*(#{1,6}|[-*+>]|\\d+\\.)\\s+|\\*{1,3}|`")
	blankLinesRe = regexp.MustCompile(`\n{3,}`)
)

// CleanHTML strips HTML tags and trims whitespace.
func CleanHTML(s string) string {
	return strings.TrimSpace(htmlTagRe.ReplaceAllString(s, ""))
}

// LooksLikeHTML reports whether s carries block or inline HTML markup.
func LooksLikeHTML(s string) bool {
	return htmlLikeRe.MatchString(s)
}

// NormalizeJobDescription turns a pasted job posting into plain text.
// HTML (as copied from job boards) goes through html-to-markdown, then link
// targets and markdown markers are dropped so URLs and bullets do not become
// keywords. Plain text is returned trimmed.
func NormalizeJobDescription(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || !LooksLikeHTML(s) {
		return s
	}
	md, err := htmltomarkdown.ConvertString(s)
	if err != nil {
		return CleanHTML(s)
	}
	md = mdLinkDestRe.ReplaceAllString(md, "]")
	md = mdEscapeRe.ReplaceAllString(md, "$1")
	md = strings.NewReplacer("[", "", "]", "").Replace(md)
	md = mdMarkupRe.ReplaceAllString(md, "")
	md = blankLinesRe.ReplaceAllString(md, "\n\n")
	return strings.TrimSpace(md)
}

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Pass suffix="" for no suffix. Safe for UTF-8 (Cyrillic, CJK, emoji).
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}

