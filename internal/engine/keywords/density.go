package keywords

import (
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DensityStatus classifies how often a keyword occurs relative to corpus length.
type DensityStatus string

const (
	DensityLow  DensityStatus = "low"
	DensityGood DensityStatus = "good"
	DensityHigh DensityStatus = "high"
)

// DensityResult is the outcome of a single keyword density check.
type DensityResult struct {
	Keyword        string        `json:"keyword"`
	Count          int           `json:"count"`
	TotalWords     int           `json:"totalWords"`
	DensityPercent float64       `json:"densityPercent"`
	Status         DensityStatus `json:"status"`
}

// Density counts whole-word, case-insensitive occurrences of keyword in corpus
// and classifies the density. The denominator is the whitespace word count.
func Density(corpus, keyword string, p Policy) DensityResult {
	p = p.normalized()
	keyword = strings.TrimSpace(keyword)

	res := DensityResult{
		Keyword:    keyword,
		Count:      CountWholeWord(corpus, keyword),
		TotalWords: len(strings.Fields(corpus)),
	}
	if res.TotalWords > 0 {
		res.DensityPercent = float64(res.Count) / float64(res.TotalWords) * 100
	}
	res.Status = classifyDensity(res.Count, res.DensityPercent, p)
	return res
}

// classifyDensity applies the thresholds in order: absent, stuffing, sparse, good.
func classifyDensity(count int, density float64, p Policy) DensityStatus {
	switch {
	case count == 0:
		return DensityLow
	case density > p.DensityHigh:
		return DensityHigh
	case density < p.DensityLow:
		return DensityLow
	default:
		return DensityGood
	}
}

// CountWholeWord counts case-insensitive occurrences of keyword whose
// neighbouring runes are not word characters. The keyword is escaped before
// the pattern is built, so "c++" or "node.js" match literally.
func CountWholeWord(corpus, keyword string) int {
	if keyword == "" || corpus == "" {
		return 0
	}
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(keyword))
	if err != nil {
		return 0
	}
	n := 0
	for _, loc := range re.FindAllStringIndex(corpus, -1) {
		if wordBoundaryBefore(corpus, loc[0]) && wordBoundaryAfter(corpus, loc[1]) {
			n++
		}
	}
	return n
}

// RoundPercent rounds a ratio in [0,1] to an integer percentage.
func RoundPercent(num, den int) int {
	if den <= 0 {
		return 0
	}
	return int(math.Round(float64(num) / float64(den) * 100))
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func wordBoundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func wordBoundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}
