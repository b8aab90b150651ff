package keywords

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// minTokenRunes is the shortest token kept in a FrequencyTable.
const minTokenRunes = 3

// FrequencyTable maps a token or phrase to its occurrence count.
type FrequencyTable map[string]int

// KeywordCount is one FrequencyTable entry, used wherever order matters.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// Sorted returns the entries by count descending, then keyword ascending.
func (ft FrequencyTable) Sorted() []KeywordCount {
	out := make([]KeywordCount, 0, len(ft))
	for k, n := range ft {
		out = append(out, KeywordCount{Keyword: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Keyword < out[j].Keyword
	})
	return out
}

// Has reports whether key is present.
func (ft FrequencyTable) Has(key string) bool {
	_, ok := ft[key]
	return ok
}

// Fold lower-cases s with a locale-independent rule.
// A cases.Caser is stateful, so one is built per call.
func Fold(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Tokenize splits corpus into lower-cased tokens, short ones included.
// Letters, digits, '_' and "+#.-" form tokens, so "c++", "c#" and "node.js"
// survive. Trailing '.'/'-' and leading '-' are dropped, as is a leading run
// of two or more dots; a single leading dot stays so ".net" survives. Runs
// without a letter or digit are discarded.
func Tokenize(corpus string) []string {
	var tokens []string
	var word strings.Builder
	flush := func() {
		w := word.String()
		word.Reset()
		w = strings.TrimRight(w, ".-")
		w = strings.TrimLeft(w, "-")
		if strings.HasPrefix(w, "..") {
			w = strings.TrimLeft(w, ".-")
		}
		if w != "" && hasAlnum(w) {
			tokens = append(tokens, w)
		}
	}
	for _, r := range Fold(corpus) {
		if isTokenRune(r) {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// Index builds the frequency table for corpus: every token of at least three
// runes, plus each phrase found as a literal substring. Phrase counts are
// independent of the counts of their constituent tokens.
func Index(corpus string, phrases []string) FrequencyTable {
	ft := make(FrequencyTable)
	for _, tok := range Tokenize(corpus) {
		if utf8.RuneCountInString(tok) < minTokenRunes {
			continue
		}
		ft[tok]++
	}
	if len(phrases) == 0 {
		return ft
	}
	lower := Fold(corpus)
	for _, p := range phrases {
		p = Fold(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if n := strings.Count(lower, p); n > 0 {
			ft[p] += n
		}
	}
	return ft
}

func isTokenRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) {
		return true
	}
	switch r {
	case '_', '+', '#', '.', '-':
		return true
	}
	return false
}

func hasAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
