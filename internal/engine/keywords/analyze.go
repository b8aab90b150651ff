package keywords

import (
	"fmt"
	"strings"
)

// shortResumeTokens is the token count under which a resume is flagged as thin.
const shortResumeTokens = 150

// maxMissingSuggestions caps the missing-keyword hints in AnalysisResult.
const maxMissingSuggestions = 5

// displayStopWords are hidden from TopKeywords unless Policy.KeepStopWords;
// the index keeps them either way.
var displayStopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "new": true,
	"using": true, "used": true, "over": true, "across": true, "per": true,
}

// AnalysisResult is the read-only snapshot returned by Analyze.
type AnalysisResult struct {
	TotalWords     int            `json:"totalWords"`
	UniqueKeywords int            `json:"uniqueKeywords"`
	TopKeywords    []KeywordCount `json:"topKeywords"`
	RoleScores     []RoleScore    `json:"roleScores"`
	Suggestions    []string       `json:"suggestions"`
	Comparison     *Comparison    `json:"comparison,omitempty"`
}

// Analyzer bundles a dictionary and a policy. It holds no per-call state.
type Analyzer struct {
	dict   *Dictionary
	policy Policy
}

// NewAnalyzer returns an Analyzer; a nil dictionary means DefaultDictionary.
func NewAnalyzer(d *Dictionary, p Policy) *Analyzer {
	if d == nil {
		d = DefaultDictionary()
	}
	return &Analyzer{dict: d, policy: p.normalized()}
}

func (a *Analyzer) Dictionary() *Dictionary { return a.dict }
func (a *Analyzer) Policy() Policy          { return a.policy }

// Density classifies keyword in corpus using the analyzer's policy.
func (a *Analyzer) Density(corpus, keyword string) DensityResult {
	return Density(corpus, keyword, a.policy)
}

// MatchRoles scores corpus against the analyzer's dictionary.
func (a *Analyzer) MatchRoles(corpus string, roles ...string) ([]RoleScore, error) {
	return MatchRoles(corpus, a.dict, roles...)
}

// Compare weighs jobDescription keywords against corpus.
func (a *Analyzer) Compare(corpus, jobDescription string) Comparison {
	return Compare(corpus, jobDescription, a.dict, a.policy)
}

// Analyze builds the aggregate report for corpus. The job comparison is
// included only when jobDescription is not blank.
func (a *Analyzer) Analyze(corpus, jobDescription string) AnalysisResult {
	index := a.dict.Index(corpus)
	res := AnalysisResult{
		TotalWords:     len(Tokenize(corpus)),
		UniqueKeywords: len(index),
		TopKeywords:    topKeywords(index, a.policy.TopKeywords, a.policy.KeepStopWords),
	}
	res.RoleScores, _ = MatchRoles(corpus, a.dict)

	if strings.TrimSpace(jobDescription) != "" {
		cmp := a.Compare(corpus, jobDescription)
		res.Comparison = &cmp
	}
	res.Suggestions = a.suggestions(corpus, res)
	return res
}

func topKeywords(ft FrequencyTable, n int, keepStopWords bool) []KeywordCount {
	out := make([]KeywordCount, 0, n)
	for _, kc := range ft.Sorted() {
		if len(out) >= n {
			break
		}
		if !keepStopWords && displayStopWords[kc.Keyword] {
			continue
		}
		out = append(out, kc)
	}
	return out
}

func (a *Analyzer) suggestions(corpus string, res AnalysisResult) []string {
	out := []string{}
	if strings.TrimSpace(corpus) == "" {
		return append(out, "Your resume has no extractable text yet. Enable sections and add content to start the analysis.")
	}
	if res.TotalWords < shortResumeTokens {
		out = append(out, fmt.Sprintf("Your resume has only %d words. Expand experience and project descriptions with specific technologies and outcomes.", res.TotalWords))
	}
	for _, kc := range res.TopKeywords {
		if d := a.Density(corpus, kc.Keyword); d.Status == DensityHigh {
			out = append(out, fmt.Sprintf("%q makes up %.1f%% of your resume. Vary the wording to avoid looking like keyword stuffing.", kc.Keyword, d.DensityPercent))
		}
	}
	if len(res.RoleScores) > 0 && res.RoleScores[0].Score > 0 {
		best := res.RoleScores[0]
		out = append(out, fmt.Sprintf("Your keywords fit the %s role best (%d%% coverage).", best.Role, best.Score))
	}
	if res.Comparison == nil {
		return append(out, "Paste a job description to see your match percentage and missing keywords.")
	}
	for i, kw := range res.Comparison.MissingKeywords {
		if i >= maxMissingSuggestions {
			break
		}
		out = append(out, fmt.Sprintf("The job description mentions %q but your resume does not.", kw))
	}
	return out
}
