package keywords

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestAnalyze_EmptyCorpus(t *testing.T) {
	a := NewAnalyzer(nil, Policy{})
	res := a.Analyze("", "")

	if res.TotalWords != 0 || res.UniqueKeywords != 0 {
		t.Errorf("counts = %d/%d, want 0/0", res.TotalWords, res.UniqueKeywords)
	}
	if len(res.TopKeywords) != 0 {
		t.Errorf("TopKeywords = %v, want empty", res.TopKeywords)
	}
	if len(res.RoleScores) != len(a.Dictionary().RoleNames()) {
		t.Errorf("RoleScores len = %d", len(res.RoleScores))
	}
	if res.Comparison != nil {
		t.Error("Comparison should be nil without a job description")
	}
	if len(res.Suggestions) != 1 || !strings.Contains(res.Suggestions[0], "no extractable text") {
		t.Errorf("Suggestions = %v", res.Suggestions)
	}
}

func TestAnalyze_WithJobDescription(t *testing.T) {
	a := NewAnalyzer(DefaultDictionary(), DefaultPolicy())
	jd := "Looking for a Python Python Python developer with Django."
	res := a.Analyze("Skilled Python backend engineer.", jd)

	if res.TotalWords != 4 || res.UniqueKeywords != 4 {
		t.Errorf("counts = %d/%d, want 4/4", res.TotalWords, res.UniqueKeywords)
	}
	if res.Comparison == nil {
		t.Fatal("Comparison missing")
	}
	if res.Comparison.MatchPercentage != 50 {
		t.Errorf("MatchPercentage = %d, want 50", res.Comparison.MatchPercentage)
	}
	if res.RoleScores[0].Role != "data" {
		t.Errorf("best role = %s, want data", res.RoleScores[0].Role)
	}

	s := res.Suggestions
	if !strings.Contains(s[0], "only 4 words") {
		t.Errorf("first suggestion = %q, want short-resume hint", s[0])
	}
	last := s[len(s)-1]
	if !strings.Contains(last, `"django"`) {
		t.Errorf("last suggestion = %q, want missing django", last)
	}
	stuffing := 0
	for _, line := range s {
		if strings.Contains(line, "keyword stuffing") {
			stuffing++
		}
		if strings.Contains(line, "Paste a job description") {
			t.Errorf("unexpected paste hint with a job description: %q", line)
		}
	}
	if stuffing != 4 {
		t.Errorf("stuffing warnings = %d, want 4", stuffing)
	}
}

func TestAnalyze_TopKeywordsSkipStopWords(t *testing.T) {
	p := DefaultPolicy()
	p.TopKeywords = 2
	a := NewAnalyzer(nil, p)
	res := a.Analyze("and the React and the Vue and the Vue", "")

	if res.UniqueKeywords != 4 {
		t.Errorf("UniqueKeywords = %d, want 4 (stop words still indexed)", res.UniqueKeywords)
	}
	want := []KeywordCount{{"vue", 2}, {"react", 1}}
	if len(res.TopKeywords) != 2 || res.TopKeywords[0] != want[0] || res.TopKeywords[1] != want[1] {
		t.Errorf("TopKeywords = %v, want %v", res.TopKeywords, want)
	}
	if last := res.Suggestions[len(res.Suggestions)-1]; !strings.Contains(last, "Paste a job description") {
		t.Errorf("last suggestion = %q, want paste hint", last)
	}
}

func TestNewAnalyzer_NormalizesPolicy(t *testing.T) {
	a := NewAnalyzer(nil, Policy{MissingLimit: 7})
	p := a.Policy()
	if p.MissingLimit != 7 {
		t.Errorf("MissingLimit = %d, want 7", p.MissingLimit)
	}
	if p.DensityHigh != DefaultPolicy().DensityHigh || p.TopKeywords != DefaultPolicy().TopKeywords {
		t.Errorf("zero fields not defaulted: %+v", p)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := NewAnalyzer(nil, DefaultPolicy())
	corpus := "Frontend engineer. React React React, TypeScript, Redux, Jest and Sass. Shipped dashboards with GraphQL."
	jd := "<p>We need <strong>React</strong> and Vue. React, GraphQL, Cypress. Cypress testing.</p>"

	first, err := json.Marshal(a.Analyze(corpus, jd))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := json.Marshal(a.Analyze(corpus, jd))
		if err != nil {
			t.Fatal(err)
		}
		if string(again) != string(first) {
			t.Fatalf("run %d differs:\n%s\n%s", i, again, first)
		}
	}
}

func TestAnalyze_KeepStopWords(t *testing.T) {
	p := DefaultPolicy()
	p.TopKeywords = 2
	p.KeepStopWords = true
	res := NewAnalyzer(nil, p).Analyze("and the React and the Vue and the Vue", "")

	want := []KeywordCount{{"and", 3}, {"the", 3}}
	if len(res.TopKeywords) != 2 || res.TopKeywords[0] != want[0] || res.TopKeywords[1] != want[1] {
		t.Errorf("TopKeywords = %v, want %v", res.TopKeywords, want)
	}
}
