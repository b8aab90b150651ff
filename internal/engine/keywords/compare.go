package keywords

import "sort"

// Importance is the weight tier of a job-description keyword.
type Importance string

const (
	ImportanceHigh   Importance = "high"
	ImportanceMedium Importance = "medium"
	ImportanceLow    Importance = "low"
)

func (i Importance) rank() int {
	switch i {
	case ImportanceHigh:
		return 0
	case ImportanceMedium:
		return 1
	}
	return 2
}

// MatchRecord describes one job-description keyword against the resume.
type MatchRecord struct {
	Keyword    string     `json:"keyword"`
	InResume   bool       `json:"inResume"`
	Count      int        `json:"count"`
	Importance Importance `json:"importance"`

	jobCount int
}

// Comparison is the outcome of comparing a resume corpus to a job description.
type Comparison struct {
	Matches         []MatchRecord `json:"matches"`
	MatchPercentage int           `json:"matchPercentage"`
	MissingKeywords []string      `json:"missingKeywords"`
}

// Compare indexes both texts and weighs every job keyword. A keyword is high
// importance when the dictionary knows it or the job repeats it at least
// ImportanceHigh times; medium at ImportanceMedium; low otherwise.
// MatchPercentage is the rounded share of high-importance keywords present in
// the resume, 0 when there are none. Neither index is mutated.
func Compare(resumeCorpus, jobDescription string, d *Dictionary, p Policy) Comparison {
	p = p.normalized()
	resumeIndex := d.Index(resumeCorpus)
	jobIndex := d.Index(jobDescription)

	cmp := Comparison{
		Matches:         make([]MatchRecord, 0, len(jobIndex)),
		MissingKeywords: []string{},
	}

	totalHigh, matchedHigh := 0, 0
	for k, jobCount := range jobIndex {
		count, inResume := resumeIndex[k]
		imp := importanceOf(k, jobCount, d, p)
		if imp == ImportanceHigh {
			totalHigh++
			if inResume {
				matchedHigh++
			}
		}
		cmp.Matches = append(cmp.Matches, MatchRecord{
			Keyword:    k,
			InResume:   inResume,
			Count:      count,
			Importance: imp,
			jobCount:   jobCount,
		})
	}

	sort.Slice(cmp.Matches, func(i, j int) bool {
		a, b := cmp.Matches[i], cmp.Matches[j]
		if a.Importance.rank() != b.Importance.rank() {
			return a.Importance.rank() < b.Importance.rank()
		}
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.jobCount != b.jobCount {
			return a.jobCount > b.jobCount
		}
		return a.Keyword < b.Keyword
	})

	for _, m := range cmp.Matches {
		if len(cmp.MissingKeywords) >= p.MissingLimit {
			break
		}
		if !m.InResume && m.Importance != ImportanceLow {
			cmp.MissingKeywords = append(cmp.MissingKeywords, m.Keyword)
		}
	}

	cmp.MatchPercentage = RoundPercent(matchedHigh, totalHigh)
	return cmp
}

func importanceOf(keyword string, jobCount int, d *Dictionary, p Policy) Importance {
	switch {
	case d.Contains(keyword) || jobCount >= p.ImportanceHigh:
		return ImportanceHigh
	case jobCount >= p.ImportanceMedium:
		return ImportanceMedium
	}
	return ImportanceLow
}
