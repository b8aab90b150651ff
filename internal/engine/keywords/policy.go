package keywords

// Policy holds the heuristic thresholds used by density classification and
// job-description comparison. The defaults have no documented derivation and are
// kept for behavioural compatibility; callers may tune them.
type Policy struct {
	DensityLow       float64 // below this percentage a present keyword is "low"
	DensityHigh      float64 // above this percentage a keyword is "high" (stuffing)
	ImportanceHigh   int     // job frequency at which a keyword is high importance
	ImportanceMedium int     // job frequency at which a keyword is medium importance
	MissingLimit     int     // max entries in Comparison.MissingKeywords
	TopKeywords      int     // size of AnalysisResult.TopKeywords
	KeepStopWords    bool    // list common English words in TopKeywords too
}

// DefaultPolicy returns the stock thresholds.
func DefaultPolicy() Policy {
	return Policy{
		DensityLow:       0.5,
		DensityHigh:      3.0,
		ImportanceHigh:   3,
		ImportanceMedium: 2,
		MissingLimit:     20,
		TopKeywords:      10,
	}
}

// normalized fills zero fields with defaults so a partially set Policy stays usable.
func (p Policy) normalized() Policy {
	d := DefaultPolicy()
	if p.DensityLow <= 0 {
		p.DensityLow = d.DensityLow
	}
	if p.DensityHigh <= 0 {
		p.DensityHigh = d.DensityHigh
	}
	if p.ImportanceHigh <= 0 {
		p.ImportanceHigh = d.ImportanceHigh
	}
	if p.ImportanceMedium <= 0 {
		p.ImportanceMedium = d.ImportanceMedium
	}
	if p.MissingLimit <= 0 {
		p.MissingLimit = d.MissingLimit
	}
	if p.TopKeywords <= 0 {
		p.TopKeywords = d.TopKeywords
	}
	return p
}
