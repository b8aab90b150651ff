package engine

import (
	"github.com/anatolykoptev/go_ats/internal/engine/keywords"
	"github.com/anatolykoptev/go_ats/internal/history"
)

// KeywordAnalyzeInput is the input for keyword_analyze.
type KeywordAnalyzeInput struct {
	ResumeJSON     string `json:"resume_json,omitempty" jsonschema:"Resume document as JSON: {personalInfo, sections:[{type, enabled, content}]}. Section types: summary, experience, projects, skills, education, certifications, custom"`
	ResumeText     string `json:"resume_text,omitempty" jsonschema:"Plain resume text, used when resume_json is empty"`
	JobDescription string `json:"job_description,omitempty" jsonschema:"Job description text or HTML. Enables match percentage and missing keywords"`
	TopN           int    `json:"top_n,omitempty" jsonschema:"Number of top keywords to return (default 10)"`
}

// KeywordAnalyzeOutput is the output of keyword_analyze.
type KeywordAnalyzeOutput struct {
	Analysis  keywords.AnalysisResult `json:"analysis"`
	HistoryID string                  `json:"history_id,omitempty"`
}

// KeywordDensityInput is the input for keyword_density.
type KeywordDensityInput struct {
	ResumeJSON string `json:"resume_json,omitempty" jsonschema:"Resume document as JSON"`
	ResumeText string `json:"resume_text,omitempty" jsonschema:"Plain resume text, used when resume_json is empty"`
	Keyword    string `json:"keyword" jsonschema:"Keyword to measure (e.g. React, C++, node.js). Matched as a whole word, case-insensitive"`
}

// RoleMatchInput is the input for role_match.
type RoleMatchInput struct {
	ResumeJSON string   `json:"resume_json,omitempty" jsonschema:"Resume document as JSON"`
	ResumeText string   `json:"resume_text,omitempty" jsonschema:"Plain resume text, used when resume_json is empty"`
	Roles      []string `json:"roles,omitempty" jsonschema:"Roles to score (e.g. frontend, backend). Empty = all roles"`
}

// RoleMatchOutput is the output of role_match.
type RoleMatchOutput struct {
	Roles []keywords.RoleScore `json:"roles"`
}

// JobMatchInput is the input for job_match.
type JobMatchInput struct {
	ResumeJSON     string `json:"resume_json,omitempty" jsonschema:"Resume document as JSON"`
	ResumeText     string `json:"resume_text,omitempty" jsonschema:"Plain resume text, used when resume_json is empty"`
	JobDescription string `json:"job_description" jsonschema:"Job description text or HTML"`
}

// KeywordSuggestInput is the input for keyword_suggest.
type KeywordSuggestInput struct {
	Keyword string `json:"keyword" jsonschema:"Keyword to work into the resume"`
}

// KeywordSuggestOutput is the output of keyword_suggest.
type KeywordSuggestOutput struct {
	Keyword     string   `json:"keyword"`
	Suggestions []string `json:"suggestions"`
}

// RoleDictionaryInput is the input for role_dictionary.
type RoleDictionaryInput struct {
	Role string `json:"role,omitempty" jsonschema:"Role to show. Empty = all roles"`
}

// RoleEntry is one role of the dictionary.
type RoleEntry struct {
	Role       string              `json:"role"`
	Categories map[string][]string `json:"categories"`
	Total      int                 `json:"total"`
}

// RoleDictionaryOutput is the output of role_dictionary.
type RoleDictionaryOutput struct {
	Version int         `json:"version"`
	Roles   []RoleEntry `json:"roles"`
	Phrases []string    `json:"phrases,omitempty"`
}

// AnalysisHistoryInput is the input for analysis_history.
type AnalysisHistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max entries to return (default 20, max 100)"`
}

// AnalysisHistoryOutput is the output of analysis_history.
type AnalysisHistoryOutput struct {
	Entries []history.Entry `json:"entries"`
	Total   int             `json:"total"`
}
