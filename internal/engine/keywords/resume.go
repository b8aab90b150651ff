package keywords

import (
	"encoding/json"
	"fmt"
)

// SectionType is the closed set of resume section kinds.
type SectionType string

const (
	SectionSummary        SectionType = "summary"
	SectionExperience     SectionType = "experience"
	SectionProjects       SectionType = "projects"
	SectionSkills         SectionType = "skills"
	SectionEducation      SectionType = "education"
	SectionCertifications SectionType = "certifications"
	SectionCustom         SectionType = "custom"
)

// Resume is the document produced by the editor layer. The engine only reads it.
type Resume struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Sections     []Section    `json:"sections"`
}

// PersonalInfo carries header fields. They are not part of the keyword corpus.
type PersonalInfo struct {
	Name     string `json:"name"`
	Title    string `json:"title,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Website  string `json:"website,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

// Section is one ordered block of the resume.
type Section struct {
	ID      string
	Title   string
	Enabled bool
	Content SectionContent
}

// SectionContent is implemented by exactly one struct per SectionType.
// texts is unexported so every new content type must say which of its
// fields feed the corpus.
type SectionContent interface {
	Type() SectionType
	texts() []string
}

type SummaryContent struct {
	Text string `json:"text"`
}

type ExperienceContent struct {
	Items []ExperienceItem `json:"items"`
}

type ExperienceItem struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

type ProjectsContent struct {
	Items []ProjectItem `json:"items"`
}

type ProjectItem struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Link         string   `json:"link,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`
}

type SkillsContent struct {
	Items []SkillItem `json:"items"`
}

type SkillItem struct {
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

type EducationContent struct {
	Items []EducationItem `json:"items"`
}

type EducationItem struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
}

type CertificationsContent struct {
	Items []CertificationItem `json:"items"`
}

type CertificationItem struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

type CustomContent struct {
	Text string `json:"text"`
}

func (SummaryContent) Type() SectionType        { return SectionSummary }
func (ExperienceContent) Type() SectionType     { return SectionExperience }
func (ProjectsContent) Type() SectionType       { return SectionProjects }
func (SkillsContent) Type() SectionType         { return SectionSkills }
func (EducationContent) Type() SectionType      { return SectionEducation }
func (CertificationsContent) Type() SectionType { return SectionCertifications }
func (CustomContent) Type() SectionType         { return SectionCustom }

func (c SummaryContent) texts() []string { return []string{c.Text} }

func (c ExperienceContent) texts() []string {
	var out []string
	for _, it := range c.Items {
		out = append(out, it.Title, it.Company, it.Description)
		out = append(out, it.Achievements...)
	}
	return out
}

func (c ProjectsContent) texts() []string {
	var out []string
	for _, it := range c.Items {
		out = append(out, it.Name, it.Description)
		out = append(out, it.Technologies...)
		out = append(out, it.Highlights...)
	}
	return out
}

func (c SkillsContent) texts() []string {
	out := make([]string, 0, len(c.Items))
	for _, it := range c.Items {
		out = append(out, it.Name)
	}
	return out
}

func (c EducationContent) texts() []string {
	var out []string
	for _, it := range c.Items {
		out = append(out, it.Degree, it.Field, it.Institution, it.Description)
	}
	return out
}

func (c CertificationsContent) texts() []string {
	var out []string
	for _, it := range c.Items {
		out = append(out, it.Name, it.Issuer)
	}
	return out
}

func (c CustomContent) texts() []string { return []string{c.Text} }

// sectionWire is the JSON shape of a section: content is decoded by type.
type sectionWire struct {
	ID      string          `json:"id,omitempty"`
	Type    SectionType     `json:"type"`
	Title   string          `json:"title,omitempty"`
	Enabled *bool           `json:"enabled,omitempty"`
	Content json.RawMessage `json:"content,omitempty"`
}

// UnmarshalJSON decodes the type-tagged content. A missing "enabled" means enabled.
func (s *Section) UnmarshalJSON(data []byte) error {
	var w sectionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	content, err := newContent(w.Type)
	if err != nil {
		return err
	}
	if len(w.Content) > 0 && string(w.Content) != "null" {
		if err := json.Unmarshal(w.Content, content); err != nil {
			return fmt.Errorf("section %q content: %w", w.Type, err)
		}
	}
	s.ID = w.ID
	s.Title = w.Title
	s.Enabled = w.Enabled == nil || *w.Enabled
	s.Content = derefContent(content)
	return nil
}

// MarshalJSON writes the same shape UnmarshalJSON reads.
func (s Section) MarshalJSON() ([]byte, error) {
	enabled := s.Enabled
	w := sectionWire{ID: s.ID, Title: s.Title, Enabled: &enabled}
	if s.Content != nil {
		w.Type = s.Content.Type()
		raw, err := json.Marshal(s.Content)
		if err != nil {
			return nil, err
		}
		w.Content = raw
	}
	return json.Marshal(w)
}

// ParseResume decodes a resume JSON document.
func ParseResume(data []byte) (Resume, error) {
	var r Resume
	if err := json.Unmarshal(data, &r); err != nil {
		return Resume{}, fmt.Errorf("parse resume: %w", err)
	}
	return r, nil
}

func newContent(t SectionType) (any, error) {
	switch t {
	case SectionSummary:
		return &SummaryContent{}, nil
	case SectionExperience:
		return &ExperienceContent{}, nil
	case SectionProjects:
		return &ProjectsContent{}, nil
	case SectionSkills:
		return &SkillsContent{}, nil
	case SectionEducation:
		return &EducationContent{}, nil
	case SectionCertifications:
		return &CertificationsContent{}, nil
	case SectionCustom:
		return &CustomContent{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSectionType, t)
}

func derefContent(v any) SectionContent {
	switch c := v.(type) {
	case *SummaryContent:
		return *c
	case *ExperienceContent:
		return *c
	case *ProjectsContent:
		return *c
	case *SkillsContent:
		return *c
	case *EducationContent:
		return *c
	case *CertificationsContent:
		return *c
	case *CustomContent:
		return *c
	}
	return nil
}
