package keywords

import "testing"

func TestExtract(t *testing.T) {
	r := Resume{
		PersonalInfo: PersonalInfo{Name: "Ada Lovelace", Title: "Engineer"},
		Sections: []Section{
			{Enabled: true, Content: SummaryContent{Text: "  Backend engineer. "}},
			{Enabled: false, Content: SkillsContent{Items: []SkillItem{{Name: "Hidden"}}}},
			{Enabled: true, Content: ExperienceContent{Items: []ExperienceItem{{
				Title:        "SRE",
				Company:      "Acme",
				Location:     "Berlin",
				StartDate:    "2020",
				Description:  "Ran Kubernetes.",
				Achievements: []string{"Cut costs", " "},
			}}}},
			{Enabled: true, Content: nil},
			{Enabled: true, Content: ProjectsContent{Items: []ProjectItem{{
				Name:         "kwtool",
				Technologies: []string{"Go", "Redis"},
				Link:         "https://example.com",
				Highlights:   []string{"Fast"},
			}}}},
			{Enabled: true, Content: SkillsContent{Items: []SkillItem{{Name: "Go", Level: "expert"}, {Name: "SQL"}}}},
			{Enabled: true, Content: EducationContent{Items: []EducationItem{{
				Institution: "MIT",
				Degree:      "BSc",
				Field:       "CS",
				EndDate:     "2019",
			}}}},
			{Enabled: true, Content: CertificationsContent{Items: []CertificationItem{{Name: "CKA", Issuer: "CNCF", Date: "2022"}}}},
			{Enabled: true, Content: CustomContent{Text: "Speaker"}},
		},
	}

	want := "Backend engineer. SRE Acme Ran Kubernetes. Cut costs kwtool Go Redis Fast Go SQL BSc CS MIT CKA CNCF Speaker"
	if got := Extract(r); got != want {
		t.Errorf("Extract() =\n%q\nwant\n%q", got, want)
	}
}

func TestExtract_Empty(t *testing.T) {
	tests := []struct {
		name string
		r    Resume
	}{
		{"no sections", Resume{}},
		{"all disabled", Resume{Sections: []Section{{Enabled: false, Content: SummaryContent{Text: "x"}}}}},
		{"blank fields", Resume{Sections: []Section{{Enabled: true, Content: SummaryContent{Text: "   "}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extract(tt.r); got != "" {
				t.Errorf("Extract() = %q, want empty", got)
			}
		})
	}
}
