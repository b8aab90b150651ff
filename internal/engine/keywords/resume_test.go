package keywords

import (
	"encoding/json"
	"errors"
	"testing"
)

const sampleResumeJSON = `{
  "personalInfo": {"name": "Grace Hopper", "email": "grace@example.com"},
  "sections": [
    {"id": "s1", "type": "summary", "title": "Summary", "content": {"text": "Compiler pioneer."}},
    {"id": "s2", "type": "skills", "enabled": false, "content": {"items": [{"name": "COBOL"}]}},
    {"id": "s3", "type": "experience", "enabled": true, "content": {"items": [
      {"title": "Rear Admiral", "company": "US Navy", "achievements": ["Found the first bug"]}
    ]}},
    {"id": "s4", "type": "custom", "content": null}
  ]
}`

func TestParseResume(t *testing.T) {
	r, err := ParseResume([]byte(sampleResumeJSON))
	if err != nil {
		t.Fatalf("ParseResume: %v", err)
	}
	if r.PersonalInfo.Name != "Grace Hopper" {
		t.Errorf("Name = %q", r.PersonalInfo.Name)
	}
	if len(r.Sections) != 4 {
		t.Fatalf("len(Sections) = %d, want 4", len(r.Sections))
	}

	if !r.Sections[0].Enabled {
		t.Error("section without enabled flag should default to enabled")
	}
	if r.Sections[1].Enabled {
		t.Error("explicit enabled=false ignored")
	}
	if _, ok := r.Sections[2].Content.(ExperienceContent); !ok {
		t.Errorf("section 3 content = %T, want ExperienceContent", r.Sections[2].Content)
	}
	if c, ok := r.Sections[3].Content.(CustomContent); !ok || c.Text != "" {
		t.Errorf("null content = %#v, want empty CustomContent", r.Sections[3].Content)
	}

	want := "Compiler pioneer. Rear Admiral US Navy Found the first bug"
	if got := Extract(r); got != want {
		t.Errorf("Extract() = %q, want %q", got, want)
	}
}

func TestParseResume_UnknownSectionType(t *testing.T) {
	_, err := ParseResume([]byte(`{"sections": [{"type": "hobbies", "content": {}}]}`))
	if !errors.Is(err, ErrUnknownSectionType) {
		t.Fatalf("err = %v, want ErrUnknownSectionType", err)
	}
}

func TestParseResume_Malformed(t *testing.T) {
	tests := []string{
		`{"sections": [`,
		`{"sections": [{"type": "skills", "content": {"items": "nope"}}]}`,
	}
	for _, in := range tests {
		if _, err := ParseResume([]byte(in)); err == nil {
			t.Errorf("ParseResume(%s) = nil error", in)
		}
	}
}

func TestSection_MarshalJSON(t *testing.T) {
	s := Section{ID: "x", Title: "Projects", Enabled: false, Content: ProjectsContent{
		Items: []ProjectItem{{Name: "kw", Technologies: []string{"Go"}}},
	}}
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var back Section
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Enabled || back.ID != "x" || back.Content.Type() != SectionProjects {
		t.Errorf("decoded = %+v", back)
	}
	if p := back.Content.(ProjectsContent); p.Items[0].Technologies[0] != "Go" {
		t.Errorf("technologies lost: %+v", p)
	}
}
