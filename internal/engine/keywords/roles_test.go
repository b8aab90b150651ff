package keywords

import (
	"errors"
	"testing"
)

func TestMatchRoles_Frontend(t *testing.T) {
	corpus := "Built interfaces with React, Redux and TypeScript, styled with Sass, tested with Jest."
	got, err := MatchRoles(corpus, DefaultDictionary(), "frontend")
	if err != nil {
		t.Fatalf("MatchRoles: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	want := RoleScore{Role: "frontend", Score: 25, Matched: 5, Total: 20}
	if got[0] != want {
		t.Errorf("got %+v, want %+v", got[0], want)
	}
}

func TestMatchRoles_UnknownRole(t *testing.T) {
	_, err := MatchRoles("anything", DefaultDictionary(), "frontend", "quantum-computing")
	if !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("err = %v, want ErrInvalidRole", err)
	}
	var ire *InvalidRoleError
	if !errors.As(err, &ire) || ire.Role != "quantum-computing" {
		t.Errorf("InvalidRoleError.Role = %+v", ire)
	}
}

func TestMatchRoles_AllRoles(t *testing.T) {
	d := DefaultDictionary()
	corpus := "Python engineer running Docker and Kubernetes on AWS with Terraform."
	got, err := MatchRoles(corpus, d)
	if err != nil {
		t.Fatalf("MatchRoles: %v", err)
	}
	if len(got) != len(d.RoleNames()) {
		t.Fatalf("len = %d, want %d", len(got), len(d.RoleNames()))
	}
	if got[0].Role != "devops" {
		t.Errorf("best role = %s, want devops", got[0].Role)
	}
	for i, rs := range got {
		if rs.Score < 0 || rs.Score > 100 {
			t.Errorf("%s score %d out of range", rs.Role, rs.Score)
		}
		if rs.Matched > rs.Total {
			t.Errorf("%s matched %d > total %d", rs.Role, rs.Matched, rs.Total)
		}
		if i > 0 {
			prev := got[i-1]
			if prev.Score < rs.Score || (prev.Score == rs.Score && prev.Role > rs.Role) {
				t.Errorf("order broken at %d: %+v before %+v", i, prev, rs)
			}
		}
	}
}

func TestMatchRoles_EmptyCorpusAndDuplicates(t *testing.T) {
	got, err := MatchRoles("", DefaultDictionary(), "mobile", "data", "mobile")
	if err != nil {
		t.Fatalf("MatchRoles: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (duplicates collapsed)", len(got))
	}
	if got[0].Role != "data" || got[1].Role != "mobile" {
		t.Errorf("order = %s, %s; want data, mobile", got[0].Role, got[1].Role)
	}
	for _, rs := range got {
		if rs.Score != 0 || rs.Matched != 0 {
			t.Errorf("%s = %+v, want zero score", rs.Role, rs)
		}
	}
}

func TestMatchRoles_PhraseContainment(t *testing.T) {
	got, err := MatchRoles("Wired GitHub Actions into our CI/CD", DefaultDictionary(), "devops")
	if err != nil {
		t.Fatalf("MatchRoles: %v", err)
	}
	if got[0].Matched != 2 {
		t.Errorf("Matched = %d, want 2 (github actions, ci/cd)", got[0].Matched)
	}
}
