package match

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/internhub/match-engine/internal/skills"
)

func TestCanonicalizeListing(t *testing.T) {
	cgpa := 3.2
	listing := &Listing{
		Title:           "Backend Intern",
		Description:     "Build APIs",
		RequiredSkills:  []string{"Go", "PostgreSQL"},
		OptionalSkills:  []string{"Docker"},
		Degree:          "BSc",
		Major:           "Computer Science",
		Location:        "Berlin",
		IsRemote:        false,
		DurationMonths:  6,
		RecommendedCGPA: &cgpa,
		Deadline:        "2030-01-01",
	}

	text := CanonicalizeListing(listing)

	for _, fragment := range []string{
		"Title: Backend Intern.",
		"Requirements: Go, PostgreSQL.",
		"Preferences: Docker.",
		"Degree: BSc; Major: Computer Science.",
		"Location: Berlin (remote=false).",
		"Duration: 6 months.",
		"Recommended CGPA: 3.2.",
	} {
		if !strings.Contains(text, fragment) {
			t.Fatalf("listing text missing %q:\n%s", fragment, text)
		}
	}
}

func TestCanonicalizeListingEmptyFields(t *testing.T) {
	text := CanonicalizeListing(&Listing{})
	if !strings.Contains(text, "Recommended CGPA: .") {
		t.Fatalf("expected empty CGPA slot, got:\n%s", text)
	}
}

func TestCanonicalizeApplicant(t *testing.T) {
	applicant := &Applicant{
		Skills: []SkillEntry{{Name: "ReactJS/Redux"}},
		GitHub: &GitHub{Languages: []string{"Go"}},
		Education: []Education{
			{Title: "BSc Computer Science", Organisation: "TU Berlin", Start: "2022", End: "2026", City: "Berlin"},
			{Title: "High School", Organisation: "Gymnasium"},
		},
		Experience: []Experience{
			{Title: "Intern", Company: "Acme", Start: "2024-06", End: "2024-09", Description: "Built dashboards"},
			{Title: "Developer", Company: "Beta", Start: "2025-01"},
		},
	}

	text, candSkills := CanonicalizeApplicant(applicant, skills.Default())

	if !strings.Contains(text, "BSc Computer Science at TU Berlin (2022 to 2026).") {
		t.Fatalf("missing primary education:\n%s", text)
	}
	if strings.Contains(text, "High School") {
		t.Fatalf("secondary education should not be rendered:\n%s", text)
	}
	if !strings.Contains(text, "Intern at Acme (2024-06 to 2024-09). Built dashboards") {
		t.Fatalf("missing experience entry:\n%s", text)
	}
	if !strings.Contains(text, "Developer at Beta (2025-01 to present).") {
		t.Fatalf("open-ended experience should read as present:\n%s", text)
	}
	if !strings.Contains(text, "Skills: go, react, redux.") {
		t.Fatalf("missing normalized skills:\n%s", text)
	}

	want := []string{"go", "react", "redux"}
	if len(candSkills) != len(want) {
		t.Fatalf("candSkills = %v, want %v", candSkills, want)
	}
	for i := range want {
		if candSkills[i] != want[i] {
			t.Fatalf("candSkills = %v, want %v", candSkills, want)
		}
	}
}

func TestCanonicalizeApplicantEmpty(t *testing.T) {
	text, candSkills := CanonicalizeApplicant(&Applicant{}, skills.Default())
	if len(candSkills) != 0 {
		t.Fatalf("expected no skills, got %v", candSkills)
	}
	if !strings.Contains(text, "Education: Experience: Skills: .") {
		t.Fatalf("unexpected empty rendering:\n%s", text)
	}
}

func TestTextUnmarshal(t *testing.T) {
	var exp Experience
	if err := json.Unmarshal([]byte(`{"description": "plain text"}`), &exp); err != nil {
		t.Fatalf("unmarshal plain string: %v", err)
	}
	if exp.Description != "plain text" {
		t.Fatalf("Description = %q, want plain text", exp.Description)
	}

	if err := json.Unmarshal([]byte(`{"description": {"#text": "wrapped text"}}`), &exp); err != nil {
		t.Fatalf("unmarshal #text object: %v", err)
	}
	if exp.Description != "wrapped text" {
		t.Fatalf("Description = %q, want wrapped text", exp.Description)
	}

	if err := json.Unmarshal([]byte(`{"description": {"other": 1}}`), &exp); err != nil {
		t.Fatalf("unmarshal unknown object: %v", err)
	}
	if exp.Description != "" {
		t.Fatalf("Description = %q, want empty for unknown shape", exp.Description)
	}

	if err := json.Unmarshal([]byte(`{"description": {"#text": 42}}`), &exp); err != nil {
		t.Fatalf("unmarshal numeric #text: %v", err)
	}
	if exp.Description != "42" {
		t.Fatalf("Description = %q, want 42", exp.Description)
	}
}
