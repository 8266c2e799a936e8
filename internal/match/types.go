// Package match scores how well an applicant profile fits an internship
// listing. It blends lexical skill coverage, semantic text similarity and
// soft-constraint penalties into one bounded score with an explanation
// payload.
package match

import (
	"encoding/json"
	"fmt"
)

// Listing is the job description side of a match. Field shapes mirror the
// marketplace listing records.
type Listing struct {
	Title           string   `json:"title,omitempty"`
	Description     string   `json:"description,omitempty"`
	RequiredSkills  []string `json:"required_skills,omitempty"`
	OptionalSkills  []string `json:"optional_skills,omitempty"`
	Degree          string   `json:"degree,omitempty"`
	Major           string   `json:"major,omitempty"`
	Location        string   `json:"location,omitempty"`
	IsRemote        bool     `json:"is_remote,omitempty"`
	DurationMonths  int      `json:"duration_months,omitempty"`
	RecommendedCGPA *float64 `json:"recommended_cgpa,omitempty"`
	Deadline        string   `json:"deadline,omitempty"`
}

// Applicant is the candidate side of a match, assembled by the caller from
// parsed resume and profile data. Every field is optional; absent data
// degrades to neutral scores rather than failing.
type Applicant struct {
	Skills     []SkillEntry `json:"skills,omitempty"`
	GitHub     *GitHub      `json:"github,omitempty"`
	Education  []Education  `json:"education,omitempty"`
	Experience []Experience `json:"experience,omitempty"`
	Personal   *Personal    `json:"personal,omitempty"`
}

type SkillEntry struct {
	Name string `json:"name,omitempty"`
}

type GitHub struct {
	Languages []string `json:"languages,omitempty"`
}

type Education struct {
	Title        string `json:"title,omitempty"`
	Organisation string `json:"organisation,omitempty"`
	Start        string `json:"start,omitempty"`
	End          string `json:"end,omitempty"`
	City         string `json:"city,omitempty"`
}

type Experience struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Start       string `json:"start,omitempty"`
	End         string `json:"end,omitempty"`
	Description Text   `json:"description,omitempty"`
}

type Personal struct {
	CGPA *float64 `json:"cgpa,omitempty"`
}

// Text accepts either a plain JSON string or an object carrying a "#text"
// member, the shape XML-converted resumes arrive in. Anything else decodes to
// the empty string rather than erroring.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Text(s)
		return nil
	}

	var wrapped struct {
		Text json.RawMessage `json:"#text"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && len(wrapped.Text) > 0 {
		if err := json.Unmarshal(wrapped.Text, &s); err == nil {
			*t = Text(s)
			return nil
		}
		var v any
		if err := json.Unmarshal(wrapped.Text, &v); err == nil && v != nil {
			*t = Text(fmt.Sprint(v))
			return nil
		}
	}

	*t = ""
	return nil
}

func (t Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// skillNames returns the raw skill entry names, compound tokens included.
func (a *Applicant) skillNames() []string {
	names := make([]string, 0, len(a.Skills))
	for _, entry := range a.Skills {
		names = append(names, entry.Name)
	}
	return names
}

func (a *Applicant) githubLanguages() []string {
	if a.GitHub == nil {
		return nil
	}
	return a.GitHub.Languages
}

// primaryEducation returns the first (current) education entry, or nil.
func (a *Applicant) primaryEducation() *Education {
	if len(a.Education) == 0 {
		return nil
	}
	return &a.Education[0]
}

func (a *Applicant) cgpa() (float64, bool) {
	if a.Personal == nil || a.Personal.CGPA == nil {
		return 0, false
	}
	return *a.Personal.CGPA, true
}

// ScoreResult is the outcome of scoring one applicant against one listing.
type ScoreResult struct {
	FinalScore   float64      `json:"final_score"`
	Components   Components   `json:"components"`
	Explanations Explanations `json:"explanations"`
}

// Components is the per-signal breakdown, each value rounded to 3 decimals.
type Components struct {
	RequiredCoverage  float64 `json:"required_coverage"`
	OptionalCoverage  float64 `json:"optional_coverage"`
	SemanticSkills    float64 `json:"semantic_skills"`
	SemanticOverall   float64 `json:"semantic_overall"`
	ConstraintPenalty float64 `json:"constraint_penalty"`
}

// Explanations carries the human-readable evidence behind the score. Fuzzy
// matches are annotated as "required~candidate" to preserve provenance.
type Explanations struct {
	MatchedRequired []string `json:"matched_required"`
	MatchedOptional []string `json:"matched_optional"`
	MissingRequired []string `json:"missing_required"`
	Notes           []string `json:"notes"`
}
