package match

import (
	"fmt"
	"strings"

	"github.com/internhub/match-engine/internal/skills"
)

// CanonicalizeListing renders the listing as one descriptive paragraph for
// semantic comparison. The template is fixed; no localization.
func CanonicalizeListing(l *Listing) string {
	cgpa := ""
	if l.RecommendedCGPA != nil {
		cgpa = fmt.Sprintf("%g", *l.RecommendedCGPA)
	}

	return fmt.Sprintf(
		"Title: %s. Description: %s. Requirements: %s. Preferences: %s. "+
			"Degree: %s; Major: %s. Location: %s (remote=%t). Duration: %d months. Recommended CGPA: %s.",
		l.Title,
		l.Description,
		strings.Join(l.RequiredSkills, ", "),
		strings.Join(l.OptionalSkills, ", "),
		l.Degree,
		l.Major,
		l.Location,
		l.IsRemote,
		l.DurationMonths,
		cgpa,
	)
}

// CanonicalizeApplicant renders the applicant profile as one descriptive
// paragraph and returns it together with the extracted skill set, so callers
// do not re-extract. Only the first (current) education entry is rendered;
// experience entries without an end date read as running until "present".
func CanonicalizeApplicant(a *Applicant, table *skills.Table) (string, []string) {
	var sb strings.Builder

	sb.WriteString("Education: ")
	if edu := a.primaryEducation(); edu != nil {
		fmt.Fprintf(&sb, "%s at %s (%s to %s). ", edu.Title, edu.Organisation, edu.Start, edu.End)
	}

	sb.WriteString("Experience: ")
	for _, exp := range a.Experience {
		end := exp.End
		if end == "" {
			end = "present"
		}
		fmt.Fprintf(&sb, "%s at %s (%s to %s). %s ", exp.Title, exp.Company, exp.Start, end, string(exp.Description))
	}

	candSkills := table.Extract(a.skillNames(), a.githubLanguages())
	fmt.Fprintf(&sb, "Skills: %s.", strings.Join(candSkills, ", "))

	return sb.String(), candSkills
}
