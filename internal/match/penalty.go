package match

import (
	"strings"
	"time"
)

// Penalty weights for each soft constraint. None of them disqualify a match;
// the sum is capped at maxPenalty.
const (
	degreePenalty   = 0.03
	majorPenalty    = 0.05
	cgpaBasePenalty = 0.04
	cgpaGapFactor   = 0.04
	cgpaMaxPenalty  = 0.08
	locationPenalty = 0.04
	deadlinePenalty = 0.05
	maxPenalty      = 0.2
)

const deadlineLayout = "2006-01-02"

// Penalty evaluates the soft constraints (degree, major, CGPA, location,
// deadline) independently and returns the additive penalty with one note per
// triggered rule. A deadline that does not parse as YYYY-MM-DD is skipped
// silently.
func Penalty(l *Listing, a *Applicant, now time.Time) (float64, []string) {
	notes := []string{}
	penalty := 0.0

	eduTitle := ""
	eduCity := ""
	if edu := a.primaryEducation(); edu != nil {
		eduTitle = strings.ToLower(edu.Title)
		eduCity = strings.ToLower(edu.City)
	}

	if degree := strings.ToLower(l.Degree); degree != "" && !strings.Contains(eduTitle, degree) {
		penalty += degreePenalty
		notes = append(notes, "degree differs")
	}
	if major := strings.ToLower(l.Major); major != "" && !strings.Contains(eduTitle, major) {
		penalty += majorPenalty
		notes = append(notes, "major differs")
	}

	if l.RecommendedCGPA != nil {
		if got, ok := a.cgpa(); ok && got < *l.RecommendedCGPA {
			gap := *l.RecommendedCGPA - got
			penalty += min(cgpaMaxPenalty, cgpaBasePenalty+cgpaGapFactor*gap)
			notes = append(notes, "cgpa below recommendation")
		}
	}

	if !l.IsRemote && l.Location != "" {
		if !strings.Contains(eduCity, strings.ToLower(l.Location)) {
			penalty += locationPenalty
			notes = append(notes, "location likely mismatch (non-remote)")
		}
	}

	if deadline, err := time.Parse(deadlineLayout, l.Deadline); err == nil {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if deadline.Before(today) {
			penalty += deadlinePenalty
			notes = append(notes, "deadline passed")
		}
	}

	return min(penalty, maxPenalty), notes
}
