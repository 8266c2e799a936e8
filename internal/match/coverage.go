package match

import (
	"fmt"

	"github.com/internhub/match-engine/internal/skills"
)

// DefaultFuzzyThreshold is the minimum TokenSetRatio score for a fuzzy
// coverage match, on a 0-100 scale.
const DefaultFuzzyThreshold = 85

// coverage reports which fraction of the required skill list the candidate
// set satisfies. Exact matches (post-normalization) are recorded as the token
// itself; fuzzy matches above the threshold as "required~candidate". A
// listing with no stated requirements is fully satisfied by construction.
func coverage(table *skills.Table, required, candidates []string, threshold int) (float64, []string, []string) {
	matched := []string{}
	missing := []string{}

	if len(required) == 0 {
		return 1.0, matched, missing
	}

	candSet := make(map[string]struct{}, len(candidates))
	candList := make([]string, 0, len(candidates))
	for _, c := range candidates {
		normalized := table.Normalize(c)
		if _, seen := candSet[normalized]; !seen {
			candSet[normalized] = struct{}{}
			candList = append(candList, normalized)
		}
	}

	hits := 0
	for _, raw := range required {
		req := table.Normalize(raw)

		if _, ok := candSet[req]; ok {
			hits++
			matched = append(matched, req)
			continue
		}

		bestScore := -1
		bestCand := ""
		for _, cand := range candList {
			if score := TokenSetRatio(req, cand); score > bestScore {
				bestScore = score
				bestCand = cand
			}
		}

		if bestScore >= threshold {
			hits++
			matched = append(matched, fmt.Sprintf("%s~%s", req, bestCand))
			continue
		}
		missing = append(missing, req)
	}

	return float64(hits) / float64(max(1, len(required))), matched, missing
}
