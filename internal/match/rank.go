package match

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// rankWorkers caps concurrent scoring goroutines. Scoring is CPU-light but
// may call a remote embedding backend per applicant.
const rankWorkers = 4

// Candidate pairs an applicant with a caller-chosen identifier used in the
// ranked output.
type Candidate struct {
	ID        string
	Applicant *Applicant
}

// RankedApplicant is one row of a ranking: the candidate id and its score.
type RankedApplicant struct {
	ID     string      `json:"id"`
	Result ScoreResult `json:"result"`
}

// Rank scores every candidate against the listing concurrently and returns
// the results sorted by final score descending (ties broken by id for
// deterministic output). The only error source is context cancellation;
// scoring itself never fails.
func (e *Engine) Rank(ctx context.Context, listing *Listing, candidates []Candidate) ([]RankedApplicant, error) {
	ranked := make([]RankedApplicant, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(rankWorkers)

	for i, candidate := range candidates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ranked[i] = RankedApplicant{
				ID:     candidate.ID,
				Result: e.Score(ctx, listing, candidate.Applicant),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Result.FinalScore != ranked[j].Result.FinalScore {
			return ranked[i].Result.FinalScore > ranked[j].Result.FinalScore
		}
		return ranked[i].ID < ranked[j].ID
	})

	return ranked, nil
}
