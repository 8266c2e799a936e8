package match

import (
	"context"
	"testing"

	"github.com/internhub/match-engine/internal/embedding"
)

func TestRankSortsByScoreDescending(t *testing.T) {
	listing := &Listing{RequiredSkills: []string{"Go", "Docker"}, IsRemote: true}

	candidates := []Candidate{
		{ID: "none", Applicant: &Applicant{}},
		{ID: "full", Applicant: &Applicant{Skills: []SkillEntry{{Name: "Golang"}, {Name: "Docker"}}}},
		{ID: "half", Applicant: &Applicant{Skills: []SkillEntry{{Name: "Go"}}}},
	}

	ranked, err := newTestEngine(embedding.Unavailable()).Rank(context.Background(), listing, candidates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ranked) != 3 {
		t.Fatalf("expected 3 results, got %d", len(ranked))
	}
	if ranked[0].ID != "full" || ranked[1].ID != "half" || ranked[2].ID != "none" {
		t.Fatalf("unexpected order: %s, %s, %s", ranked[0].ID, ranked[1].ID, ranked[2].ID)
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Result.FinalScore > ranked[i-1].Result.FinalScore {
			t.Fatalf("results not sorted descending at %d", i)
		}
	}
}

func TestRankTiesBreakByID(t *testing.T) {
	listing := &Listing{IsRemote: true}
	candidates := []Candidate{
		{ID: "beta", Applicant: &Applicant{}},
		{ID: "alpha", Applicant: &Applicant{}},
	}

	ranked, err := newTestEngine(embedding.Unavailable()).Rank(context.Background(), listing, candidates)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ranked[0].ID != "alpha" || ranked[1].ID != "beta" {
		t.Fatalf("ties not broken by id: %s, %s", ranked[0].ID, ranked[1].ID)
	}
}

func TestRankCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	candidates := []Candidate{{ID: "a", Applicant: &Applicant{}}}
	if _, err := newTestEngine(embedding.Unavailable()).Rank(ctx, &Listing{}, candidates); err == nil {
		t.Fatal("expected context cancellation error")
	}
}

func TestRankEmptyCandidates(t *testing.T) {
	ranked, err := newTestEngine(embedding.Unavailable()).Rank(context.Background(), &Listing{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranked) != 0 {
		t.Fatalf("expected empty ranking, got %v", ranked)
	}
}
