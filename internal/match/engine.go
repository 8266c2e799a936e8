package match

import (
	"context"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/internhub/match-engine/internal/embedding"
	"github.com/internhub/match-engine/internal/skills"
)

// Weights blend the four positive signals into the base score. They are
// expected to sum to 1.0 so the final score stays in [0, 1].
type Weights struct {
	RequiredCoverage float64 `mapstructure:"required-coverage"`
	OptionalCoverage float64 `mapstructure:"optional-coverage"`
	SemanticSkills   float64 `mapstructure:"semantic-skills"`
	SemanticOverall  float64 `mapstructure:"semantic-overall"`
}

// DefaultWeights returns the production blend: lexical coverage dominates,
// semantic similarity refines.
func DefaultWeights() Weights {
	return Weights{
		RequiredCoverage: 0.45,
		OptionalCoverage: 0.15,
		SemanticSkills:   0.20,
		SemanticOverall:  0.20,
	}
}

// Config assembles an Engine's collaborators. Zero values degrade to safe
// defaults: the built-in alias table, a permanently unavailable embedding
// backend, default weights and threshold, a no-op logger and the wall clock.
type Config struct {
	Table          *skills.Table
	Provider       embedding.Provider
	Weights        Weights
	FuzzyThreshold int
	Logger         *zap.Logger
	Now            func() time.Time
}

// Engine scores applicants against listings. It is immutable after New and
// safe for concurrent use.
type Engine struct {
	table     *skills.Table
	estimator *embedding.Estimator
	weights   Weights
	threshold int
	logger    *zap.Logger
	now       func() time.Time
}

func New(cfg Config) *Engine {
	table := cfg.Table
	if table == nil {
		table = skills.Default()
	}
	weights := cfg.Weights
	if weights == (Weights{}) {
		weights = DefaultWeights()
	}
	threshold := cfg.FuzzyThreshold
	if threshold <= 0 {
		threshold = DefaultFuzzyThreshold
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Engine{
		table:     table,
		estimator: embedding.NewEstimator(cfg.Provider, logger),
		weights:   weights,
		threshold: threshold,
		logger:    logger,
		now:       now,
	}
}

// Score computes the blended compatibility score for one listing/applicant
// pair. It is total over its input domain: missing optional fields degrade to
// neutral values and no input shape makes it fail.
func (e *Engine) Score(ctx context.Context, listing *Listing, applicant *Applicant) ScoreResult {
	if listing == nil {
		listing = &Listing{}
	}
	if applicant == nil {
		applicant = &Applicant{}
	}

	listingText := CanonicalizeListing(listing)
	applicantText, candSkills := CanonicalizeApplicant(applicant, e.table)

	reqCov, matchedReq, missingReq := coverage(e.table, listing.RequiredSkills, candSkills, e.threshold)
	optCov, matchedOpt, _ := coverage(e.table, listing.OptionalSkills, candSkills, e.threshold)

	listingSkills := append(append([]string{}, listing.RequiredSkills...), listing.OptionalSkills...)
	semSkills := e.estimator.Similarity(ctx,
		"Skills: "+strings.Join(listingSkills, ", "),
		"Skills: "+strings.Join(candSkills, ", "),
	)
	semOverall := e.estimator.Similarity(ctx, listingText, applicantText)

	penalty, notes := Penalty(listing, applicant, e.now())

	base := e.weights.RequiredCoverage*reqCov +
		e.weights.OptionalCoverage*optCov +
		e.weights.SemanticSkills*semSkills +
		e.weights.SemanticOverall*semOverall
	final := clamp(base-penalty, 0, 1)

	e.logger.Debug("scored applicant",
		zap.Float64("final_score", final),
		zap.Float64("required_coverage", reqCov),
		zap.Float64("optional_coverage", optCov),
		zap.Float64("semantic_skills", semSkills),
		zap.Float64("semantic_overall", semOverall),
		zap.Float64("constraint_penalty", penalty),
		zap.Int("candidate_skills", len(candSkills)),
	)

	return ScoreResult{
		FinalScore: round3(final),
		Components: Components{
			RequiredCoverage:  round3(reqCov),
			OptionalCoverage:  round3(optCov),
			SemanticSkills:    round3(semSkills),
			SemanticOverall:   round3(semOverall),
			ConstraintPenalty: round3(penalty),
		},
		Explanations: Explanations{
			MatchedRequired: matchedReq,
			MatchedOptional: matchedOpt,
			MissingRequired: missingReq,
			Notes:           notes,
		},
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
