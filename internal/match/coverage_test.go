package match

import (
	"reflect"
	"testing"

	"github.com/internhub/match-engine/internal/skills"
)

func TestCoverageEmptyRequired(t *testing.T) {
	fraction, matched, missing := coverage(skills.Default(), nil, []string{"go"}, DefaultFuzzyThreshold)
	if fraction != 1.0 {
		t.Fatalf("fraction = %v, want 1.0", fraction)
	}
	if len(matched) != 0 || len(missing) != 0 {
		t.Fatalf("expected empty matched/missing, got %v / %v", matched, missing)
	}
}

func TestCoverageExactAliasMatch(t *testing.T) {
	// Scenario: required React + Node.js against an applicant knowing
	// ReactJS and Express. One alias-normalized hit, one miss.
	fraction, matched, missing := coverage(
		skills.Default(),
		[]string{"React", "Node.js"},
		[]string{"reactjs", "express"},
		DefaultFuzzyThreshold,
	)

	if fraction != 0.5 {
		t.Fatalf("fraction = %v, want 0.5", fraction)
	}
	if !reflect.DeepEqual(matched, []string{"react"}) {
		t.Fatalf("matched = %v, want [react]", matched)
	}
	if !reflect.DeepEqual(missing, []string{"node.js"}) {
		t.Fatalf("missing = %v, want [node.js]", missing)
	}
}

func TestCoverageExactMatchHasNoFuzzySuffix(t *testing.T) {
	_, matched, _ := coverage(
		skills.Default(),
		[]string{"Docker"},
		[]string{"docker"},
		DefaultFuzzyThreshold,
	)
	if !reflect.DeepEqual(matched, []string{"docker"}) {
		t.Fatalf("exact match should be recorded verbatim, got %v", matched)
	}
}

func TestCoverageFuzzyMatchKeepsProvenance(t *testing.T) {
	fraction, matched, missing := coverage(
		skills.Default(),
		[]string{"rest apis"},
		[]string{"rest"},
		DefaultFuzzyThreshold,
	)
	if fraction != 1.0 {
		t.Fatalf("fraction = %v, want 1.0", fraction)
	}
	if !reflect.DeepEqual(matched, []string{"rest apis~rest"}) {
		t.Fatalf("matched = %v, want [rest apis~rest]", matched)
	}
	if len(missing) != 0 {
		t.Fatalf("missing = %v, want empty", missing)
	}
}

func TestCoverageBelowThresholdGoesMissing(t *testing.T) {
	_, matched, missing := coverage(
		skills.Default(),
		[]string{"kubernetes"},
		[]string{"cooking", "painting"},
		DefaultFuzzyThreshold,
	)
	if len(matched) != 0 {
		t.Fatalf("matched = %v, want empty", matched)
	}
	if !reflect.DeepEqual(missing, []string{"kubernetes"}) {
		t.Fatalf("missing = %v, want [kubernetes]", missing)
	}
}

func TestCoverageEmptyCandidates(t *testing.T) {
	fraction, matched, missing := coverage(
		skills.Default(),
		[]string{"go", "python"},
		nil,
		DefaultFuzzyThreshold,
	)
	if fraction != 0 {
		t.Fatalf("fraction = %v, want 0", fraction)
	}
	if len(matched) != 0 {
		t.Fatalf("matched = %v, want empty", matched)
	}
	if !reflect.DeepEqual(missing, []string{"go", "python"}) {
		t.Fatalf("missing = %v, want [go python]", missing)
	}
}
