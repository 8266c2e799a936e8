package skills

import (
	"reflect"
	"testing"
)

func TestFlattenSplitsCompoundEntries(t *testing.T) {
	got := Flatten([]string{"React/Redux", "HTML + CSS", "SQL (advanced)", "", " , "})
	want := []string{"React", "Redux", "HTML", "CSS", "SQL advanced"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Flatten = %v, want %v", got, want)
	}
}

func TestExtractNormalizesAndDeduplicates(t *testing.T) {
	got := Default().Extract(
		[]string{"ReactJS", "react.js", "NodeJS/Express"},
		[]string{"Go", "TypeScript", " "},
	)
	want := []string{"express", "go", "node.js", "react", "typescript"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Extract = %v, want %v", got, want)
	}
}

func TestExtractEmptyInput(t *testing.T) {
	if got := Default().Extract(nil, nil); len(got) != 0 {
		t.Fatalf("expected empty set, got %v", got)
	}
}
