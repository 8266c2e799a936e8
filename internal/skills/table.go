// Package skills canonicalizes free-text skill tokens so that variant
// spellings ("ReactJS", "react.js") compare equal across listings and
// applicant profiles.
package skills

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Table resolves skill variants to their canonical label. It is built once and
// read-only afterwards, so it is safe for concurrent use.
type Table struct {
	index map[string]string
}

var defaultTable = build(canonicalAliases, nil)

// Default returns the table backed by the built-in alias set.
func Default() *Table {
	return defaultTable
}

// Load returns the built-in table extended with aliases from a YAML file of
// the form `canonical: [variant, variant, ...]`. File entries win over
// built-in ones when a variant appears in both.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading alias file %q: %w", path, err)
	}

	overlay := map[string][]string{}
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("parsing alias file %q: %w", path, err)
	}

	return build(canonicalAliases, overlay), nil
}

func build(base, overlay map[string][]string) *Table {
	index := make(map[string]string)

	add := func(aliases map[string][]string) {
		// Deterministic insertion order so duplicate variants across
		// canonicals resolve the same way on every start.
		canonicals := make([]string, 0, len(aliases))
		for canonical := range aliases {
			canonicals = append(canonicals, canonical)
		}
		sort.Strings(canonicals)

		for _, canonical := range canonicals {
			key := clean(canonical)
			if key == "" {
				continue
			}
			// A canonical label is always its own alias. This keeps
			// normalization idempotent even when the variant list
			// omits the canonical spelling.
			index[key] = key
			for _, variant := range aliases[canonical] {
				if v := clean(variant); v != "" {
					index[v] = key
				}
			}
		}
	}

	add(base)
	if overlay != nil {
		add(overlay)
	}

	return &Table{index: index}
}

// Normalize lowercases and trims the token, then maps it to its canonical
// label. Unknown tokens pass through cleaned but otherwise unchanged, so the
// operation is idempotent.
func (t *Table) Normalize(token string) string {
	cleaned := clean(token)
	if canonical, ok := t.index[cleaned]; ok {
		return canonical
	}
	return cleaned
}

// Normalize applies the built-in table. See Table.Normalize.
func Normalize(token string) string {
	return defaultTable.Normalize(token)
}

// Len reports how many variant spellings the table resolves.
func (t *Table) Len() int {
	return len(t.index)
}

func clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
