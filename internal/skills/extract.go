package skills

import (
	"sort"
	"strings"
)

var entryCleaner = strings.NewReplacer("(", "", ")", "", "/", ",", "+", ",")

// Flatten splits raw skill entries into independent tokens. Parenthesis
// characters are dropped and compound entries ("React/Redux", "HTML + CSS")
// are split on `/`, `+` and `,`. Empty tokens are discarded.
func Flatten(entries []string) []string {
	tokens := make([]string, 0, len(entries))
	for _, entry := range entries {
		for _, tok := range strings.Split(entryCleaner.Replace(entry), ",") {
			if tok = strings.TrimSpace(tok); tok != "" {
				tokens = append(tokens, tok)
			}
		}
	}
	return tokens
}

// Extract flattens skill entries, appends the extra signals (for example
// GitHub language tags), normalizes everything against the table and returns
// the deduplicated set sorted lexicographically. Sorting carries no meaning;
// it keeps matched-skill explanations stable.
func (t *Table) Extract(entries, extra []string) []string {
	seen := make(map[string]struct{})
	for _, tok := range Flatten(entries) {
		seen[t.Normalize(tok)] = struct{}{}
	}
	for _, tok := range extra {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		seen[t.Normalize(tok)] = struct{}{}
	}

	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
