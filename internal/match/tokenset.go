package match

import (
	"sort"
	"strings"
)

// TokenSetRatio scores the similarity of two short phrases on a 0-100 scale.
// It is robust to word order and partial token overlap: when the token set of
// one phrase is contained in the other's the score is 100, otherwise the
// token-overlap (Dice) score is blended with a character-level ratio over the
// sorted token strings so that near-miss spellings still score high.
func TokenSetRatio(a, b string) int {
	ta := tokenSet(a)
	tb := tokenSet(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	inter := 0
	for tok := range ta {
		if _, ok := tb[tok]; ok {
			inter++
		}
	}
	if inter > 0 && (inter == len(ta) || inter == len(tb)) {
		return 100
	}

	dice := 200 * inter / (len(ta) + len(tb))
	chars := charRatio(joinSorted(ta), joinSorted(tb))
	if chars > dice {
		return chars
	}
	return dice
}

func tokenSet(s string) map[string]struct{} {
	s = strings.ToLower(strings.ReplaceAll(s, ",", " "))
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		set[tok] = struct{}{}
	}
	return set
}

func joinSorted(set map[string]struct{}) string {
	tokens := make([]string, 0, len(set))
	for tok := range set {
		tokens = append(tokens, tok)
	}
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// charRatio maps edit distance to a 0-100 similarity.
func charRatio(a, b string) int {
	if a == b {
		return 100
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 0
	}
	return (longest - editDistance(a, b)) * 100 / longest
}

// editDistance is the Levenshtein distance with a single rolling row.
func editDistance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	prev := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		current := prev[0]
		prev[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			next := min3(prev[j]+1, prev[j-1]+1, current+cost)
			current = prev[j]
			prev[j] = next
		}
	}

	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
