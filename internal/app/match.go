package app

import (
	"sort"
	"strings"
	"unicode"
)

// match is a palette candidate and its score against a query.
type match struct {
	Name  string
	Score int
}

// rankNames returns the names containing every rune of query in order,
// case-insensitively, best first. Ties keep name order.
func rankNames(query string, names []string) []match {
	q := []rune(strings.ToLower(query))
	if len(q) == 0 {
		return nil
	}

	var out []match
	for _, name := range names {
		if s := scoreName(q, name); s > 0 {
			out = append(out, match{Name: name, Score: s})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// scoreName scores a greedy left-to-right subsequence match of q in name.
// Zero means no match.
func scoreName(q []rune, name string) int {
	orig := []rune(name)
	lower := []rune(strings.ToLower(name))

	positions := make([]int, 0, len(q))
	for i := 0; i < len(lower) && len(positions) < len(q); i++ {
		if lower[i] == q[len(positions)] {
			positions = append(positions, i)
		}
	}
	if len(positions) != len(q) {
		return 0
	}

	score := 100
	for i, p := range positions {
		if i > 0 && p == positions[i-1]+1 {
			score += 20
		}
		if isWordStart(orig, p) {
			score += 15
		}
	}

	// Gaps and a late start cost; short names and prefixes win.
	score -= 2 * (positions[len(positions)-1] - positions[0] - len(positions) + 1)
	score -= positions[0]
	if len(lower) < 20 {
		score += 20 - len(lower)
	}
	if strings.HasPrefix(string(lower), string(q)) {
		score += 50
	}
	return max(score, 1)
}

// isWordStart reports whether runes[i] starts a CamelCase or separated word.
func isWordStart(runes []rune, i int) bool {
	if i == 0 {
		return true
	}
	prev, cur := runes[i-1], runes[i]
	return unicode.IsSpace(prev) || unicode.IsPunct(prev) ||
		(unicode.IsLower(prev) && unicode.IsUpper(cur))
}
