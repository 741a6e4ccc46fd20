// file: internal/similarity/similarity.go
// version: 1.0.0
// guid: 98871851-b23d-4b1c-86a8-2ec77e68934e

// Package similarity holds the string similarity measures used by the
// matchers. Every function returns a value in [0,1] where 1 means identical.
package similarity

import (
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// DefaultNGramSize is the n used when NGram is called with n <= 0.
const DefaultNGramSize = 3

// Levenshtein returns 1 - distance/max(len(a), len(b)) over runes.
func Levenshtein(a, b string) float64 {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la == 0 && lb == 0 {
		return 1.0
	}
	if la == 0 || lb == 0 {
		return 0.0
	}
	if a == b {
		return 1.0
	}
	dist := fuzzy.LevenshteinDistance(a, b)
	return clamp01(1.0 - float64(dist)/float64(max(la, lb)))
}

// JaccardChars is the Jaccard index over the sets of characters.
func JaccardChars(a, b string) float64 {
	return jaccard(runeSet(a), runeSet(b))
}

// JaccardTokens is the Jaccard index over the sets of whitespace tokens.
func JaccardTokens(a, b string) float64 {
	return jaccard(tokenSet(a), tokenSet(b))
}

// NGram is the Jaccard index over character n-grams. It returns 0 when
// either input is shorter than n.
func NGram(a, b string, n int) float64 {
	if n <= 0 {
		n = DefaultNGramSize
	}
	if utf8.RuneCountInString(a) < n || utf8.RuneCountInString(b) < n {
		return 0
	}
	return jaccard(ngramSet(a, n), ngramSet(b, n))
}

func jaccard[T comparable](a, b map[T]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}
	intersection := 0
	for k := range small {
		if _, ok := large[k]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

func runeSet(s string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}

func tokenSet(s string) map[string]struct{} {
	fields := strings.Fields(s)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

func ngramSet(s string, n int) map[string]struct{} {
	r := []rune(s)
	set := make(map[string]struct{}, len(r))
	for i := 0; i+n <= len(r); i++ {
		set[string(r[i:i+n])] = struct{}{}
	}
	return set
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
