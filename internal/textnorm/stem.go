// file: internal/textnorm/stem.go
// version: 1.0.0
// guid: 5fcb4c1b-fab3-4ac0-9ec6-f33e429d9cde

package textnorm

import (
	"strings"
	"unicode/utf8"
)

// suffixes are tried longest first; equal lengths keep list order.
var suffixes = sortedSuffixes([]string{"ing", "ed", "er", "est", "ly", "ies", "ied", "ier", "iest", "es", "s"})

// Stem strips the longest matching suffix when more than two characters of
// stem remain. Otherwise the word is returned unchanged.
func Stem(word string) string {
	for _, suffix := range suffixes {
		if !strings.HasSuffix(word, suffix) {
			continue
		}
		stem := word[:len(word)-len(suffix)]
		if utf8.RuneCountInString(stem) > 2 {
			return stem
		}
		return word
	}
	return word
}

func sortedSuffixes(list []string) []string {
	out := make([]string, len(list))
	copy(out, list)
	// insertion sort keeps it stable
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && len(out[j]) > len(out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
