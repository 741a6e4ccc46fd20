// file: internal/textnorm/tokenize.go
// version: 1.0.0
// guid: 0d5de2da-b12b-491a-abc1-1d50cb23bccb

package textnorm

import (
	"strings"
	"unicode/utf8"

	"github.com/jdfalk/rankcheck/internal/models"
)

// stopWords are common English function words that carry no ranking signal.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "but": {}, "by": {}, "for": {}, "from": {}, "has": {},
	"have": {}, "in": {}, "is": {}, "it": {}, "its": {}, "of": {},
	"on": {}, "or": {}, "that": {}, "the": {}, "this": {}, "to": {},
	"was": {}, "were": {}, "will": {}, "with": {}, "into": {}, "about": {},
}

// IsStopWord reports whether word is in the stop-word list.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}

// Words splits normalized text on spaces without filtering.
func Words(normalized string) []string {
	return strings.Fields(normalized)
}

// Tokenize returns the significant words of normalized text: words shorter
// than MinWordLength and stop words are dropped.
func Tokenize(normalized string, opts models.MatchingOptions) []string {
	words := strings.Fields(normalized)
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if utf8.RuneCountInString(w) < opts.MinWordLength {
			continue
		}
		// Stop words are lower case; case-sensitive text is checked folded.
		if IsStopWord(strings.ToLower(w)) {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}
