// file: internal/matcher/exact.go
// version: 1.0.0
// guid: ca3215a6-543d-4bde-8ed3-1b1a8846a1f9

package matcher

import (
	"strings"

	"github.com/jdfalk/rankcheck/internal/models"
)

const (
	// wordSetFloor is the smallest fraction of keyword words accepted in
	// word-set mode.
	wordSetFloor = 0.5

	exactPhraseConfidence = 100
	allWordsConfidence    = 80
	mostWordsConfidence   = 60
	mostWordsRatio        = 0.7
)

// ExactPhrase reports whether the normalized keyword occurs in the field.
func ExactPhrase(q Query, t Text) bool {
	if q.Empty() || t.Empty() {
		return false
	}
	return strings.Contains(t.Normalized, q.Phrase)
}

// Exact matches the keyword phrase as a substring, or failing that the
// keyword words as whole words of the field.
func (m *Matcher) Exact(q Query, t Text) (Match, bool) {
	if q.Empty() || t.Empty() {
		return Match{}, false
	}

	total := len(q.Words)
	if ExactPhrase(q, t) {
		return Match{
			Kind:       models.MatchExactPhrase,
			Confidence: exactPhraseConfidence,
			Similarity: 1.0,
			Text:       q.Phrase,
			Matched:    total,
			Total:      total,
		}, true
	}
	if m.opts.ExactPhraseOnly || total == 0 {
		return Match{}, false
	}

	var found []WordMatch
	for _, w := range q.Words {
		if t.hasWord(w) {
			found = append(found, WordMatch{KeywordWord: w, MatchedWord: w, Similarity: 1.0, Kind: WordExact})
		}
	}
	ratio := float64(len(found)) / float64(total)
	if ratio < wordSetFloor {
		return Match{}, false
	}

	match := Match{
		Kind:       models.MatchMostWords,
		Similarity: ratio,
		Text:       joinMatched(found),
		Matched:    len(found),
		Total:      total,
		Words:      found,
	}
	switch {
	case len(found) == total:
		match.Kind = models.MatchAllWords
		match.Confidence = allWordsConfidence
	case ratio >= mostWordsRatio:
		match.Confidence = mostWordsConfidence
	default:
		match.Confidence = ratio * 50
	}
	return match, true
}

func joinMatched(words []WordMatch) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		parts = append(parts, w.MatchedWord)
	}
	return strings.Join(parts, " ")
}
