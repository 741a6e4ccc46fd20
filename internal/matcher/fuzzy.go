// file: internal/matcher/fuzzy.go
// version: 2.0.0
// guid: a1b2c3d4-e5f6-7890-abcd-ef1234567890

package matcher

import (
	"strings"

	"github.com/jdfalk/rankcheck/internal/models"
	"github.com/jdfalk/rankcheck/internal/similarity"
)

const (
	maxWindowWords = 6
	// strongWindow is the window score above which the n-gram fallback is
	// not attempted.
	strongWindow = 0.8
	// n-gram matches ignore word order, so they are relaxed and capped.
	ngramThresholdFactor = 0.7
	ngramScoreFactor     = 0.8
)

// Fuzzy compares the keyword phrase against every window of consecutive
// field words and falls back to whole-field trigram overlap.
func (m *Matcher) Fuzzy(q Query, t Text) (Match, bool) {
	if len(q.Words) == 0 || len(t.Tokens) == 0 {
		return Match{}, false
	}

	phrase := q.SignificantPhrase()
	threshold := m.opts.FuzzyThreshold

	bestScore, bestText := m.bestWindow(phrase, len(q.Words), t.Tokens)

	var best Match
	found := false
	if bestScore >= threshold {
		best = Match{
			Kind:       models.MatchFuzzy,
			Confidence: bestScore * 100,
			Similarity: bestScore,
			Text:       bestText,
			Total:      len(q.Words),
		}
		found = true
	}

	if !found || bestScore < strongWindow {
		field := strings.Join(t.Tokens, " ")
		ng := similarity.NGram(phrase, field, similarity.DefaultNGramSize)
		if ng >= threshold*ngramThresholdFactor {
			score := ng * ngramScoreFactor
			if !found || score > best.Similarity {
				best = Match{
					Kind:       models.MatchNgram,
					Confidence: score * 100,
					Similarity: score,
					Text:       field,
					Total:      len(q.Words),
				}
				found = true
			}
		}
	}

	if found {
		best.Confidence = clampConfidence(best.Confidence)
	}
	return best, found
}

// WindowScore blends the similarity measures of a candidate window.
func (m *Matcher) WindowScore(window, phrase string) float64 {
	w := m.opts.FuzzyWeights
	sum := w.Levenshtein + w.Token + w.Char
	if sum == 0 {
		return 0
	}
	score := w.Levenshtein*m.memo.Levenshtein(window, phrase) +
		w.Token*similarity.JaccardTokens(window, phrase) +
		w.Char*similarity.JaccardChars(window, phrase)
	// weights are not required to sum to one
	return score / max(sum, 1)
}

func (m *Matcher) bestWindow(phrase string, keywordWords int, tokens []string) (float64, string) {
	maxSize := min(keywordWords+2, maxWindowWords)
	bestScore := 0.0
	bestText := ""
	for size := 1; size <= maxSize && size <= len(tokens); size++ {
		for start := 0; start+size <= len(tokens); start++ {
			window := strings.Join(tokens[start:start+size], " ")
			score := m.WindowScore(window, phrase)
			if score > bestScore {
				bestScore = score
				bestText = window
			}
		}
	}
	return bestScore, bestText
}

func clampConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
