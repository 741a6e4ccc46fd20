// file: internal/matcher/partial.go
// version: 1.0.0
// guid: b3976caf-44f3-4ba5-907d-2bcaec76b2c3

package matcher

import (
	"strings"
	"unicode/utf8"

	"github.com/jdfalk/rankcheck/internal/models"
	"github.com/jdfalk/rankcheck/internal/textnorm"
)

const (
	containmentSimilarity = 0.9
	stemSimilarity        = 0.8
	fuzzyWordFloor        = 0.7
	fuzzyWordScale        = 0.7
	wordAcceptFloor       = 0.6

	maxProximityBonus = 0.3
	partialScale      = 0.6
	partialCap        = 0.9
	partialFloor      = 0.25
	// containment in the other direction needs a field word at least this long
	minContainedLen = 3
)

// Partial matches keyword words one by one against the best field word and
// rewards matches that sit close together.
func (m *Matcher) Partial(q Query, t Text) (Match, bool) {
	if len(q.Words) == 0 || len(t.Tokens) == 0 {
		return Match{}, false
	}

	var matched []WordMatch
	simSum := 0.0
	for _, kw := range q.Words {
		wm, ok := m.bestWord(kw, t.Tokens)
		if !ok {
			continue
		}
		matched = append(matched, wm)
		simSum += wm.Similarity
	}
	if len(matched) == 0 {
		return Match{}, false
	}

	ratio := float64(len(matched)) / float64(len(q.Words))
	avg := simSum / float64(len(matched))
	bonus := proximityBonus(matched, len(t.Tokens))

	w := m.opts.PartialWeights
	score := min(partialCap, (ratio*w.Ratio+avg*w.Similarity+bonus*w.Proximity)*partialScale)
	if score <= partialFloor {
		return Match{}, false
	}

	return Match{
		Kind:       models.MatchPartial,
		Confidence: clampConfidence(score * 100),
		Similarity: avg,
		Text:       joinMatched(matched),
		Matched:    len(matched),
		Total:      len(q.Words),
		Words:      matched,
	}, true
}

// bestWord finds the field word closest to kw. Each field word is rated by the
// first rule that applies: equality or containment, shared stem, then edit
// similarity.
func (m *Matcher) bestWord(kw string, tokens []string) (WordMatch, bool) {
	best := WordMatch{KeywordWord: kw, index: -1}
	kwStem := textnorm.Stem(kw)
	for i, fw := range tokens {
		sim, kind := 0.0, WordFuzzy
		switch {
		case fw == kw:
			sim, kind = 1.0, WordExact
		case strings.Contains(fw, kw) ||
			(utf8.RuneCountInString(fw) >= minContainedLen && strings.Contains(kw, fw)):
			sim, kind = containmentSimilarity, WordExact
		case textnorm.Stem(fw) == kwStem:
			sim, kind = stemSimilarity, WordStem
		default:
			if lev := m.memo.Levenshtein(kw, fw); lev > fuzzyWordFloor {
				sim, kind = lev*fuzzyWordScale, WordFuzzy
			}
		}
		if sim > best.Similarity {
			best = WordMatch{KeywordWord: kw, MatchedWord: fw, Similarity: sim, Kind: kind, index: i}
		}
	}
	if best.Similarity <= wordAcceptFloor {
		return WordMatch{}, false
	}
	return best, true
}

// proximityBonus is maxProximityBonus when matched words are contiguous and
// shrinks as they spread across the field.
func proximityBonus(matched []WordMatch, fieldLen int) float64 {
	if len(matched) < 2 || fieldLen == 0 {
		return 0
	}
	lo, hi := matched[0].index, matched[0].index
	for _, wm := range matched[1:] {
		lo = min(lo, wm.index)
		hi = max(hi, wm.index)
	}
	span := hi - lo + 1
	gap := max(0, span-len(matched))
	bonus := maxProximityBonus * (1 - float64(gap)/float64(fieldLen))
	if bonus < 0 {
		return 0
	}
	return min(bonus, maxProximityBonus)
}
