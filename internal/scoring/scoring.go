// file: internal/scoring/scoring.go
// version: 1.0.0
// guid: b8b142c0-ebc5-4d87-8778-e8fa00cdda2a

// Package scoring turns strategy matches on a result's fields into a single
// scored candidate.
package scoring

import (
	"github.com/jdfalk/rankcheck/internal/matcher"
	"github.com/jdfalk/rankcheck/internal/models"
)

// Adjustments applied after field selection.
const (
	TitleBonus           = 5.0
	FeaturedSnippetBonus = 10.0
	DeepPositionPenalty  = 5.0
	// DeepPosition is the last position that is not penalized.
	DeepPosition = 10
)

// FieldMatch is a strategy match on one field of a result.
type FieldMatch struct {
	Field models.Field
	Match matcher.Match
}

// FieldMatches holds the matches found on a result, at most one per field.
type FieldMatches []FieldMatch

var fieldOrder = [...]models.Field{models.FieldTitle, models.FieldSnippet, models.FieldURL}

// Score picks the field whose weighted confidence is highest, applies the
// position and kind adjustments and returns the candidate. It returns false
// when no field matched.
func Score(result models.SearchResult, matches FieldMatches, opts models.MatchingOptions) (models.MatchCandidate, bool) {
	best, ok := pick(matches, opts.FieldWeights)
	if !ok {
		return models.MatchCandidate{}, false
	}

	confidence := best.Match.Confidence
	if best.Field == models.FieldTitle {
		confidence += TitleBonus
	}
	if result.Kind == models.KindFeaturedSnippet {
		confidence += FeaturedSnippetBonus
	}
	if result.Position > DeepPosition {
		confidence -= DeepPositionPenalty
	}
	confidence = clamp(confidence)

	return models.MatchCandidate{
		Position:   result.Position,
		Field:      best.Field,
		MatchKind:  best.Match.Kind,
		Confidence: confidence,
		Detail: models.MatchDetail{
			MatchedText:    best.Match.Text,
			Similarity:     best.Match.Similarity,
			MatchedWords:   best.Match.Matched,
			TotalWords:     best.Match.Total,
			RelevanceScore: Relevance(best.Field, best.Match.Kind, result.Position),
		},
	}, true
}

// pick walks fields in title, snippet, url order so earlier fields win ties.
func pick(matches FieldMatches, weights models.FieldWeights) (FieldMatch, bool) {
	var best FieldMatch
	bestWeighted := -1.0
	found := false
	for _, field := range fieldOrder {
		for _, fm := range matches {
			if fm.Field != field || fm.Match.Kind == models.MatchNone {
				continue
			}
			weighted := fm.Match.Confidence * weights.For(field)
			if weighted > bestWeighted {
				best, bestWeighted, found = fm, weighted, true
			}
		}
	}
	return best, found
}

func clamp(v float64) float64 {
	return min(100, max(0, v))
}
