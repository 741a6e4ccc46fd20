// file: internal/scoring/relevance.go
// version: 1.0.0
// guid: b955100b-87ff-4836-b1dd-8292af09c83f

package scoring

import "github.com/jdfalk/rankcheck/internal/models"

var locationScore = map[models.Field]float64{
	models.FieldTitle:   25,
	models.FieldSnippet: 20,
	models.FieldURL:     10,
}

var kindScore = map[models.MatchKind]float64{
	models.MatchExactPhrase: 20,
	models.MatchAllWords:    15,
	models.MatchMostWords:   15,
	models.MatchFuzzy:       8,
	models.MatchNgram:       8,
	models.MatchPartial:     8,
}

// topPositions is the number of leading positions that earn a bonus.
const topPositions = 15

// Relevance is an informational 0-100 score of where and how a keyword
// matched. It never affects which result is reported.
func Relevance(field models.Field, kind models.MatchKind, position int) float64 {
	score := locationScore[field] + kindScore[kind]
	if position > 0 {
		score += float64(max(0, topPositions-position))
	}
	return clamp(score)
}
