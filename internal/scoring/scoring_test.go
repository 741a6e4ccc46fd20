// file: internal/scoring/scoring_test.go
// version: 1.0.0
// guid: 411a8a4f-7bbf-479b-ba97-c26632131e6b

package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdfalk/rankcheck/internal/matcher"
	"github.com/jdfalk/rankcheck/internal/models"
)

func fm(field models.Field, kind models.MatchKind, confidence float64) FieldMatch {
	return FieldMatch{Field: field, Match: matcher.Match{Kind: kind, Confidence: confidence, Text: string(field)}}
}

func TestScore_Adjustments(t *testing.T) {
	opts := models.DefaultMatchingOptions()
	tests := []struct {
		name   string
		result models.SearchResult
		match  FieldMatch
		want   float64
	}{
		{"title bonus", models.SearchResult{Position: 1}, fm(models.FieldTitle, models.MatchAllWords, 80), 85},
		{"snippet no bonus", models.SearchResult{Position: 1}, fm(models.FieldSnippet, models.MatchAllWords, 80), 80},
		{"featured snippet", models.SearchResult{Position: 1, Kind: models.KindFeaturedSnippet}, fm(models.FieldSnippet, models.MatchAllWords, 80), 90},
		{"deep position", models.SearchResult{Position: 11}, fm(models.FieldSnippet, models.MatchAllWords, 80), 75},
		{"position ten not penalized", models.SearchResult{Position: 10}, fm(models.FieldSnippet, models.MatchAllWords, 80), 80},
		{"clamped high", models.SearchResult{Position: 1, Kind: models.KindFeaturedSnippet}, fm(models.FieldTitle, models.MatchExactPhrase, 100), 100},
		{"clamped low", models.SearchResult{Position: 20}, fm(models.FieldURL, models.MatchPartial, 2), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Score(tt.result, FieldMatches{tt.match}, opts)
			require.True(t, ok)
			assert.InDelta(t, tt.want, c.Confidence, 1e-9)
			assert.Equal(t, tt.result.Position, c.Position)
			assert.Equal(t, tt.match.Field, c.Field)
		})
	}
}

func TestScore_FieldSelection(t *testing.T) {
	opts := models.DefaultMatchingOptions()
	r := models.SearchResult{Position: 3}

	// snippet 100*1 beats title 30*3
	c, ok := Score(r, FieldMatches{
		fm(models.FieldTitle, models.MatchFuzzy, 30),
		fm(models.FieldSnippet, models.MatchExactPhrase, 100),
	}, opts)
	require.True(t, ok)
	assert.Equal(t, models.FieldSnippet, c.Field)
	assert.Equal(t, models.MatchExactPhrase, c.MatchKind)

	// tie goes to the earlier field
	opts.FieldWeights = models.FieldWeights{Title: 1, Snippet: 1, URL: 1}
	c, ok = Score(r, FieldMatches{
		fm(models.FieldURL, models.MatchAllWords, 80),
		fm(models.FieldSnippet, models.MatchAllWords, 80),
	}, opts)
	require.True(t, ok)
	assert.Equal(t, models.FieldSnippet, c.Field)
}

func TestScore_NoMatch(t *testing.T) {
	opts := models.DefaultMatchingOptions()
	_, ok := Score(models.SearchResult{Position: 1}, nil, opts)
	assert.False(t, ok)

	_, ok = Score(models.SearchResult{Position: 1}, FieldMatches{{Field: models.FieldTitle}}, opts)
	assert.False(t, ok)
}

func TestScore_Detail(t *testing.T) {
	opts := models.DefaultMatchingOptions()
	match := FieldMatch{Field: models.FieldTitle, Match: matcher.Match{
		Kind: models.MatchMostWords, Confidence: 60, Similarity: 0.75, Text: "best boutique", Matched: 3, Total: 4,
	}}
	c, ok := Score(models.SearchResult{Position: 2}, FieldMatches{match}, opts)
	require.True(t, ok)
	assert.Equal(t, "best boutique", c.Detail.MatchedText)
	assert.Equal(t, 3, c.Detail.MatchedWords)
	assert.Equal(t, 4, c.Detail.TotalWords)
	assert.InDelta(t, 0.75, c.Detail.Similarity, 1e-9)
	assert.InDelta(t, 25+15+13, c.Detail.RelevanceScore, 1e-9)
}

func TestRelevance(t *testing.T) {
	tests := []struct {
		field    models.Field
		kind     models.MatchKind
		position int
		want     float64
	}{
		{models.FieldTitle, models.MatchExactPhrase, 1, 59},
		{models.FieldSnippet, models.MatchAllWords, 5, 45},
		{models.FieldURL, models.MatchFuzzy, 15, 18},
		{models.FieldURL, models.MatchNgram, 40, 18},
		{models.FieldNone, models.MatchNone, 100, 0},
	}
	for _, tt := range tests {
		got := Relevance(tt.field, tt.kind, tt.position)
		assert.InDelta(t, tt.want, got, 1e-9, "%s/%s@%d", tt.field, tt.kind, tt.position)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 100.0)
	}
}
