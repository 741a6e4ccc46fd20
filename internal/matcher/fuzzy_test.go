// file: internal/matcher/fuzzy_test.go
// version: 2.0.0
// guid: b2c3d4e5-f6a7-8901-bcde-f23456789012

package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdfalk/rankcheck/internal/models"
)

func TestFuzzy_Transposition(t *testing.T) {
	opts := models.DefaultMatchingOptions()
	m := New(opts)

	match, ok := m.Fuzzy(NewQuery("boutqiue ahmedabad", opts), text(boutiqueTitle))
	require.True(t, ok)
	assert.Equal(t, models.MatchFuzzy, match.Kind)
	assert.Equal(t, "boutique ahmedabad", match.Text)
	// 0.4*(1-2/18) + 0.3*(1/3) + 0.3*1
	assert.InDelta(t, 75.556, match.Confidence, 0.01)
}

func TestFuzzy_HighThresholdRejects(t *testing.T) {
	opts := models.DefaultMatchingOptions()
	opts.FuzzyThreshold = 0.8
	m := New(opts)

	_, ok := m.Fuzzy(NewQuery("boutqiue ahmedabad", opts), text(boutiqueTitle))
	assert.False(t, ok)
}

func TestFuzzy_Unrelated(t *testing.T) {
	opts := models.DefaultMatchingOptions()
	m := New(opts)

	_, ok := m.Fuzzy(NewQuery("pizza delivery mumbai", opts), text(boutiqueTitle))
	assert.False(t, ok)
}

func TestFuzzy_NgramFallback(t *testing.T) {
	opts := models.DefaultMatchingOptions()
	m := New(opts)

	match, ok := m.Fuzzy(NewQuery("fashionstore", opts), text("Fashion Store"))
	require.True(t, ok)
	assert.Equal(t, models.MatchNgram, match.Kind)
	// trigram overlap 8/13 scaled by 0.8
	assert.InDelta(t, 49.23, match.Confidence, 0.01)
}

func TestFuzzy_Empty(t *testing.T) {
	opts := models.DefaultMatchingOptions()
	m := New(opts)

	_, ok := m.Fuzzy(NewQuery("", opts), text(boutiqueTitle))
	assert.False(t, ok)
	_, ok = m.Fuzzy(NewQuery("boutique", opts), text(""))
	assert.False(t, ok)
	// only stop words left
	_, ok = m.Fuzzy(NewQuery("the of", opts), text(boutiqueTitle))
	assert.False(t, ok)
}

func TestFuzzy_ExactWindowScoresFull(t *testing.T) {
	opts := models.DefaultMatchingOptions()
	m := New(opts)

	match, ok := m.Fuzzy(NewQuery("premium fashion", opts), text(boutiqueTitle))
	require.True(t, ok)
	assert.Equal(t, models.MatchFuzzy, match.Kind)
	assert.InDelta(t, 100.0, match.Confidence, 1e-9)
}

func TestWindowScore_Weights(t *testing.T) {
	opts := models.DefaultMatchingOptions()
	opts.FuzzyWeights = models.FuzzyWeights{Levenshtein: 1}
	m := New(opts)
	assert.InDelta(t, 0.75, m.WindowScore("boutique", "boutqiue"), 1e-9)

	opts.FuzzyWeights = models.FuzzyWeights{Char: 2}
	m = New(opts)
	assert.InDelta(t, 1.0, m.WindowScore("boutique", "boutqiue"), 1e-9)
}

func TestWithThreshold_SharesMemo(t *testing.T) {
	opts := models.DefaultMatchingOptions()
	m := New(opts)
	relaxed := m.WithThreshold(0.5)

	assert.Equal(t, 0.7, m.Options().FuzzyThreshold)
	assert.Equal(t, 0.5, relaxed.Options().FuzzyThreshold)
	assert.Same(t, m.memo, relaxed.memo)
}
