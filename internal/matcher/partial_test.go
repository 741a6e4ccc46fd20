// file: internal/matcher/partial_test.go
// version: 1.0.0
// guid: bd174c46-d80e-4713-b5f4-870243f308c8

package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdfalk/rankcheck/internal/models"
)

func query(words ...string) Query {
	q := Query{Words: words}
	for i, w := range words {
		if i > 0 {
			q.Phrase += " "
		}
		q.Phrase += w
	}
	return q
}

func TestPartial_Containment(t *testing.T) {
	m := New(models.DefaultMatchingOptions())

	match, ok := m.Partial(query("boutiques", "ahmedabad"), text(boutiqueTitle))
	require.True(t, ok)
	assert.Equal(t, models.MatchPartial, match.Kind)
	assert.Equal(t, 2, match.Matched)
	require.Len(t, match.Words, 2)
	assert.Equal(t, "boutique", match.Words[0].MatchedWord)
	assert.Equal(t, WordExact, match.Words[0].Kind)
	assert.InDelta(t, 0.9, match.Words[0].Similarity, 1e-9)
	// (1*0.6 + 0.95*0.3 + 0.3*0.1) * 0.6
	assert.InDelta(t, 54.9, match.Confidence, 1e-9)
}

func TestPartial_Stem(t *testing.T) {
	m := New(models.DefaultMatchingOptions())

	match, ok := m.Partial(query("running"), text("Runner Shoes"))
	require.True(t, ok)
	require.Len(t, match.Words, 1)
	assert.Equal(t, WordStem, match.Words[0].Kind)
	assert.InDelta(t, 50.4, match.Confidence, 1e-9)
}

func TestPartial_FuzzyWord(t *testing.T) {
	m := New(models.DefaultMatchingOptions())

	match, ok := m.Partial(query("ahmedabd"), text(boutiqueTitle))
	require.True(t, ok)
	require.Len(t, match.Words, 1)
	assert.Equal(t, WordFuzzy, match.Words[0].Kind)
	assert.InDelta(t, (1-1.0/9.0)*0.7, match.Words[0].Similarity, 1e-9)
}

func TestPartial_Proximity(t *testing.T) {
	m := New(models.DefaultMatchingOptions())

	near, ok := m.Partial(query("best", "boutique"), text(boutiqueTitle))
	require.True(t, ok)
	far, ok := m.Partial(query("best", "store"), text(boutiqueTitle))
	require.True(t, ok)

	assert.InDelta(t, 55.8, near.Confidence, 1e-9)
	assert.InDelta(t, 54.6, far.Confidence, 1e-9)
	assert.Greater(t, near.Confidence, far.Confidence)
}

func TestPartial_NoMatch(t *testing.T) {
	m := New(models.DefaultMatchingOptions())

	_, ok := m.Partial(query("pizza", "delivery"), text(boutiqueTitle))
	assert.False(t, ok)

	// one word out of six does not clear the floor
	_, ok = m.Partial(query("pizza", "delivery", "mumbai", "chennai", "kolkata", "boutique"), text(boutiqueTitle))
	assert.False(t, ok)

	_, ok = m.Partial(query(), text(boutiqueTitle))
	assert.False(t, ok)
	_, ok = m.Partial(query("boutique"), text(""))
	assert.False(t, ok)
}

func TestPartial_ConfidenceCap(t *testing.T) {
	m := New(models.DefaultMatchingOptions())

	match, ok := m.Partial(query("best", "boutique", "ahmedabad"), text(boutiqueTitle))
	require.True(t, ok)
	assert.LessOrEqual(t, match.Confidence, 90.0)
}

func TestProximityBonus(t *testing.T) {
	words := func(idx ...int) []WordMatch {
		out := make([]WordMatch, 0, len(idx))
		for _, i := range idx {
			out = append(out, WordMatch{index: i})
		}
		return out
	}
	assert.Equal(t, 0.0, proximityBonus(words(3), 6))
	assert.InDelta(t, 0.3, proximityBonus(words(1, 2), 6), 1e-9)
	assert.InDelta(t, 0.1, proximityBonus(words(0, 5), 6), 1e-9)
	assert.Equal(t, 0.0, proximityBonus(nil, 0))
}
