// file: internal/ranking/phases.go
// version: 1.1.0
// guid: 6f8d537b-f541-45f7-8b69-cff5e7474685

package ranking

import (
	"github.com/jdfalk/rankcheck/internal/matcher"
	"github.com/jdfalk/rankcheck/internal/models"
	"github.com/jdfalk/rankcheck/internal/scoring"
)

// Phase names reported in RankingResult.Phase.
const (
	PhaseExactPhrase  = "exact_phrase"
	PhaseExactTitle   = "exact_title"
	PhaseExactSnippet = "exact_snippet"
	PhaseExactURL     = "exact_url"
	PhaseFuzzyTitle   = "fuzzy_title"
	PhaseFuzzySnippet = "fuzzy_snippet"
	PhaseFuzzyURL     = "fuzzy_url"
)

// Confidences of the exact-phrase-only phase; no other adjustment applies.
const (
	phraseTitleConfidence   = 95
	phraseSnippetConfidence = 90
)

type strategy func(m *matcher.Matcher, q matcher.Query, t matcher.Text) (matcher.Match, bool)

func exactStrategy(m *matcher.Matcher, q matcher.Query, t matcher.Text) (matcher.Match, bool) {
	return m.Exact(q, t)
}

func fuzzyStrategy(m *matcher.Matcher, q matcher.Query, t matcher.Text) (matcher.Match, bool) {
	return m.Fuzzy(q, t)
}

type phase struct {
	name     string
	field    models.Field
	strategy strategy
}

// plan lists the phases to try in strict priority order.
func (c *call) plan() []phase {
	phases := []phase{{PhaseExactTitle, models.FieldTitle, exactStrategy}}
	if c.opts.IncludeSnippets {
		phases = append(phases, phase{PhaseExactSnippet, models.FieldSnippet, exactStrategy})
	}
	if c.opts.IncludeURLs {
		phases = append(phases, phase{PhaseExactURL, models.FieldURL, exactStrategy})
	}
	if !c.opts.FuzzyEnabled {
		return phases
	}
	phases = append(phases, phase{PhaseFuzzyTitle, models.FieldTitle, fuzzyStrategy})
	if c.opts.IncludeSnippets {
		phases = append(phases, phase{PhaseFuzzySnippet, models.FieldSnippet, fuzzyStrategy})
	}
	if c.opts.IncludeURLs {
		phases = append(phases, phase{PhaseFuzzyURL, models.FieldURL, fuzzyStrategy})
	}
	return phases
}

// primary returns the first hit of the highest priority phase that has one.
func (c *call) primary() (hit, bool) {
	if c.opts.ExactPhraseOnly {
		return c.phrasePhase()
	}
	for _, p := range c.plan() {
		if h, ok := c.runPhase(p); ok {
			return h, true
		}
	}
	return hit{}, false
}

// runPhase returns the first result, in position order, whose scored match
// clears MinConfidence.
func (c *call) runPhase(p phase) (hit, bool) {
	for _, d := range c.docs {
		match, ok := p.strategy(c.m, c.q, d.text(p.field))
		if !ok {
			continue
		}
		cand, ok := scoring.Score(d.result, scoring.FieldMatches{{Field: p.field, Match: match}}, c.opts)
		if !ok || cand.Confidence < c.opts.MinConfidence {
			continue
		}
		cand.Detail.Phase = p.name
		return hit{doc: d, cand: cand}, true
	}
	return hit{}, false
}

func (c *call) phrasePhase() (hit, bool) {
	for _, d := range c.docs {
		if h, ok := c.phraseHit(d); ok {
			return h, true
		}
	}
	return hit{}, false
}

// phraseHit scores d under exact-phrase-only matching: a fixed confidence
// for a title or snippet that contains the whole phrase.
func (c *call) phraseHit(d *doc) (hit, bool) {
	field, confidence := models.FieldNone, 0.0
	switch {
	case matcher.ExactPhrase(c.q, d.title):
		field, confidence = models.FieldTitle, phraseTitleConfidence
	case c.opts.IncludeSnippets && matcher.ExactPhrase(c.q, d.snippet):
		field, confidence = models.FieldSnippet, phraseSnippetConfidence
	default:
		return hit{}, false
	}
	return hit{doc: d, cand: models.MatchCandidate{
		Position:   d.result.Position,
		Field:      field,
		MatchKind:  models.MatchExactPhrase,
		Confidence: confidence,
		Detail: models.MatchDetail{
			MatchedText:    c.q.Phrase,
			Similarity:     1.0,
			MatchedWords:   len(c.q.Words),
			TotalWords:     len(c.q.Words),
			RelevanceScore: scoring.Relevance(field, models.MatchExactPhrase, d.result.Position),
			Phase:          PhaseExactPhrase,
		},
	}}, true
}
