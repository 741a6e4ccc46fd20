// file: internal/ranking/occurrences.go
// version: 1.1.0
// guid: 5f47ea58-e3df-4d27-9204-f08eada70ee2

package ranking

import (
	"github.com/jdfalk/rankcheck/internal/matcher"
	"github.com/jdfalk/rankcheck/internal/scoring"
)

// Relaxed limits used when looking for further occurrences.
const (
	minOccurrenceThreshold  = 0.5
	occurrenceThresholdStep = 0.1
	minOccurrenceConfidence = 40.0
	occurrenceConfidenceGap = 20.0
	// nearMatchRatio is the fraction of keyword words a near match needs.
	nearMatchRatio = 0.3
)

// occurrences scans every result other than the primary one, first for
// relaxed matches and then for near matches.
func (c *call) occurrences(primary *doc) []hit {
	relaxed := c.m.WithThreshold(max(minOccurrenceThreshold, c.opts.FuzzyThreshold-occurrenceThresholdStep))
	floor := max(minOccurrenceConfidence, c.opts.MinConfidence-occurrenceConfidenceGap)

	var hits []hit
	// matched also holds hits beyond the cap so they never come back as near
	// matches.
	matched := map[int]bool{primary.index: true}
	for _, d := range c.docs {
		if matched[d.index] {
			continue
		}
		h, ok := c.relaxedHit(relaxed, d)
		if !ok || h.cand.Confidence < floor {
			continue
		}
		matched[d.index] = true
		if len(hits) < c.opts.MaxAdditionalOccurrences {
			hits = append(hits, h)
		}
	}

	if !c.opts.IncludeNearMatches || c.opts.ExactPhraseOnly {
		return hits
	}
	near := 0
	for _, d := range c.docs {
		if near >= c.opts.MaxNearMatches {
			break
		}
		if matched[d.index] {
			continue
		}
		if h, ok := c.nearHit(d); ok {
			hits = append(hits, h)
			near++
		}
	}
	return hits
}

// relaxedHit matches every enabled field with the exact and fuzzy strategies,
// keeps the stronger match per field and scores the strongest field. In
// exact-phrase-only mode it scores like the primary phrase phase.
func (c *call) relaxedHit(m *matcher.Matcher, d *doc) (hit, bool) {
	if c.opts.ExactPhraseOnly {
		return c.phraseHit(d)
	}
	var matches scoring.FieldMatches
	for _, f := range c.fields() {
		t := d.text(f)
		best, found := m.Exact(c.q, t)
		if c.opts.FuzzyEnabled && (!found || best.Confidence < 100) {
			if match, ok := m.Fuzzy(c.q, t); ok && (!found || match.Confidence > best.Confidence) {
				best, found = match, true
			}
		}
		if found {
			matches = append(matches, scoring.FieldMatch{Field: f, Match: best})
		}
	}
	cand, ok := scoring.Score(d.result, matches, c.opts)
	if !ok {
		return hit{}, false
	}
	return hit{doc: d, cand: cand}, true
}

func (c *call) nearHit(d *doc) (hit, bool) {
	var matches scoring.FieldMatches
	for _, f := range c.fields() {
		match, ok := c.m.Partial(c.q, d.text(f))
		if ok && match.Ratio() >= nearMatchRatio {
			matches = append(matches, scoring.FieldMatch{Field: f, Match: match})
		}
	}
	cand, ok := scoring.Score(d.result, matches, c.opts)
	if !ok {
		return hit{}, false
	}
	return hit{doc: d, cand: cand, near: true}, true
}
