// file: internal/server/rank_service.go
// version: 1.0.0
// guid: 81e585c7-c6b0-4efb-a23f-cb4dda80a14b

package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/jdfalk/rankcheck/internal/cache"
	"github.com/jdfalk/rankcheck/internal/metrics"
	"github.com/jdfalk/rankcheck/internal/models"
	"github.com/jdfalk/rankcheck/internal/ranking"
)

// RankService runs ranking queries for the HTTP handlers and records their
// metrics. Single-keyword verdicts are cached by keyword, results and
// options.
type RankService struct {
	defaults models.MatchingOptions
	verdicts *cache.Cache[models.RankingResult]
}

// NewRankService creates a rank service using defaults for requests that do
// not carry options. A zero cacheTTL disables the verdict cache.
func NewRankService(defaults models.MatchingOptions, cacheTTL time.Duration, cacheEntries int) *RankService {
	return &RankService{
		defaults: defaults,
		verdicts: cache.New[models.RankingResult](cacheTTL, cacheEntries),
	}
}

// Defaults returns the options applied when a request has none.
func (rs *RankService) Defaults() models.MatchingOptions {
	return rs.defaults
}

// ResolveOptions decodes raw onto the defaults, so absent keys keep their
// default value, and validates the result.
func (rs *RankService) ResolveOptions(raw json.RawMessage) (models.MatchingOptions, error) {
	opts := rs.defaults
	if len(bytes.TrimSpace(raw)) > 0 && !bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		if err := json.Unmarshal(raw, &opts); err != nil {
			return models.MatchingOptions{}, fmt.Errorf("invalid options: %w", err)
		}
	}
	if err := opts.Validate(); err != nil {
		return models.MatchingOptions{}, err
	}
	return opts, nil
}

// Rank returns the full verdict for one keyword.
func (rs *RankService) Rank(requestID, keyword string, results []models.SearchResult, opts models.MatchingOptions) models.RankingResult {
	ql := newQueryLog("rank", requestID).with("keyword", keyword).with("results", len(results))
	r, hit := rs.cached("rank", keyword, results, opts, func() models.RankingResult {
		return ranking.FindRanking(keyword, results, opts)
	})
	metrics.ObserveQueryDuration("rank", ql.elapsed())
	recordOutcome(r)

	ql.with("found", r.Found).with("position", r.Position).with("cached", hit).done()
	ql.debugf("phase=%s kind=%s confidence=%.2f positions=%v", r.Phase, r.MatchKind, r.Confidence, r.AllPositions)
	return r
}

// Quick returns only the primary position and confidence.
func (rs *RankService) Quick(requestID, keyword string, results []models.SearchResult, opts models.MatchingOptions) (int, float64, bool) {
	ql := newQueryLog("quick", requestID).with("keyword", keyword).with("results", len(results))
	r, hit := rs.cached("quick", keyword, results, opts, func() models.RankingResult {
		pos, confidence, ok := ranking.QuickPosition(keyword, results, opts)
		return models.RankingResult{Found: ok, Position: pos, Confidence: confidence}
	})
	metrics.ObserveQueryDuration("quick", ql.elapsed())
	if r.Found {
		metrics.IncQuery(metrics.OutcomeFound)
	} else {
		metrics.IncQuery(metrics.OutcomeNotFound)
	}

	ql.with("found", r.Found).with("position", r.Position).with("cached", hit).done()
	return r.Position, r.Confidence, r.Found
}

// Batch ranks every keyword against the same results. Batches are not
// cached.
func (rs *RankService) Batch(requestID string, keywords []string, results []models.SearchResult, opts models.MatchingOptions) map[string]models.RankingResult {
	ql := newQueryLog("batch", requestID).with("keywords", len(keywords)).with("results", len(results))
	out := ranking.FindMultiple(keywords, results, opts)
	metrics.ObserveQueryDuration("batch", ql.elapsed())
	metrics.ObserveBatchSize(len(keywords))

	found := 0
	for _, r := range out {
		recordOutcome(r)
		if r.Found {
			found++
		}
	}
	ql.with("unique", len(out)).with("found", found).done()
	return out
}

// cached returns the stored verdict for op on these inputs, or computes and
// stores it. The bool reports a cache hit.
func (rs *RankService) cached(op, keyword string, results []models.SearchResult, opts models.MatchingOptions, compute func() models.RankingResult) (models.RankingResult, bool) {
	if !rs.verdicts.Enabled() {
		return compute(), false
	}
	key, err := cache.Key(op, keyword, results, opts)
	if err != nil {
		log.Printf("[WARN] verdict cache skipped for %s: %v", op, err)
		return compute(), false
	}
	if r, ok := rs.verdicts.Get(key); ok {
		metrics.IncCacheLookup(metrics.CacheHit)
		return r, true
	}
	metrics.IncCacheLookup(metrics.CacheMiss)
	r := compute()
	rs.verdicts.Set(key, r)
	return r, false
}

func recordOutcome(r models.RankingResult) {
	if !r.Found {
		metrics.IncQuery(metrics.OutcomeNotFound)
		return
	}
	metrics.IncQuery(metrics.OutcomeFound)
	metrics.IncMatch(string(r.MatchKind))
}
