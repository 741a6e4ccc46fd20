// file: internal/ranking/engine.go
// version: 1.0.0
// guid: a6fbcf56-2e49-44ca-86a4-b6161fb57c0d

// Package ranking decides whether, and at which position, a keyword appears
// in an ordered list of search results.
package ranking

import (
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/jdfalk/rankcheck/internal/matcher"
	"github.com/jdfalk/rankcheck/internal/models"
	"github.com/jdfalk/rankcheck/internal/textnorm"
)

// Engine ranks keywords with a fixed, validated set of options. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	opts models.MatchingOptions
}

// NewEngine validates opts and returns an Engine using them.
func NewEngine(opts models.MatchingOptions) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Engine{opts: opts}, nil
}

// Options returns the options the engine was built with.
func (e *Engine) Options() models.MatchingOptions {
	return e.opts
}

// FindRanking finds keyword in results using opts. Options are used as
// given; call NewEngine to validate them first.
func FindRanking(keyword string, results []models.SearchResult, opts models.MatchingOptions) models.RankingResult {
	return (&Engine{opts: opts}).FindRanking(keyword, results)
}

// QuickPosition returns only the primary position and confidence of keyword.
func QuickPosition(keyword string, results []models.SearchResult, opts models.MatchingOptions) (int, float64, bool) {
	return (&Engine{opts: opts}).QuickPosition(keyword, results)
}

// FindMultiple ranks each keyword independently. Duplicate keywords share a
// map entry.
func FindMultiple(keywords []string, results []models.SearchResult, opts models.MatchingOptions) map[string]models.RankingResult {
	return (&Engine{opts: opts}).FindMultiple(keywords, results)
}

// FindRanking returns the verdict for keyword.
func (e *Engine) FindRanking(keyword string, results []models.SearchResult) models.RankingResult {
	if strings.TrimSpace(keyword) == "" || len(results) == 0 {
		return models.NotFound(0)
	}
	q := matcher.NewQuery(keyword, e.opts)
	if q.Empty() {
		return models.NotFound(0)
	}

	c := newCall(e.opts, q, results)
	primary, ok := c.primary()
	if !ok {
		return models.NotFound(len(c.docs))
	}

	hits := []hit{{doc: primary.doc, cand: primary.cand}}
	if e.opts.FindAllOccurrences {
		hits = append(hits, c.occurrences(primary.doc)...)
	}
	return verdict(primary.cand, hits, len(c.docs))
}

// QuickPosition is FindRanking without occurrence collection.
func (e *Engine) QuickPosition(keyword string, results []models.SearchResult) (int, float64, bool) {
	quick := *e
	quick.opts.FindAllOccurrences = false
	r := quick.FindRanking(keyword, results)
	return r.Position, r.Confidence, r.Found
}

// FindMultiple ranks keywords concurrently with at most runtime.NumCPU()
// workers.
func (e *Engine) FindMultiple(keywords []string, results []models.SearchResult) map[string]models.RankingResult {
	out := make(map[string]models.RankingResult, len(keywords))
	if len(keywords) == 0 {
		return out
	}

	unique := make([]string, 0, len(keywords))
	seen := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		unique = append(unique, kw)
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, runtime.NumCPU())
	for _, kw := range unique {
		wg.Add(1)
		go func(keyword string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			r := e.FindRanking(keyword, results)
			mu.Lock()
			out[keyword] = r
			mu.Unlock()
		}(kw)
	}
	wg.Wait()
	return out
}

// doc is a result with its fields normalized once per call.
type doc struct {
	index   int
	result  models.SearchResult
	title   matcher.Text
	snippet matcher.Text
	url     matcher.Text
}

func (d *doc) text(f models.Field) matcher.Text {
	switch f {
	case models.FieldTitle:
		return d.title
	case models.FieldSnippet:
		return d.snippet
	case models.FieldURL:
		return d.url
	default:
		return matcher.Text{}
	}
}

// call is the state of a single FindRanking invocation.
type call struct {
	opts models.MatchingOptions
	q    matcher.Query
	m    *matcher.Matcher
	docs []*doc
}

func newCall(opts models.MatchingOptions, q matcher.Query, results []models.SearchResult) *call {
	sorted := make([]models.SearchResult, 0, len(results))
	for _, r := range results {
		if r.Position >= 1 {
			sorted = append(sorted, r)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Position < sorted[j].Position })

	docs := make([]*doc, 0, len(sorted))
	for i, r := range sorted {
		d := &doc{
			index:  i,
			result: r,
			title:  matcher.NewText(textnorm.Normalize(r.Title, opts), opts),
		}
		if opts.IncludeSnippets {
			d.snippet = matcher.NewText(textnorm.Normalize(r.Snippet, opts), opts)
		}
		if opts.IncludeURLs {
			d.url = matcher.NewText(textnorm.NormalizeURL(r.URL, opts), opts)
		}
		docs = append(docs, d)
	}
	return &call{opts: opts, q: q, m: matcher.New(opts), docs: docs}
}

// fields lists the fields enabled by the options, in priority order.
func (c *call) fields() []models.Field {
	fields := []models.Field{models.FieldTitle}
	if c.opts.IncludeSnippets {
		fields = append(fields, models.FieldSnippet)
	}
	if c.opts.IncludeURLs {
		fields = append(fields, models.FieldURL)
	}
	return fields
}

type hit struct {
	doc  *doc
	cand models.MatchCandidate
	near bool
}

func verdict(primary models.MatchCandidate, hits []hit, searched int) models.RankingResult {
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].doc.index < hits[j].doc.index })

	positions := make([]int, 0, len(hits))
	occurrences := make([]models.Occurrence, 0, len(hits))
	for _, h := range hits {
		positions = append(positions, h.cand.Position)
		occurrences = append(occurrences, models.Occurrence{
			Position:   h.cand.Position,
			Field:      h.cand.Field,
			MatchKind:  h.cand.MatchKind,
			Confidence: h.cand.Confidence,
			Near:       h.near,
		})
	}

	return models.RankingResult{
		Found:          true,
		Position:       primary.Position,
		MatchedField:   primary.Field,
		MatchKind:      primary.MatchKind,
		Confidence:     primary.Confidence,
		IsFuzzy:        primary.MatchKind.IsFuzzy(),
		AllPositions:   uniqueSorted(positions),
		SearchedCount:  searched,
		RelevanceScore: primary.Detail.RelevanceScore,
		MatchedText:    primary.Detail.MatchedText,
		Phase:          primary.Detail.Phase,
		Occurrences:    occurrences,
	}
}

func uniqueSorted(positions []int) []int {
	out := make([]int, 0, len(positions))
	sort.Ints(positions)
	for i, p := range positions {
		if i > 0 && p == positions[i-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}
