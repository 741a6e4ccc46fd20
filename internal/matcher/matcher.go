// file: internal/matcher/matcher.go
// version: 2.0.0
// guid: 1f2a3b4c-5d6e-7f8a-9b0c-1d2e3f4a5b6c

// Package matcher implements the exact, fuzzy and partial strategies that
// decide whether a normalized keyword matches one normalized field.
package matcher

import (
	"strings"

	"github.com/jdfalk/rankcheck/internal/models"
	"github.com/jdfalk/rankcheck/internal/similarity"
	"github.com/jdfalk/rankcheck/internal/textnorm"
)

// WordKind tells how a single keyword word was matched.
type WordKind string

const (
	WordExact WordKind = "exact"
	WordStem  WordKind = "stem"
	WordFuzzy WordKind = "fuzzy"
)

// WordMatch pairs a keyword word with the field word that matched it.
type WordMatch struct {
	KeywordWord string
	MatchedWord string
	Similarity  float64
	Kind        WordKind
	index       int
}

// Match is the outcome of one strategy against one field.
type Match struct {
	Kind       models.MatchKind
	Confidence float64 // 0-100
	Similarity float64 // 0-1
	Text       string
	// Matched and Total count keyword words for word-based strategies.
	Matched int
	Total   int
	Words   []WordMatch
}

// Ratio is the fraction of keyword words matched, 0 when there are none.
func (m Match) Ratio() float64 {
	if m.Total == 0 {
		return 0
	}
	return float64(m.Matched) / float64(m.Total)
}

// Query is a normalized keyword.
type Query struct {
	Phrase string   // normalized keyword
	Words  []string // significant keyword words
}

// NewQuery normalizes keyword.
func NewQuery(keyword string, opts models.MatchingOptions) Query {
	phrase := textnorm.Normalize(keyword, opts)
	return Query{
		Phrase: phrase,
		Words:  textnorm.Tokenize(phrase, opts),
	}
}

// SignificantPhrase joins the significant words.
func (q Query) SignificantPhrase() string {
	return strings.Join(q.Words, " ")
}

// Empty reports whether nothing is left to match after normalization.
func (q Query) Empty() bool {
	return q.Phrase == ""
}

// Text is a normalized field prepared once per ranking call.
type Text struct {
	Normalized string
	Words      []string
	Tokens     []string
	wordSet    map[string]struct{}
}

// NewText prepares already normalized field text.
func NewText(normalized string, opts models.MatchingOptions) Text {
	words := textnorm.Words(normalized)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return Text{
		Normalized: normalized,
		Words:      words,
		Tokens:     textnorm.Tokenize(normalized, opts),
		wordSet:    set,
	}
}

// Empty reports whether the field has no comparable content.
func (t Text) Empty() bool {
	return t.Normalized == ""
}

func (t Text) hasWord(w string) bool {
	_, ok := t.wordSet[w]
	return ok
}

// Matcher runs the strategies for one ranking call. It owns the call-scoped
// similarity memo and must not be shared between goroutines.
type Matcher struct {
	opts models.MatchingOptions
	memo *similarity.Memo
}

// New returns a Matcher for a single ranking call.
func New(opts models.MatchingOptions) *Matcher {
	return &Matcher{opts: opts, memo: similarity.NewMemo()}
}

// WithThreshold returns a Matcher sharing the memo with a different fuzzy
// threshold.
func (m *Matcher) WithThreshold(threshold float64) *Matcher {
	opts := m.opts
	opts.FuzzyThreshold = threshold
	return &Matcher{opts: opts, memo: m.memo}
}

// Options returns the options the matcher was built with.
func (m *Matcher) Options() models.MatchingOptions {
	return m.opts
}
