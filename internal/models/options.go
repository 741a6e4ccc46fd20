// file: internal/models/options.go
// version: 1.0.0
// guid: d92f2eb8-3126-4a39-991b-6eb9b1cf84b5

package models

import (
	"errors"
	"fmt"
	"math"
)

// ErrConfigurationOutOfRange is returned when a matching option is outside
// its allowed range.
var ErrConfigurationOutOfRange = errors.New("configuration out of range")

// FieldWeights rank fields against each other when several match.
type FieldWeights struct {
	Title   float64 `json:"title" yaml:"title" mapstructure:"title"`
	Snippet float64 `json:"snippet" yaml:"snippet" mapstructure:"snippet"`
	URL     float64 `json:"url" yaml:"url" mapstructure:"url"`
}

// For returns the weight of f. Unknown fields weigh nothing.
func (w FieldWeights) For(f Field) float64 {
	switch f {
	case FieldTitle:
		return w.Title
	case FieldSnippet:
		return w.Snippet
	case FieldURL:
		return w.URL
	default:
		return 0
	}
}

// FuzzyWeights blend the similarity measures of a fuzzy window.
type FuzzyWeights struct {
	Levenshtein float64 `json:"levenshtein" yaml:"levenshtein" mapstructure:"levenshtein"`
	Token       float64 `json:"token" yaml:"token" mapstructure:"token"`
	Char        float64 `json:"char" yaml:"char" mapstructure:"char"`
}

// PartialWeights blend the signals of a partial word match.
type PartialWeights struct {
	Ratio      float64 `json:"ratio" yaml:"ratio" mapstructure:"ratio"`
	Similarity float64 `json:"similarity" yaml:"similarity" mapstructure:"similarity"`
	Proximity  float64 `json:"proximity" yaml:"proximity" mapstructure:"proximity"`
}

// MatchingOptions configures a ranking query. Build it with
// DefaultMatchingOptions or NewMatchingOptions and treat it as a value.
type MatchingOptions struct {
	CaseSensitive        bool    `json:"case_sensitive" yaml:"case_sensitive" mapstructure:"case_sensitive"`
	FuzzyEnabled         bool    `json:"fuzzy_enabled" yaml:"fuzzy_enabled" mapstructure:"fuzzy_enabled"`
	ExactPhraseOnly      bool    `json:"exact_phrase_only" yaml:"exact_phrase_only" mapstructure:"exact_phrase_only"`
	PreserveSpecialChars bool    `json:"preserve_special_chars" yaml:"preserve_special_chars" mapstructure:"preserve_special_chars"`
	MinWordLength        int     `json:"min_word_length" yaml:"min_word_length" mapstructure:"min_word_length"`
	FuzzyThreshold       float64 `json:"fuzzy_threshold" yaml:"fuzzy_threshold" mapstructure:"fuzzy_threshold"`
	// MinConfidence is the scored confidence a match needs to clear a phase.
	MinConfidence      float64 `json:"min_confidence" yaml:"min_confidence" mapstructure:"min_confidence"`
	IncludeSnippets    bool    `json:"include_snippets" yaml:"include_snippets" mapstructure:"include_snippets"`
	IncludeURLs        bool    `json:"include_urls" yaml:"include_urls" mapstructure:"include_urls"`
	FindAllOccurrences bool    `json:"find_all_occurrences" yaml:"find_all_occurrences" mapstructure:"find_all_occurrences"`
	IncludeNearMatches bool    `json:"include_near_matches" yaml:"include_near_matches" mapstructure:"include_near_matches"`

	MaxAdditionalOccurrences int `json:"max_additional_occurrences" yaml:"max_additional_occurrences" mapstructure:"max_additional_occurrences"`
	MaxNearMatches           int `json:"max_near_matches" yaml:"max_near_matches" mapstructure:"max_near_matches"`

	FieldWeights   FieldWeights   `json:"field_weights" yaml:"field_weights" mapstructure:"field_weights"`
	FuzzyWeights   FuzzyWeights   `json:"fuzzy_weights" yaml:"fuzzy_weights" mapstructure:"fuzzy_weights"`
	PartialWeights PartialWeights `json:"partial_weights" yaml:"partial_weights" mapstructure:"partial_weights"`
}

// DefaultMatchingOptions returns the documented defaults.
func DefaultMatchingOptions() MatchingOptions {
	return MatchingOptions{
		CaseSensitive:            false,
		FuzzyEnabled:             true,
		ExactPhraseOnly:          false,
		PreserveSpecialChars:     false,
		MinWordLength:            2,
		FuzzyThreshold:           0.7,
		MinConfidence:            50,
		IncludeSnippets:          true,
		IncludeURLs:              false,
		FindAllOccurrences:       false,
		IncludeNearMatches:       true,
		MaxAdditionalOccurrences: 5,
		MaxNearMatches:           3,
		FieldWeights:             FieldWeights{Title: 3.0, Snippet: 1.0, URL: 0.5},
		FuzzyWeights:             FuzzyWeights{Levenshtein: 0.4, Token: 0.3, Char: 0.3},
		PartialWeights:           PartialWeights{Ratio: 0.6, Similarity: 0.3, Proximity: 0.1},
	}
}

// Option mutates options under construction.
type Option func(*MatchingOptions)

// NewMatchingOptions applies opts over the defaults and validates the result.
func NewMatchingOptions(opts ...Option) (MatchingOptions, error) {
	o := DefaultMatchingOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return MatchingOptions{}, err
	}
	return o, nil
}

func WithCaseSensitive(v bool) Option   { return func(o *MatchingOptions) { o.CaseSensitive = v } }
func WithFuzzy(v bool) Option           { return func(o *MatchingOptions) { o.FuzzyEnabled = v } }
func WithExactPhraseOnly(v bool) Option { return func(o *MatchingOptions) { o.ExactPhraseOnly = v } }
func WithPreserveSpecialChars(v bool) Option {
	return func(o *MatchingOptions) { o.PreserveSpecialChars = v }
}
func WithMinWordLength(n int) Option      { return func(o *MatchingOptions) { o.MinWordLength = n } }
func WithFuzzyThreshold(v float64) Option { return func(o *MatchingOptions) { o.FuzzyThreshold = v } }
func WithMinConfidence(v float64) Option  { return func(o *MatchingOptions) { o.MinConfidence = v } }
func WithSnippets(v bool) Option          { return func(o *MatchingOptions) { o.IncludeSnippets = v } }
func WithURLs(v bool) Option              { return func(o *MatchingOptions) { o.IncludeURLs = v } }
func WithAllOccurrences(v bool) Option    { return func(o *MatchingOptions) { o.FindAllOccurrences = v } }
func WithNearMatches(v bool) Option       { return func(o *MatchingOptions) { o.IncludeNearMatches = v } }
func WithFieldWeights(w FieldWeights) Option {
	return func(o *MatchingOptions) { o.FieldWeights = w }
}
func WithFuzzyWeights(w FuzzyWeights) Option {
	return func(o *MatchingOptions) { o.FuzzyWeights = w }
}
func WithPartialWeights(w PartialWeights) Option {
	return func(o *MatchingOptions) { o.PartialWeights = w }
}

// Validate reports the first option outside its allowed range.
func (o MatchingOptions) Validate() error {
	if !within(o.FuzzyThreshold, 0, 1) {
		return outOfRange("fuzzy_threshold", o.FuzzyThreshold, "[0,1]")
	}
	if !within(o.MinConfidence, 0, 100) {
		return outOfRange("min_confidence", o.MinConfidence, "[0,100]")
	}
	if o.MinWordLength < 0 {
		return outOfRange("min_word_length", o.MinWordLength, ">= 0")
	}
	if o.MaxAdditionalOccurrences < 0 {
		return outOfRange("max_additional_occurrences", o.MaxAdditionalOccurrences, ">= 0")
	}
	if o.MaxNearMatches < 0 {
		return outOfRange("max_near_matches", o.MaxNearMatches, ">= 0")
	}

	weights := []struct {
		key string
		v   float64
	}{
		{"field_weights.title", o.FieldWeights.Title},
		{"field_weights.snippet", o.FieldWeights.Snippet},
		{"field_weights.url", o.FieldWeights.URL},
		{"fuzzy_weights.levenshtein", o.FuzzyWeights.Levenshtein},
		{"fuzzy_weights.token", o.FuzzyWeights.Token},
		{"fuzzy_weights.char", o.FuzzyWeights.Char},
		{"partial_weights.ratio", o.PartialWeights.Ratio},
		{"partial_weights.similarity", o.PartialWeights.Similarity},
		{"partial_weights.proximity", o.PartialWeights.Proximity},
	}
	for _, w := range weights {
		if !within(w.v, 0, math.MaxFloat64) {
			return outOfRange(w.key, w.v, "finite and >= 0")
		}
	}
	if o.FuzzyWeights.Levenshtein+o.FuzzyWeights.Token+o.FuzzyWeights.Char == 0 {
		return fmt.Errorf("%w: fuzzy_weights must not all be zero", ErrConfigurationOutOfRange)
	}
	return nil
}

// within reports lo <= v <= hi. NaN and the infinities never qualify.
func within(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

func outOfRange(key string, v any, want string) error {
	return fmt.Errorf("%w: %s = %v, want %s", ErrConfigurationOutOfRange, key, v, want)
}
