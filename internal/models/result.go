// file: internal/models/result.go
// version: 1.0.0
// guid: fb8e5d6e-2ffc-4396-989c-473a539da87b

package models

// ResultKind classifies a search result block on the page.
type ResultKind string

const (
	KindOrganic         ResultKind = "organic"
	KindFeaturedSnippet ResultKind = "featured_snippet"
	KindKnowledgePanel  ResultKind = "knowledge_panel"
	KindShopping        ResultKind = "shopping"
	KindNews            ResultKind = "news"
	KindImage           ResultKind = "image"
	KindVideo           ResultKind = "video"
	KindAd              ResultKind = "ad"
	KindLocal           ResultKind = "local"
)

// Field names the part of a result a match was found in.
type Field string

const (
	FieldNone    Field = ""
	FieldTitle   Field = "title"
	FieldSnippet Field = "snippet"
	FieldURL     Field = "url"
)

// MatchKind describes how a keyword matched a field.
type MatchKind string

const (
	MatchNone        MatchKind = ""
	MatchExactPhrase MatchKind = "exact_phrase"
	MatchAllWords    MatchKind = "all_words"
	MatchMostWords   MatchKind = "most_words"
	MatchFuzzy       MatchKind = "fuzzy"
	MatchPartial     MatchKind = "partial"
	MatchNgram       MatchKind = "ngram"
)

// IsFuzzy reports whether the kind came from an approximate strategy.
func (k MatchKind) IsFuzzy() bool {
	switch k {
	case MatchFuzzy, MatchPartial, MatchNgram:
		return true
	default:
		return false
	}
}

// SearchResult is one entry of the scraped result list. Position is assigned
// upstream and is never recomputed.
type SearchResult struct {
	Position int        `json:"position" yaml:"position"`
	Title    string     `json:"title" yaml:"title"`
	Snippet  string     `json:"snippet" yaml:"snippet"`
	URL      string     `json:"url" yaml:"url"`
	Kind     ResultKind `json:"kind,omitempty" yaml:"kind,omitempty"`
}

// MatchDetail carries supporting information about a candidate.
type MatchDetail struct {
	MatchedText    string  `json:"matched_text,omitempty"`
	Similarity     float64 `json:"similarity"`
	MatchedWords   int     `json:"matched_words"`
	TotalWords     int     `json:"total_words"`
	RelevanceScore float64 `json:"relevance_score"`
	Phase          string  `json:"phase,omitempty"`
}

// MatchCandidate is a scored match for a single result.
type MatchCandidate struct {
	Position   int         `json:"position"`
	Field      Field       `json:"field"`
	MatchKind  MatchKind   `json:"match_kind"`
	Confidence float64     `json:"confidence"`
	Detail     MatchDetail `json:"detail"`
}

// Occurrence is one position where the keyword was found.
type Occurrence struct {
	Position   int       `json:"position"`
	Field      Field     `json:"field"`
	MatchKind  MatchKind `json:"match_kind"`
	Confidence float64   `json:"confidence"`
	Near       bool      `json:"near,omitempty"`
}

// RankingResult is the verdict for one keyword. A zero Position means the
// keyword was not found.
type RankingResult struct {
	Found          bool         `json:"found"`
	Position       int          `json:"position,omitempty"`
	MatchedField   Field        `json:"matched_field,omitempty"`
	MatchKind      MatchKind    `json:"match_kind,omitempty"`
	Confidence     float64      `json:"confidence"`
	IsFuzzy        bool         `json:"is_fuzzy"`
	AllPositions   []int        `json:"all_positions"`
	SearchedCount  int          `json:"searched_count"`
	RelevanceScore float64      `json:"relevance_score"`
	MatchedText    string       `json:"matched_text,omitempty"`
	Phase          string       `json:"phase,omitempty"`
	Occurrences    []Occurrence `json:"occurrences,omitempty"`
}

// NotFound returns the verdict for a keyword absent from searched results.
func NotFound(searched int) RankingResult {
	return RankingResult{
		AllPositions:  []int{},
		SearchedCount: searched,
	}
}
