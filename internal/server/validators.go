// file: internal/server/validators.go
// version: 1.1.0
// guid: 6a1f2c83-0d4e-4b97-b5e8-7c3a9d210f46

package server

import (
	"fmt"
	"unicode/utf8"

	"github.com/jdfalk/rankcheck/internal/models"
)

// Request limits. The engine itself accepts anything; these keep one request
// from monopolizing the server.
const (
	MaxKeywordLength = 512
	MaxBatchKeywords = 500
	MaxResults       = 1000
)

// ValidateKeyword rejects keywords the API will not rank. Empty and blank
// keywords pass and come back as not found.
func ValidateKeyword(keyword string) *APIError {
	if reason := keywordTooLong(keyword); reason != "" {
		return invalidField("keyword", reason)
	}
	return nil
}

func keywordTooLong(keyword string) string {
	if n := utf8.RuneCountInString(keyword); n > MaxKeywordLength {
		return fmt.Sprintf("%d characters, at most %d allowed", n, MaxKeywordLength)
	}
	return ""
}

// ValidateKeywords checks a batch keyword list. Blank entries pass, like a
// blank single keyword.
func ValidateKeywords(keywords []string) *APIError {
	if len(keywords) > MaxBatchKeywords {
		return invalidField("keywords", fmt.Sprintf("%d keywords, at most %d allowed", len(keywords), MaxBatchKeywords))
	}
	for i, kw := range keywords {
		if reason := keywordTooLong(kw); reason != "" {
			return invalidField(fmt.Sprintf("keywords[%d]", i), reason)
		}
	}
	return nil
}

// ValidateResults checks the posted result list. Results with a position
// below one are skipped by the engine, so they are accepted here.
func ValidateResults(results []models.SearchResult) *APIError {
	if len(results) > MaxResults {
		return invalidField("results", fmt.Sprintf("%d results, at most %d allowed", len(results), MaxResults))
	}
	return nil
}
