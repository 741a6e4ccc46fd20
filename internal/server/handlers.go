// file: internal/server/handlers.go
// version: 2.1.0
// guid: 34d82628-3f31-4450-9a01-ef3fbc46c758

package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jdfalk/rankcheck/internal/metrics"
	"github.com/jdfalk/rankcheck/internal/models"
)

// RankRequest is the body of /rank and /rank/quick. An absent or blank
// keyword is ranked like any other and comes back not found.
type RankRequest struct {
	Keyword string                `json:"keyword"`
	Results []models.SearchResult `json:"results"`
	Options json.RawMessage       `json:"options,omitempty"`
}

// BatchRankRequest is the body of /rank/batch.
type BatchRankRequest struct {
	Keywords []string              `json:"keywords" binding:"required,min=1"`
	Results  []models.SearchResult `json:"results"`
	Options  json.RawMessage       `json:"options,omitempty"`
}

// RankResponse carries the full verdict for one keyword.
type RankResponse struct {
	QueryID string               `json:"query_id"`
	Keyword string               `json:"keyword"`
	Result  models.RankingResult `json:"result"`
}

// QuickRankResponse carries only the primary position.
type QuickRankResponse struct {
	QueryID    string  `json:"query_id"`
	Keyword    string  `json:"keyword"`
	Found      bool    `json:"found"`
	Position   int     `json:"position"`
	Confidence float64 `json:"confidence"`
}

// BatchRankResponse maps each distinct keyword to its verdict.
type BatchRankResponse struct {
	QueryID string                          `json:"query_id"`
	Count   int                             `json:"count"`
	Results map[string]models.RankingResult `json:"results"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status        string                 `json:"status"`
	Timestamp     int64                  `json:"timestamp"`
	Version       string                 `json:"version"`
	UptimeSeconds int64                  `json:"uptime_seconds"`
	Defaults      models.MatchingOptions `json:"defaults"`
}

func (s *Server) rank(c *gin.Context) {
	var req RankRequest
	if !s.accept(c, &req) {
		return
	}
	opts, ok := s.options(c, req.Options)
	if !ok {
		return
	}
	// ?all=true is shorthand for options.find_all_occurrences
	opts.FindAllOccurrences = queryFlag(c, "all", opts.FindAllOccurrences)

	result := s.service.Rank(requestID(c), req.Keyword, req.Results, opts)
	c.JSON(http.StatusOK, RankResponse{QueryID: requestID(c), Keyword: req.Keyword, Result: result})
}

func (s *Server) quickRank(c *gin.Context) {
	var req RankRequest
	if !s.accept(c, &req) {
		return
	}
	opts, ok := s.options(c, req.Options)
	if !ok {
		return
	}

	pos, confidence, found := s.service.Quick(requestID(c), req.Keyword, req.Results, opts)
	c.JSON(http.StatusOK, QuickRankResponse{
		QueryID:    requestID(c),
		Keyword:    req.Keyword,
		Found:      found,
		Position:   pos,
		Confidence: confidence,
	})
}

func (s *Server) batchRank(c *gin.Context) {
	var req BatchRankRequest
	if !s.accept(c, &req) {
		return
	}
	opts, ok := s.options(c, req.Options)
	if !ok {
		return
	}
	opts.FindAllOccurrences = queryFlag(c, "all", opts.FindAllOccurrences)

	results := s.service.Batch(requestID(c), req.Keywords, req.Results, opts)
	c.JSON(http.StatusOK, BatchRankResponse{QueryID: requestID(c), Count: len(results), Results: results})
}

type rankingRequest interface {
	validate() *APIError
}

func (r *RankRequest) validate() *APIError {
	if err := ValidateKeyword(r.Keyword); err != nil {
		return err
	}
	return ValidateResults(r.Results)
}

func (r *BatchRankRequest) validate() *APIError {
	if err := ValidateKeywords(r.Keywords); err != nil {
		return err
	}
	return ValidateResults(r.Results)
}

// accept binds and validates the body into req. Rejections are answered and
// counted as invalid queries.
func (s *Server) accept(c *gin.Context, req rankingRequest) bool {
	if !bindJSON(c, req) {
		metrics.IncQuery(metrics.OutcomeInvalid)
		return false
	}
	if err := req.validate(); err != nil {
		metrics.IncQuery(metrics.OutcomeInvalid)
		abort(c, err)
		return false
	}
	return true
}

// options resolves the request's options over the server defaults.
func (s *Server) options(c *gin.Context, raw json.RawMessage) (models.MatchingOptions, bool) {
	opts, err := s.service.ResolveOptions(raw)
	if err == nil {
		return opts, true
	}
	metrics.IncQuery(metrics.OutcomeInvalid)
	if errors.Is(err, models.ErrConfigurationOutOfRange) {
		abort(c, invalidField("options", err.Error()))
	} else {
		abort(c, badRequest("%v", err))
	}
	return models.MatchingOptions{}, false
}
