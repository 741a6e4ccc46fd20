// file: internal/server/error_handler_test.go
// version: 3.0.0
// guid: 6e7f8a9b-0c1d-2e3f-4a5b-6c7d8e9f0a1b

package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, target, nil)
	return c, w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestAbort_Envelope(t *testing.T) {
	tests := []struct {
		name    string
		err     *APIError
		status  int
		code    string
		message string
	}{
		{"bad request", badRequest("invalid options: %s", "oops"), http.StatusBadRequest, CodeBadRequest, "invalid options: oops"},
		{"validation", invalidField("options", "fuzzy_threshold"), http.StatusBadRequest, CodeValidation, "validation error: options (fuzzy_threshold)"},
		{"validation without reason", invalidField("keyword", ""), http.StatusBadRequest, CodeValidation, "validation error: keyword"},
		{"not found", routeNotFound("/nope"), http.StatusNotFound, CodeNotFound, "route not found: /nope"},
		{"too large", bodyTooLarge(), http.StatusRequestEntityTooLarge, "BODY_TOO_LARGE", "request body too large"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureLog(t)
			c, w := newTestContext("/")
			abort(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.True(t, c.IsAborted())
			resp := decodeError(t, w)
			assert.Equal(t, tt.message, resp.Error)
			assert.Equal(t, tt.code, resp.Code)
			assert.Equal(t, tt.status, resp.Status)
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestBindError(t *testing.T) {
	type body struct {
		Keyword  string   `validate:"required"`
		Keywords []string `validate:"min=1"`
	}

	err := validator.New().Struct(body{Keywords: []string{"x"}})
	require.Error(t, err)
	got := bindError(err)
	assert.Equal(t, CodeValidation, got.Code)
	assert.Equal(t, "validation error: keyword (required)", got.Message)

	err = validator.New().Struct(body{Keyword: "x", Keywords: []string{}})
	require.Error(t, err)
	assert.Equal(t, "validation error: keywords (needs at least 1)", bindError(err).Message)

	got = bindError(errors.New("unexpected EOF"))
	assert.Equal(t, CodeBadRequest, got.Code)
	assert.True(t, strings.HasPrefix(got.Message, "invalid request: "))

	got = bindError(&http.MaxBytesError{Limit: 8})
	assert.Equal(t, http.StatusRequestEntityTooLarge, got.Status)
}

func TestBindJSON(t *testing.T) {
	captureLog(t)

	c, w := newTestContext("/")
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"results":[]}`))
	c.Request.Header.Set("Content-Type", "application/json")
	var batch BatchRankRequest
	assert.False(t, bindJSON(c, &batch))
	assert.Equal(t, CodeValidation, decodeError(t, w).Code)

	c, _ = newTestContext("/")
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"keyword":"boutique"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	var req RankRequest
	assert.True(t, bindJSON(c, &req))
	assert.Equal(t, "boutique", req.Keyword)
}

func TestQueryFlag(t *testing.T) {
	tests := []struct {
		query string
		def   bool
		want  bool
	}{
		{"/", false, false},
		{"/", true, true},
		{"/?all=", true, true},
		{"/?all=true", false, true},
		{"/?all=TRUE", false, true},
		{"/?all=1", false, true},
		{"/?all=false", true, false},
		{"/?all=0", true, false},
		{"/?all=nope", true, true},
		{"/?all=nope", false, false},
	}
	for _, tt := range tests {
		c, _ := newTestContext(tt.query)
		assert.Equal(t, tt.want, queryFlag(c, "all", tt.def), tt.query)
	}
}
