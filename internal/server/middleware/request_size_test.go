// file: internal/server/middleware/request_size_test.go
// version: 2.0.0
// guid: 8f5ed221-2f04-49aa-86f7-f63fa1732b2d

package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMethodHasBody(t *testing.T) {
	t.Parallel()

	assert.True(t, methodHasBody(http.MethodPost))
	assert.True(t, methodHasBody(http.MethodPut))
	assert.True(t, methodHasBody(http.MethodPatch))
	assert.False(t, methodHasBody(http.MethodGet))
	assert.False(t, methodHasBody(http.MethodDelete))
}

func TestSelectBodyLimit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(10), selectBodyLimit("/api/v1/rank/batch", 1, 10))
	assert.Equal(t, int64(1), selectBodyLimit("/api/v1/rank", 1, 10))
	assert.Equal(t, int64(1), selectBodyLimit("/api/v1/rank/quick", 1, 10))
}

func TestMaxRequestBodySize_Defaults(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(MaxRequestBodySize(0, 0))
	router.POST("/api/v1/rank", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPost, "/api/v1/rank", bytes.NewReader(bytes.Repeat([]byte("a"), 1024)))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestMaxRequestBodySize_Middleware(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(MaxRequestBodySize(8, 16))
	read := func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	}
	router.POST("/api/v1/rank", read)
	router.POST("/api/v1/rank/batch", read)
	router.GET("/api/v1/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Single rank over limit should be rejected.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rank", bytes.NewReader(bytes.Repeat([]byte("a"), 9)))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.Code)
	assert.Contains(t, resp.Body.String(), "BODY_TOO_LARGE")

	// Batch accepts the larger payload.
	req = httptest.NewRequest(http.MethodPost, "/api/v1/rank/batch", bytes.NewReader(bytes.Repeat([]byte("b"), 12)))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)

	// Unknown length is still capped while reading.
	req = httptest.NewRequest(http.MethodPost, "/api/v1/rank", bytes.NewReader(bytes.Repeat([]byte("c"), 9)))
	req.ContentLength = -1
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.Code)

	// Methods without request bodies should pass untouched.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)
}
