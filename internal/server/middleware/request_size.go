// file: internal/server/middleware/request_size.go
// version: 2.0.0
// guid: f2129ae7-cf11-4888-bd4f-ab4b578f8f18

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const defaultBodyLimit = 1 << 20

func methodHasBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	default:
		return false
	}
}

// batch requests carry many keywords plus the shared result list
func selectBodyLimit(path string, limitBytes, batchLimitBytes int64) int64 {
	if strings.HasSuffix(path, "/rank/batch") {
		return batchLimitBytes
	}
	return limitBytes
}

// MaxRequestBodySize enforces request body limits by route class.
func MaxRequestBodySize(limitBytes, batchLimitBytes int64) gin.HandlerFunc {
	if limitBytes < 1 {
		limitBytes = defaultBodyLimit
	}
	if batchLimitBytes < limitBytes {
		batchLimitBytes = limitBytes
	}

	return func(c *gin.Context) {
		if !methodHasBody(c.Request.Method) {
			c.Next()
			return
		}

		limit := selectBodyLimit(c.Request.URL.Path, limitBytes, batchLimitBytes)
		if c.Request.ContentLength > limit {
			rejectTooLarge(c)
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
