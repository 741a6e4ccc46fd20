// file: internal/server/middleware/respond.go
// version: 1.0.0
// guid: 3b0d7f41-9c52-4e1a-8a6f-2d4c1b7e90a5

// Package middleware holds the gin middleware guarding the ranking API.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes shared with the server's error envelope.
const (
	CodeUnauthorized = "UNAUTHORIZED"
	CodeRateLimited  = "RATE_LIMITED"
	CodeBodyTooLarge = "BODY_TOO_LARGE"
)

// reject stops the chain with the {error, code, status} envelope the
// handlers use.
func reject(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error":  message,
		"code":   code,
		"status": status,
	})
}

func rejectTooLarge(c *gin.Context) {
	reject(c, http.StatusRequestEntityTooLarge, CodeBodyTooLarge, "request body too large")
}
