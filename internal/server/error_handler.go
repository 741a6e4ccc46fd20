// file: internal/server/error_handler.go
// version: 3.0.0
// guid: 5d6e7f8a-9b0c-1d2e-3f4a-5b6c7d8e9f0a

package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jdfalk/rankcheck/internal/server/middleware"
)

// Error codes of the API error envelope.
const (
	CodeBadRequest = "BAD_REQUEST"
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
)

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error  string `json:"error"`
	Code   string `json:"code,omitempty"`
	Status int    `json:"status"`
}

// APIError is a request failure with its HTTP status and envelope code.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func badRequest(format string, args ...any) *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: CodeBadRequest, Message: fmt.Sprintf(format, args...)}
}

// invalidField reports a request field that failed validation.
func invalidField(field, reason string) *APIError {
	msg := "validation error: " + field
	if reason != "" {
		msg += " (" + reason + ")"
	}
	return &APIError{Status: http.StatusBadRequest, Code: CodeValidation, Message: msg}
}

func bodyTooLarge() *APIError {
	return &APIError{Status: http.StatusRequestEntityTooLarge, Code: middleware.CodeBodyTooLarge, Message: "request body too large"}
}

func routeNotFound(path string) *APIError {
	return &APIError{Status: http.StatusNotFound, Code: CodeNotFound, Message: "route not found: " + path}
}

// abort logs err against the request and writes the envelope.
func abort(c *gin.Context, err *APIError) {
	logRejected(c, err)
	c.AbortWithStatusJSON(err.Status, ErrorResponse{
		Error:  err.Message,
		Code:   err.Code,
		Status: err.Status,
	})
}

// bindError maps a ShouldBindJSON failure onto an APIError.
func bindError(err error) *APIError {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return bodyTooLarge()
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return invalidField(strings.ToLower(fe.Field()), ruleText(fe))
	}
	return badRequest("invalid request: %v", err)
}

func ruleText(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "min":
		return "needs at least " + fe.Param()
	case "max":
		return "allows at most " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}

// bindJSON decodes and validates the request body into dst. On failure it
// has already responded and returns false.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		abort(c, bindError(err))
		return false
	}
	return true
}

// queryFlag reads an optional boolean query parameter such as ?all=true.
// Missing or unparsable values yield def.
func queryFlag(c *gin.Context, key string, def bool) bool {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}
