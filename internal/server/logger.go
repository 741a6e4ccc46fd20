// file: internal/server/logger.go
// version: 3.0.0
// guid: 1d2e3f4a-5b6c-7d8e-9f0a-1b2c3d4e5f6a

package server

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jdfalk/rankcheck/internal/config"
)

type logField struct {
	key   string
	value any
}

// queryLog collects the fields of one ranking operation and writes them as a
// single [SERVICE] line when it finishes.
type queryLog struct {
	op        string
	requestID string
	start     time.Time
	fields    []logField
}

func newQueryLog(op, requestID string) *queryLog {
	return &queryLog{op: op, requestID: requestID, start: time.Now()}
}

// with appends a field. Fields are written in the order they were added.
func (q *queryLog) with(key string, value any) *queryLog {
	q.fields = append(q.fields, logField{key, value})
	return q
}

func (q *queryLog) elapsed() time.Duration {
	return time.Since(q.start)
}

func (q *queryLog) done() {
	log.Printf("[SERVICE] %s%s in %v [request-id: %s]", q.op, q.render(), q.elapsed(), q.requestID)
}

// debugf writes only when log_level is debug.
func (q *queryLog) debugf(format string, args ...any) {
	if !config.DebugEnabled() {
		return
	}
	log.Printf("[DEBUG] %s: %s [request-id: %s]", q.op, fmt.Sprintf(format, args...), q.requestID)
}

func (q *queryLog) render() string {
	var b strings.Builder
	for _, f := range q.fields {
		b.WriteByte(' ')
		b.WriteString(f.key)
		b.WriteByte('=')
		if s, ok := f.value.(string); ok {
			b.WriteString(strconv.Quote(s))
		} else {
			fmt.Fprint(&b, f.value)
		}
	}
	return b.String()
}

func logRequest(c *gin.Context) {
	log.Printf("[REQUEST] %s %s from %s [request-id: %s] [agent: %s]",
		c.Request.Method, c.Request.URL.Path, c.ClientIP(), requestID(c), c.Request.UserAgent())
}

func logResponse(c *gin.Context, start time.Time) {
	log.Printf("[RESPONSE] %s %s -> %d (%d bytes) in %v [request-id: %s]",
		c.Request.Method, c.Request.URL.Path, c.Writer.Status(), max(0, c.Writer.Size()), time.Since(start), requestID(c))
}

// logRejected records why a request was turned away.
func logRejected(c *gin.Context, err *APIError) {
	tag := "WARN"
	switch {
	case err.Code == CodeValidation:
		tag = "VALIDATION-ERROR"
	case err.Status >= 500:
		tag = "ERROR"
	}
	log.Printf("[%s] %s %s %d - %s (from %s) [request-id: %s]",
		tag, c.Request.Method, c.Request.URL.Path, err.Status, err.Message, c.ClientIP(), requestID(c))
}
