// file: internal/server/middleware/ratelimit.go
// version: 2.0.0
// guid: 1331705a-85cb-4158-92f5-5ce203d8a0e7

package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	// clientIdleTTL is how long an unused bucket is kept.
	clientIdleTTL = 15 * time.Minute
	// sweepEvery bounds how often idle buckets are collected.
	sweepEvery = time.Minute
)

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientRateLimiter gives every API client its own token bucket. Clients are
// told apart by their basic auth user when there is one, else by IP.
type ClientRateLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	perSecond rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

// NewClientRateLimiter allows perMinute rank requests per client with bursts
// of up to burst. Values below one are raised to one.
func NewClientRateLimiter(perMinute, burst int) *ClientRateLimiter {
	return &ClientRateLimiter{
		buckets:   make(map[string]*bucket),
		perSecond: rate.Limit(float64(max(1, perMinute)) / 60.0),
		burst:     max(1, burst),
		now:       time.Now,
	}
}

// allow takes a token from the client's bucket. When none is left it returns
// the whole seconds until the next one.
func (l *ClientRateLimiter) allow(client string) (bool, int) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= sweepEvery {
		for key, b := range l.buckets {
			if now.Sub(b.lastSeen) > clientIdleTTL {
				delete(l.buckets, key)
			}
		}
		l.lastSweep = now
	}

	b, ok := l.buckets[client]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.perSecond, l.burst)}
		l.buckets[client] = b
	}
	b.lastSeen = now

	if b.limiter.AllowN(now, 1) {
		return true, 0
	}
	missing := 1 - b.limiter.TokensAt(now)
	// round away float noise so 15.000000000000002s reads as 15
	wait := math.Ceil(missing/float64(l.perSecond) - 1e-9)
	return false, max(1, int(wait))
}

// clients reports how many buckets are live.
func (l *ClientRateLimiter) clients() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

func clientKey(c *gin.Context) string {
	if user := c.GetString(gin.AuthUserKey); user != "" {
		return "user:" + user
	}
	if ip := c.ClientIP(); ip != "" {
		return "ip:" + ip
	}
	return "unknown"
}

// Middleware rejects requests over the limit with 429 and a Retry-After
// header.
func (l *ClientRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, retryAfter := l.allow(clientKey(c))
		if !ok {
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			reject(c, http.StatusTooManyRequests, CodeRateLimited, "rate limit exceeded")
			return
		}
		c.Next()
	}
}
