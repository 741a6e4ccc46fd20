// file: internal/server/middleware/basicauth.go
// version: 2.0.0
// guid: a1b2c3d4-e5f6-7a8b-9c0d-1e2f3a4b5c6d

package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

const authRealm = `Basic realm="rankcheck"`

// BasicAuth returns a Gin middleware that enforces HTTP Basic Authentication
// against username and password. An empty username disables the check. The
// health and metrics endpoints are exempt.
func BasicAuth(username, password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if username == "" {
			c.Next()
			return
		}

		switch c.Request.URL.Path {
		case "/api/v1/health", "/metrics":
			c.Next()
			return
		}

		user, pass, ok := c.Request.BasicAuth()
		userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
		passMatch := subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1
		if !ok || !userMatch || !passMatch {
			c.Header("WWW-Authenticate", authRealm)
			reject(c, http.StatusUnauthorized, CodeUnauthorized, "authentication required")
			return
		}

		c.Set(gin.AuthUserKey, user)
		c.Next()
	}
}
