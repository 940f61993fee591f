package http

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"jobtrack/src/core/identity"
	"jobtrack/src/log"
	"jobtrack/src/metrics"
)

const sessionCookie = "jobtrack_session"

// AuthRequired resolves the caller's identity once per request and stores it
// in the request context. Requests without a valid session are answered with
// 401 and a redirect hint; no handler below ever runs unauthenticated. A
// verifier failure that is not a rejected session, such as a provider
// outage, surfaces as a server error so valid sessions are not bounced to
// the login page.
func AuthRequired(verifier identity.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, err := verifier.Verify(c.Request.Context(), sessionToken(c))
		if err != nil {
			if !errors.Is(err, identity.ErrUnauthenticated) {
				sendError(c, fmt.Errorf("failed to verify session: %w", err))
			} else {
				sendError(c, identity.ErrUnauthenticated)
			}
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(identity.WithOwner(c.Request.Context(), ownerID))
		c.Next()
	}
}

// sessionToken reads the session token from the Authorization header,
// falling back to the session cookie set by the SPA.
func sessionToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if cookie, err := c.Cookie(sessionCookie); err == nil {
		return cookie
	}
	return ""
}

// AccessLog logs one line per request through the global logger.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}

// Metrics records request counts and latency per route. The route template
// (not the raw path) is used so ids do not explode the label space.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.
			WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).
			Inc()
		metrics.HTTPRequestDuration.
			WithLabelValues(path, c.Request.Method).
			Observe(time.Since(start).Seconds())
	}
}
