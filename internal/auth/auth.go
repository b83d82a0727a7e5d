package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tradescope/internal/config"
)

const userIDKey = "auth.userID"

// Middleware trusts the identity header set by the upstream gateway.
// Infra endpoints stay open; everything under /api/ requires a user.
func Middleware(cfg config.AuthConfig) gin.HandlerFunc {
	header := strings.TrimSpace(cfg.UserHeader)
	if header == "" {
		header = "X-User-ID"
	}

	return func(c *gin.Context) {
		p := c.Request.URL.Path
		// Keep infra endpoints open.
		if p == "/healthz" || p == "/readyz" || strings.HasPrefix(p, "/swagger") || p == "/docs" {
			c.Next()
			return
		}
		if strings.HasPrefix(p, "/api/") {
			userID := strings.TrimSpace(c.GetHeader(header))
			if userID == "" && cfg.Disabled {
				userID = strings.TrimSpace(cfg.DevUserID)
			}
			if userID == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing identity header"})
				return
			}
			c.Set(userIDKey, userID)
		}
		c.Next()
	}
}

// UserID returns the authenticated user for the request, or "" when
// the middleware did not run.
func UserID(c *gin.Context) string {
	v, ok := c.Get(userIDKey)
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}

// AccessLogMiddleware logs write requests with their status and latency.
func AccessLogMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.Request.URL.Path
		method := strings.ToUpper(c.Request.Method)
		if !strings.HasPrefix(path, "/api/") {
			return
		}
		if method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions {
			return
		}
		logger.Info("http write",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
