package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trip-date-interpreter/pkg/response"
)

// CORS enforces the configured origin allow-list. Requests without an Origin
// header (curl, server-to-server) pass through untouched. Browser requests
// from an unlisted origin are rejected before reaching any handler.
func (m Middleware) CORS() gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(m.allowedOrigins))
	allowAll := false
	for _, o := range m.allowedOrigins {
		if o == "*" {
			allowAll = true
		}
		allowed[o] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		if _, ok := allowed[origin]; !ok && !allowAll {
			m.l.Warnf(c.Request.Context(), "blocked origin %q", origin)
			response.ForbiddenOrigin(c)
			return
		}

		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Vary", "Origin")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Header("Access-Control-Max-Age", "7200")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
