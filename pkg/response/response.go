package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 with the payload as-is. The interpretation contract is a flat
// JSON object, so there is no envelope.
func OK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// Fail sends a structured failure body with the given status code.
// errDetail is included only when non-empty (callers suppress it in production).
func Fail(c *gin.Context, status int, reason, message, errDetail string) {
	c.AbortWithStatusJSON(status, FailureResp{
		Success: false,
		Reason:  reason,
		Message: message,
		Error:   errDetail,
	})
}

// NotFound sends the fallthrough 404 body.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
}

// ForbiddenOrigin rejects a request from a non-whitelisted origin.
func ForbiddenOrigin(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "origin_not_allowed"})
}

// TooManyRequests rejects a rate-limited request.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate_limited"})
}
