package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"

	"trip-date-interpreter/pkg/lexdate"
	"trip-date-interpreter/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Trip Date Interpreter at your service"
	HealthVersion = "1.0.0"
	ServiceName   = "trip-date-interpreter"
)

// banner answers the root path so load balancers and humans get a signal.
func (srv *HTTPServer) banner(c *gin.Context) {
	response.OK(c, gin.H{
		"service": ServiceName,
		"message": HealthMessage,
		"version": HealthVersion,
	})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check — returns ready once the date grammar
// answers a probe phrase.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	parserStatus := "ok"
	if len(lexdate.Parse("tomorrow", time.Now().UTC(), lexdate.Options{ForwardDate: true})) == 0 {
		parserStatus = "degraded"
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"parser":  parserStatus,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
