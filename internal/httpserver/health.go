package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"movie-search-bot/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	LivenessBody  = "movie-search-bot is alive"
	HealthVersion = "1.0.0"
	ServiceName   = "movie-search-bot"
)

// liveCheck handles liveness probes with a fixed text body and no processing.
// @Summary Liveness Check
// @Description Fixed-body liveness probe used by deployment health checks
// @Tags Health
// @Produce plain
// @Success 200 {string} string "service is alive"
// @Router / [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	c.String(http.StatusOK, LivenessBody)
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":      "healthy",
		"version":     HealthVersion,
		"service":     ServiceName,
		"environment": srv.environment,
	})
}
