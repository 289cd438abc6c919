package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sccse-chatbot/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	WelcomeMessage = "Welcome to the SCCSE Chatbot API!"
	HealthVersion  = "1.0.0"
	ServiceName    = "sccse-chatbot"
)

// welcome answers the root path.
// @Summary Welcome
// @Description Returns the API welcome message
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (srv HTTPServer) welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": WelcomeMessage})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready once the conversation store answers a ping.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Database unreachable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if err := srv.db.PingContext(c.Request.Context()); err != nil {
		srv.l.Errorf(c.Request.Context(), "httpserver.readyCheck: %v", err)
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "database unreachable",
		})
		return
	}
	response.OK(c, gin.H{
		"status":  "ready",
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
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
