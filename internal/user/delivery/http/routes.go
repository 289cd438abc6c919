package http

import (
	"github.com/gin-gonic/gin"

	"sccse-chatbot/internal/middleware"
)

// RegisterRoutes maps /register and /login. Both are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/register", mw.RateLimit(), h.Register)
	rg.POST("/login", mw.RateLimit(), h.Login)
}
