package http

import (
	"github.com/gin-gonic/gin"

	"sccse-chatbot/internal/middleware"
)

// RegisterRoutes maps the chat endpoints. Chat is rate limited per user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("", mw.RateLimit(), h.Chat)
	rg.GET("/history", h.History)
}
