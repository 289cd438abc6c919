package test

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sccse-chatbot/internal/chat"
	"sccse-chatbot/internal/model"
	pkgLog "sccse-chatbot/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc chat.UseCase
}

// HandleClassify runs the intent cascade on a message without storing it
// @Summary Classify a message
// @Description Reports the intent a message would be routed to, with every matching candidate. Nothing is stored and no pending action changes.
// @Tags test
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Message to classify"
// @Success 200 {object} ClassifyResponse
// @Failure 400 {object} ClassifyResponse
// @Router /test/classify [post]
func (h *handler) HandleClassify(c *gin.Context) {
	ctx := c.Request.Context()

	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ClassifyResponse{Error: "Invalid request", Details: err.Error()})
		return
	}

	sc := model.NewScope(req.UserID, "")
	out, err := h.uc.Preview(ctx, sc, chat.PreviewInput{Message: req.Text})
	if err != nil {
		h.l.Warnf(ctx, "internal.test.HandleClassify: %v", err)
		c.JSON(http.StatusBadRequest, ClassifyResponse{
			Text:    req.Text,
			UserID:  sc.UserID,
			Error:   "Classification failed",
			Details: err.Error(),
		})
		return
	}

	candidates := make([]string, len(out.Candidates))
	for i, ci := range out.Candidates {
		candidates[i] = string(ci)
	}

	c.JSON(http.StatusOK, ClassifyResponse{
		Success:    true,
		Intent:     string(out.Intent),
		Candidates: candidates,
		OffTopic:   out.OffTopic,
		Pending:    out.Pending,
		Text:       req.Text,
		UserID:     sc.UserID,
	})
}

// HandleHealthCheck returns the health status of test endpoints
// @Summary Test health check
// @Description Check if test endpoints are available
// @Tags test
// @Produce json
// @Success 200 {object} HealthCheckResponse
// @Router /test/health [get]
func (h *handler) HandleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthCheckResponse{
		Status:  "ok",
		Message: "Test endpoints are available",
	})
}
