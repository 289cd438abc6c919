package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "sccse-chatbot/pkg/errors"
)

// processChatReq binds the chat body. A missing body and a blank message
// are both reported as errMessageMissing.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "chat.delivery.http.processChatReq: %v", err)
		return req, errMessageMissing
	}
	return req, req.validate()
}

// processHistoryReq binds the history query parameters.
func (h *handler) processHistoryReq(c *gin.Context) (historyReq, error) {
	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewHTTPErrorf(400, "invalid query: %v", err)
	}
	return req, req.validate()
}
