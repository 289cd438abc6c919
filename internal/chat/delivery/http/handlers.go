package http

import (
	"github.com/gin-gonic/gin"

	"sccse-chatbot/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Stores the message, routes it through the intent cascade and returns the assistant reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message and sender"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Message missing"
// @Failure     429  {object} response.Resp "Too many requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Chat(ctx, req.toScope(), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "chat.delivery.http.Chat: uc.Chat: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// History godoc
// @Summary     Chat history
// @Description Returns the user's stored turns, oldest first, and the conversation summary if one exists.
// @Tags        Chat
// @Produce     json
// @Param       user_id query string false "User id (default: anonymous)"
// @Param       limit   query int    false "Number of turns (default: 50, max: 500)"
// @Success     200 {object} historyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := req.toScope()
	output, err := h.uc.History(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "chat.delivery.http.History: uc.History: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newHistoryResp(sc, output))
}
