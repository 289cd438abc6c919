package http

import (
	"github.com/gin-gonic/gin"

	"sccse-chatbot/pkg/response"
)

// Register godoc
// @Summary     Register an account
// @Description Creates an account. The email is stored lowercased and must be unique.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Account data"
// @Success     201  {object} userResp
// @Failure     400  {object} response.Resp "Missing fields or user already exists"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "user.delivery.http.Register: uc.Register: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, newUserResp(messageRegistered, output.User))
}

// Login godoc
// @Summary     Log in
// @Description Checks the credentials and returns the account id to use as user_id in chat requests.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200  {object} userResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Invalid credentials"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "user.delivery.http.Login: uc.Login: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newUserResp(messageLoggedIn, output.User))
}
