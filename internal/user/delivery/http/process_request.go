package http

import (
	"github.com/gin-gonic/gin"
)

// processRegisterReq binds the register body. Field checks live in the use case.
func (h *handler) processRegisterReq(c *gin.Context) (registerReq, error) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errMissingFields
	}
	return req, nil
}

func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errMissingCredentials
	}
	return req, nil
}
