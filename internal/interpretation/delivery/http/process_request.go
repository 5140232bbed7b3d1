package http

import (
	"github.com/gin-gonic/gin"
)

// processInterpretReq binds the POST body.
func (h *handler) processInterpretReq(c *gin.Context) (interpretReq, error) {
	var req interpretReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processInterpretQueryReq binds the GET query parameters.
func (h *handler) processInterpretQueryReq(c *gin.Context) (interpretQueryReq, error) {
	var req interpretQueryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
