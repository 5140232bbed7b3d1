package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the interpretation endpoints. Both verbs share the
// same contract; GET exists for quick manual probing.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/interpret", h.Interpret)
	rg.GET("/interpret", h.InterpretQuery)
}
