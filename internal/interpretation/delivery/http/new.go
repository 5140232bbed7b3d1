package http

import (
	"github.com/gin-gonic/gin"

	"trip-date-interpreter/internal/interpretation"
	"trip-date-interpreter/pkg/log"
)

// Handler is the public interface for the interpretation HTTP delivery layer.
type Handler interface {
	Interpret(c *gin.Context)
	InterpretQuery(c *gin.Context)
}

type handler struct {
	l          log.Logger
	uc         interpretation.UseCase
	production bool
}

// New creates a new HTTP handler for the interpretation domain.
// In production mode internal error detail is suppressed from responses.
func New(l log.Logger, uc interpretation.UseCase, production bool) *handler {
	return &handler{
		l:          l,
		uc:         uc,
		production: production,
	}
}
