package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"trip-date-interpreter/internal/interpretation"
	interpretationHTTP "trip-date-interpreter/internal/interpretation/delivery/http"
	"trip-date-interpreter/internal/interpretation/searchmeta"
	"trip-date-interpreter/internal/interpretation/usecase"
	"trip-date-interpreter/internal/model"
	"trip-date-interpreter/pkg/lexdate"
)

// setupInterpretationDomain initializes the interpretation domain and
// registers its routes under the given group.
func (srv *HTTPServer) setupInterpretationDomain(ctx context.Context, rg *gin.RouterGroup) error {
	production := model.Environment(srv.environment).IsProduction()

	// 1. Deriver
	deriver := searchmeta.New(srv.horizonMonths, srv.rollingMonths)

	// 2. UseCase
	uc := usecase.New(srv.l, usecase.Config{
		Parser:          interpretation.LexicalParserFunc(lexdate.Parse),
		Deriver:         deriver,
		DefaultTimezone: srv.defaultTimezone,
		CacheSize:       srv.cacheSize,
		Production:      production,
	})

	// 3. HTTP Handler + routes
	h := interpretationHTTP.New(srv.l, uc, production)
	interpretationHTTP.RegisterRoutes(rg, h)

	srv.l.Infof(ctx, "Interpretation domain registered at /tools/interpret")
	return nil
}
