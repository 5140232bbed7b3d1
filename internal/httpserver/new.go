package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"trip-date-interpreter/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// CORS / throttling
	allowedOrigins  []string
	rateLimitPerMin int

	// Interpreter knobs
	defaultTimezone string
	horizonMonths   int
	rollingMonths   int
	cacheSize       int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	AllowedOrigins  []string
	RateLimitPerMin int

	DefaultTimezone string
	HorizonMonths   int
	RollingMonths   int
	CacheSize       int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		allowedOrigins:  cfg.AllowedOrigins,
		rateLimitPerMin: cfg.RateLimitPerMin,
		defaultTimezone: cfg.DefaultTimezone,
		horizonMonths:   cfg.HorizonMonths,
		rollingMonths:   cfg.RollingMonths,
		cacheSize:       cfg.CacheSize,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
