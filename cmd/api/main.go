package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"trip-date-interpreter/config"
	_ "trip-date-interpreter/docs" // Swagger docs
	"trip-date-interpreter/internal/httpserver"
	"trip-date-interpreter/pkg/log"
)

// @title       Trip Date Interpreter API
// @description Resolves free-text travel date phrases into concrete calendar dates and flight-search metadata.
// @version     1
// @host        localhost:8789
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Trip Date Interpreter...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Default timezone: %s", cfg.Interpreter.DefaultTimezone)

	// 3. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		AllowedOrigins:  cfg.HTTPServer.AllowedOrigins,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,

		DefaultTimezone: cfg.Interpreter.DefaultTimezone,
		HorizonMonths:   cfg.Interpreter.HorizonMonths,
		RollingMonths:   cfg.Interpreter.RollingMonths,
		CacheSize:       cfg.Interpreter.CacheSize,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 4. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
