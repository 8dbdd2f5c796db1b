// Package main provides the entry point for the video fetch service.
// @title Video Fetch API
// @version 1.0
// @description HTTP API that analyzes a media URL and returns a categorized summary of downloadable formats and video metadata.

// @contact.name API Support
// @contact.url http://www.example.com/support
// @contact.email support@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/vidfetch/vidfetch/docs" // Import for swagger docs
	"github.com/vidfetch/vidfetch/internal/api/handlers"
	"github.com/vidfetch/vidfetch/internal/api/router"
	"github.com/vidfetch/vidfetch/internal/config"
	"github.com/vidfetch/vidfetch/internal/services/analyzer"
	"github.com/vidfetch/vidfetch/internal/services/extractor"
	"github.com/vidfetch/vidfetch/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := utils.GetLogger()
	logger.Info("Starting video fetch service")

	// Initialize extraction backend
	backend, err := extractor.New(&cfg.Extractor)
	if err != nil {
		logger.Fatalf("Failed to initialize extraction backend: %v", err)
	}
	logger.Infof("Using %s extraction backend", backend.Name())

	// Initialize analyzer service
	analyzerService := analyzer.New(backend)

	// Initialize handlers
	infoHandler := handlers.NewInfoHandler()
	videoHandler := handlers.NewVideoHandler(analyzerService)

	// Initialize router
	r := router.NewRouter(cfg, infoHandler, videoHandler)

	// Start server
	go func() {
		logger.Infof("Starting server on %s:%s", cfg.Server.Host, cfg.Server.Port)
		if err := r.Start(); err != nil {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server shutdown complete")
}
