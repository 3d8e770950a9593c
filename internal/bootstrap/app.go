// Package bootstrap handles application initialization and lifecycle
// management for the omnibar service.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonesrussell/omnibar/internal/logger"
)

const (
	version         = "dev"
	shutdownTimeout = 10 * time.Second
)

// Start initializes and starts the omnibar service.
func Start() error {
	// Phase 1: Load config and create logger
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := CreateLogger(cfg, version)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Phase 2: Setup database
	db, err := SetupDatabase(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Error("Failed to close database", logger.Error(closeErr))
		}
	}()

	// Phase 3: Setup event publisher (optional)
	publisher := SetupEventPublisher(cfg, log)

	// Phase 4: Setup and run HTTP server
	server := SetupHTTPServer(cfg, db, publisher, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server",
			logger.String("host", cfg.Server.Host),
			logger.Int("port", cfg.Server.Port),
		)
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- serveErr
		}
	}()

	select {
	case err := <-errCh:
		log.Error("Server error", logger.Error(err))
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
		return fmt.Errorf("shutdown: %w", shutdownErr)
	}

	log.Info("Server exited")
	return nil
}
