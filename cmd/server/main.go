package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rongwang/seabirds-server/internal/api"
	"github.com/rongwang/seabirds-server/internal/config"
	"github.com/rongwang/seabirds-server/internal/repository"
	"github.com/rongwang/seabirds-server/internal/service"
	"github.com/rongwang/seabirds-server/internal/utils"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	logger := utils.NewLogger(cfg.Log.Level, cfg.Log.Format)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// run returns only after its deferred cleanup has finished
	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *utils.Logger) error {
	// Create repository
	var repo repository.Repository
	switch cfg.Store.Backend {
	case config.BackendMemory:
		logger.Warn("using in-memory store, data is lost on restart")
		repo = repository.NewMemoryRepository()
	default:
		db, err := config.SetupDatabase(cfg)
		if err != nil {
			return fmt.Errorf("failed to set up database: %w", err)
		}
		defer db.Close()

		logger.Info("connected to database", "host", cfg.Database.Host, "database", cfg.Database.DBName)
		repo = repository.NewPostgresRepository(db)
	}

	// Create service
	svc := service.NewDefaultService(repo)

	// Create API handler and router
	gin.SetMode(cfg.Server.Mode)
	handler := api.NewHandler(svc, logger)
	router := api.NewRouter(handler, logger, cfg.Server.StaticDir)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      api.WithCORS(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	logger.Info("starting HTTP server", "port", cfg.Server.Port, "backend", cfg.Store.Backend)
	return serve(server, quit, cfg.Server.ShutdownTimeout, logger)
}

// serve runs server until quit fires or ListenAndServe fails. A listen
// failure is returned to the caller instead of exiting the process.
func serve(server *http.Server, quit <-chan os.Signal, shutdownTimeout time.Duration, logger *utils.Logger) error {
	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-quit:
	}

	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
