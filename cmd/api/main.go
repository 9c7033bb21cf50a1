package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/voxelified/mellow-api/docs/api"
	"github.com/voxelified/mellow-api/internal/rest"
	"github.com/voxelified/mellow-api/internal/setup"
	"go.uber.org/zap"
)

// APILogDir specifies where API server log files are stored.
const APILogDir = "logs/api_logs"

// Server timeouts.
const (
	ReadTimeout     = 5 * time.Second
	WriteTimeout    = 10 * time.Second
	ShutdownTimeout = 30 * time.Second
)

//	@title			Mellow API
//	@version		1.0
//	@description	REST API for Mellow role binds

//	@BasePath	/v1

// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Session token must be provided as: Bearer <token>
func main() {
	// Initialize application with required dependencies
	app, err := setup.InitializeApp(context.Background(), APILogDir)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Cleanup()

	// Create server
	handler := rest.NewServer(app.Config, app.DB, app.RoAPI, app.Guard, app.Logger)

	// Get server address from config
	addr := fmt.Sprintf("%s:%d", app.Config.API.Server.Host, app.Config.API.Server.Port)

	// Create HTTP server with timeouts
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("API server started on %s", addr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Logger.Error("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	app.Logger.Info("Shutting down API server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		app.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	app.Logger.Info("Server gracefully stopped")
}
