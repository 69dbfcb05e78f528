// Maestro gateway. Terminates client WebSockets and bridges them to the
// runtime's SSE streaming endpoint.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/maestro-ai/maestro/pkg/config"
	"github.com/maestro-ai/maestro/pkg/gateway"
	"github.com/maestro-ai/maestro/pkg/version"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	port := os.Getenv("GATEWAY_PORT")
	if port == "" {
		port = "8081"
	}

	logger.Info("Starting maestro gateway",
		"version", version.Full(),
		"port", port,
		"agent_url", cfg.AgentURL)

	gw := gateway.New(gateway.Config{
		AgentURL:       cfg.AgentURL,
		InternalAPIKey: cfg.InternalAPIKey,
		StreamTimeout:  cfg.AgentStreamTimeout,
		Logger:         logger,
	})
	router, err := gw.Router()
	if err != nil {
		logger.Error("Failed to build gateway router", "error", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Gateway listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		logger.Info("Shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		logger.Error("Server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Gateway shutdown failed", "error", err)
	}
	logger.Info("Maestro gateway stopped")
}
