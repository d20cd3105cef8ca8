package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pdf-summary-agent/internal/config"
	"pdf-summary-agent/internal/handler"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	// Wiring
	container, err := config.NewContainer()
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	logger := container.GetLogger()

	// Handlers
	pageHandler := handler.NewPageHandler(
		container.SummaryService,
		container.Config.GetModelName(),
		logger,
	)

	summaryHandler := handler.NewSummaryHandler(
		container.SummaryService,
		container.Config.GetMaxFileSize(),
		logger,
	)

	// Router
	router := handler.NewRouter(
		pageHandler,
		summaryHandler,
		handler.NewRequestLogger(logger),
		container.Config.GetAllowedOrigins(),
	)

	server := &http.Server{
		Addr:              ":" + container.Config.GetServerPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Server listening",
			"address", server.Addr,
			"model", container.Config.GetModelName(),
			"ollama_url", container.Config.GetOllamaURL(),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", err)
		os.Exit(1)
	}

	logger.Info("Server exited")
}
