package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"statementfetcher/internal/config"
	"statementfetcher/internal/run"
	"statementfetcher/internal/yahoo"
)

func main() {
	// Load .env if present; real environment variables win
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	runner := run.New(
		yahoo.NewClient(cfg.ProviderBaseURL),
		run.SystemClock(),
		os.Stdin,
		run.Options{
			OutputRoot:     cfg.OutputDir,
			ExportWorkbook: cfg.ExportWorkbook,
			// Bound the provider calls so a stalled fetch cannot hang the run
			FetchTimeout: time.Duration(cfg.FetchTimeoutSeconds) * time.Second,
		},
	)

	if err := runner.Run(ctx); err != nil {
		log.Fatalf("Run failed: %v", err)
	}
}
