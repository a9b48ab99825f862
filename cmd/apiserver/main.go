// Package main provides a standalone REST API server for deck validation.
// It exposes the validation pipeline over HTTP so other tools can call it
// without shelling out to the CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/edhtools/deckwarden/internal/api"
	"github.com/edhtools/deckwarden/internal/banlist"
	"github.com/edhtools/deckwarden/internal/combo"
	"github.com/edhtools/deckwarden/internal/config"
	"github.com/edhtools/deckwarden/internal/deck"
	"github.com/edhtools/deckwarden/internal/logging"
	"github.com/edhtools/deckwarden/internal/scoring"
	"github.com/edhtools/deckwarden/internal/validator"
)

var (
	port       = flag.Int("port", 0, "API server port (default: from config)")
	configPath = flag.String("config", "", "Config file path (default: ~/.deckwarden/config.toml)")
)

func main() {
	flag.Parse()

	fmt.Println("Deckwarden - REST API Server")
	fmt.Println("============================")
	fmt.Println()

	// Load configuration
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	finalPort := cfg.Server.Port
	if *port != 0 {
		finalPort = *port
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	moxfieldTimeout, err := cfg.GetMoxfieldTimeout()
	if err != nil {
		log.Fatalf("Invalid moxfield timeout: %v", err)
	}
	spellbookTimeout, err := cfg.GetSpellbookTimeout()
	if err != nil {
		log.Fatalf("Invalid spellbook timeout: %v", err)
	}

	// Wire the validation pipeline
	loader := deck.NewLoader(deck.NewClient(cfg.Moxfield.BaseURL, moxfieldTimeout), logger)
	combos := combo.NewClient(cfg.Spellbook.URL, spellbookTimeout, cfg.ResolveCSRFToken(), logger)
	lists := banlist.NewCache(logger)

	service := validator.New(validator.Config{
		Limits: scoring.Limits{
			Min: cfg.Scoring.MinPoints,
			Max: cfg.Scoring.MaxPoints,
		},
		ReservedPath:     cfg.Lists.Reserved,
		GameChangersPath: cfg.Lists.GameChangers,
	}, logger, loader, combos, lists)

	// Create API server
	server := api.NewServer(&api.Config{Port: finalPort}, service, logger)

	if err := server.Start(); err != nil {
		log.Fatalf("Failed to start API server: %v", err)
	}

	fmt.Printf("API server running at http://localhost:%d\n", finalPort)
	fmt.Println("Press Ctrl+C to stop")
	fmt.Println()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	fmt.Println()
	fmt.Println("Shutting down...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}

	fmt.Println("API server stopped.")
}
