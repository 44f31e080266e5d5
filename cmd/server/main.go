package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/oniani/pt/internal/api"
	"github.com/oniani/pt/internal/config"
	"github.com/oniani/pt/internal/dictionary"
	"github.com/oniani/pt/internal/prefixtree"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Server.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	dict := dictionary.New(prefixtree.Config{AlphabetSize: cfg.Trie.AlphabetSize})

	if cfg.Dictionary.WordFile != "" {
		loaded, skipped, err := dict.LoadFile(cfg.Dictionary.WordFile)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Dictionary.WordFile).Msg("Failed to load word list")
		}
		log.Info().
			Int("loaded", loaded).
			Int("skipped", skipped).
			Uint64("nodes_total", dict.Stats().NodesTotal).
			Msg("Word list loaded")
	}

	server := api.NewServer(cfg.Server.Addr(), dict)

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	go func() {
		if err := server.Start(); err != nil {
			serverErrors <- err
		}
	}()

	// Channel to listen for interrupt or terminate signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatal().Err(err).Msg("Server error")
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	// Create a deadline for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}
	log.Info().Msg("Server stopped")
}
