package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/kumarlokesh/sysd/exercises/compressed-trie/internal/api"
	"github.com/kumarlokesh/sysd/exercises/compressed-trie/internal/config"
	"github.com/kumarlokesh/sysd/exercises/compressed-trie/internal/logging"
	"github.com/kumarlokesh/sysd/exercises/compressed-trie/internal/trie"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	if *configPath == "" {
		*configPath = config.GetConfigPath()
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	logger, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create logger")
	}
	log.Logger = logger

	dict := trie.New()
	if cfg.Trie.SeedFile != "" {
		f, err := os.Open(cfg.Trie.SeedFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.Trie.SeedFile).Msg("Failed to open seed file")
		}
		n, err := dict.InsertFrom(f)
		f.Close()
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.Trie.SeedFile).Msg("Failed to load seed file")
		}
		log.Info().Int("words", n).Str("file", cfg.Trie.SeedFile).Msg("Seeded trie")
	}

	server := api.NewServer(cfg.Server, dict, logger)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
		return
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("Received signal, shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}
}
