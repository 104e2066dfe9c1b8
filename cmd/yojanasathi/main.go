// Package main provides the yojanasathi server entry point.
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

	"github.com/yojanasathi/yojanasathi/internal/catalog"
	"github.com/yojanasathi/yojanasathi/internal/config"
	"github.com/yojanasathi/yojanasathi/internal/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	port := flag.Int("port", 0, "HTTP listen port (default: settings file)")
	catalogPath := flag.String("catalog", "", "Catalog override file (default: embedded catalog)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	// Ensure data directory and settings exist
	if err := config.EnsureAll(); err != nil {
		log.Fatal().Err(err).Msg("Failed to ensure data directory")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load config, using defaults")
		cfg = config.Default()
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *catalogPath != "" {
		cfg.CatalogPath = *catalogPath
	}

	setupLogging(cfg.LogLevel, *debug)

	cat, err := loadCatalog(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load scheme catalog")
	}

	// Hot-reload the catalog when an override file is in use
	if cfg.CatalogPath != "" {
		w, err := catalog.NewWatcher(cat, cfg.CatalogPath)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to create catalog watcher")
		} else if err := w.Start(); err != nil {
			log.Warn().Err(err).Msg("Failed to start catalog watcher")
		} else {
			defer w.Stop()
			log.Info().Str("path", cfg.CatalogPath).Msg("Catalog file watcher started")
		}
	}

	svc := server.NewService(cfg, cat, Version)

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info().Msg("Shutting down yojanasathi")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := svc.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Shutdown error")
		}
	}()

	if err := svc.Start(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}

// setupLogging configures zerolog from the configured level, with the debug
// flag taking precedence.
func setupLogging(level string, debug bool) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	if debug {
		lvl = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true})
}

// loadCatalog loads the override file when configured, the embedded catalog
// otherwise.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath != "" {
		return catalog.LoadFile(cfg.CatalogPath)
	}
	return catalog.Load()
}
