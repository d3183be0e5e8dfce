package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	_ "modernc.org/sqlite"

	v1 "github.com/mediateca/mediateca/internal/api/v1"
	"github.com/mediateca/mediateca/internal/config"
	"github.com/mediateca/mediateca/internal/library"
	"github.com/mediateca/mediateca/internal/server"
	"github.com/mediateca/mediateca/internal/tv"
	"github.com/mediateca/mediateca/internal/watch"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// loadConfig reads the config file, falling back to the built-in
// defaults when the file does not exist.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

func runServer(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Create logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))

	// Ensure data directories exist
	for _, p := range []string{cfg.Library.Document, cfg.Watch.Path} {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}

	// Content catalog
	libraryStore := library.NewStore(cfg.Library.Document, logger.With("component", "library"))

	// Watch state database
	db, err := sql.Open("sqlite", cfg.Watch.Path)
	if err != nil {
		return fmt.Errorf("open watch db: %w", err)
	}
	defer func() { _ = db.Close() }()

	watchStore, err := watch.NewStore(db)
	if err != nil {
		return fmt.Errorf("watch store: %w", err)
	}

	// Live TV channel source
	source := tv.NewSource(tv.NewFetcher(cfg.TV.Channels), logger.With("component", "tv"))

	loadCtx, loadCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := source.Refresh(loadCtx); err != nil {
		logger.Warn("initial channel load failed", "source", cfg.TV.Channels, "error", err)
	}
	loadCancel()

	// HTTP setup
	mux := http.NewServeMux()
	apiV1 := v1.New(libraryStore, source, watchStore, logger, version)
	apiV1.RegisterRoutes(mux)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("mediatecad starting",
		"addr", addr,
		"document", cfg.Library.Document,
		"channels", cfg.TV.Channels,
		"log_level", cfg.Server.LogLevel,
	)

	srv := &http.Server{
		Addr:    addr,
		Handler: v1.RequestLogger(logger.With("component", "http"), mux),
	}

	runner := server.NewRunner(srv, source, time.Duration(cfg.TV.RefreshMinutes)*time.Minute, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runner.Run(ctx); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
