package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"investment-dashboard/internal/config"
	"investment-dashboard/internal/server"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment")
	}

	cfg := config.Load()
	slog.SetDefault(slog.New(newHandler(cfg)))

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	comps, err := server.BuildComponents(ctx, cfg, prometheus.DefaultRegisterer)
	if err != nil {
		slog.Error("failed to build report pipeline", "error", err)
		os.Exit(1)
	}
	defer comps.Close()

	// Warm the cache so the first request does not pay for the load. A
	// failure here is not fatal, the next request retries.
	if _, err := comps.Datasets.Dataset(ctx); err != nil {
		slog.Warn("initial dataset load failed", "error", err)
	}

	e := server.NewRouter(ctx, cfg, comps, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)

	if err := server.Run(ctx, cfg, e); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func newHandler(cfg *config.Config) slog.Handler {
	if cfg.IsDevelopment() {
		return slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
}
