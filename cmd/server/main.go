// Tastewarp - Cultural Time-Travel Recommendation Service
// Copyright 2026 Tastewarp contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tastewarp/tastewarp

// Package main is the entry point for the Tastewarp server.
//
// Tastewarp takes a handful of someone's current cultural favorites and a
// target year between 1900 and 2025, asks the Qloo cultural-affinity API
// what their taste would map to in that era, writes them a short
// personalized essay about it, scores how far they have drifted from the
// present, and stores the whole warp for later retrieval.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: defaults, optional YAML file, environment variables (Koanf v2)
//  2. Storage: BadgerDB warp store
//  3. Qloo client: search and insights with a circuit breaker
//  4. Essay generator: OpenAI chat completions with static decade fallbacks
//  5. Warp service: bundle, essay, divergence, persistence
//  6. HTTP server: chi router under a suture supervisor
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (QLOO_API_KEY, OPENAI_API_KEY, PORT, ...)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// Both upstream API keys are optional. Without a Qloo key the search
// endpoint returns an error and warps fall back to curated per-decade
// recommendations; without an OpenAI key essays come from the same curated
// tables. The service always produces a complete warp.
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM: it stops
// accepting new connections, waits for in-flight requests (10s timeout),
// then closes the warp store.
//
// # Example Usage
//
//	export QLOO_API_KEY=your-qloo-key
//	export OPENAI_API_KEY=your-openai-key
//	export DATA_DIR=/data/tastewarp
//	./tastewarp
//
// # Port 1925
//
// The default port 1925 is a nod to the supported year range (1900-2025).
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tastewarp/tastewarp/internal/api"
	"github.com/tastewarp/tastewarp/internal/config"
	"github.com/tastewarp/tastewarp/internal/essay"
	"github.com/tastewarp/tastewarp/internal/logging"
	"github.com/tastewarp/tastewarp/internal/qloo"
	"github.com/tastewarp/tastewarp/internal/storage"
	"github.com/tastewarp/tastewarp/internal/supervisor"
	"github.com/tastewarp/tastewarp/internal/warp"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("storage_path", cfg.Storage.Path).
		Bool("qloo_configured", cfg.Qloo.Configured()).
		Bool("openai_configured", cfg.OpenAI.Configured()).
		Msg("Configuration loaded")

	store, err := storage.Open(&cfg.Storage)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open warp store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing warp store")
		}
	}()

	qlooClient := qloo.NewClient(&cfg.Qloo)
	resolver := qloo.NewResolver(qlooClient)
	essays := essay.NewGenerator(cfg.OpenAI)
	warps := warp.NewService(resolver, essays, store)

	handler := api.NewHandler(cfg, qlooClient, warps, store)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  2 * cfg.Server.Timeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog compatibility
	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.Add(supervisor.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor error")
		}
	}

	// Drain until the supervisor has fully stopped
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}
