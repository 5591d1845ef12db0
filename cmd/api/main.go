// Package main is the entry point for the strollcast API server.
//
// It loads configuration, builds the upstream weather clients behind the
// resilient BaseClient, wires the planner service and handlers onto the core
// chassis, and serves HTTP with graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"strollcast/internal/api/handlers"
	"strollcast/internal/config"
	"strollcast/internal/core"
	"strollcast/internal/external"
	"strollcast/internal/planner"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// run encapsulates the startup lifecycle so that main() can cleanly exit on error.
func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := newLogger(cfg.Environment, cfg.LogLevel)
	logger.Info("strollcast API starting",
		"environment", cfg.Environment,
		"port", cfg.Server.Port,
	)

	// Upstream clients. Each provider gets its own circuit breaker so a
	// geocoding outage does not trip the forecast path.
	httpClient := &http.Client{Timeout: cfg.Upstream.Timeout}
	retry := external.RetryPolicy{
		MaxRetries: cfg.Upstream.MaxRetries,
		MinWait:    500 * time.Millisecond,
		MaxWait:    10 * time.Second,
	}

	geocodingBase := external.NewBaseClient(httpClient, "geocoding", retry, cfg.Upstream.UserAgent)
	weatherBase := external.NewBaseClient(httpClient, "weather", retry, cfg.Upstream.UserAgent)
	sunBase := external.NewBaseClient(httpClient, "sun", retry, cfg.Upstream.UserAgent)

	geocoder := external.NewGeocodingClient(geocodingBase, cfg.Upstream.GeocodingBaseURL)
	weather := external.NewWeatherClient(weatherBase, cfg.Upstream.WeatherBaseURL)
	sun := external.NewSunClient(sunBase, cfg.Upstream.WeatherBaseURL)

	svc := planner.NewService(geocoder, weather, weather, sun, logger)

	srv, err := core.NewServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	srv.HealthProbes = []core.HealthProbe{
		external.NewUpstreamProbe("geocoding", cfg.Upstream.GeocodingBaseURL+"/v1/search?name=ping&count=1", httpClient),
		external.NewUpstreamProbe("weather", cfg.Upstream.WeatherBaseURL+"/v1/forecast?latitude=0&longitude=0", httpClient),
	}

	walksHandler := handlers.NewWalksHandler(svc, srv.Validator, logger)
	outfitsHandler := handlers.NewOutfitsHandler(srv.Validator, logger)
	srv.V1Registrars = append(srv.V1Registrars,
		walksHandler.RegisterRoutes,
		outfitsHandler.RegisterRoutes,
	)

	srv.MountRoutes()

	return runHTTPServer(srv, cfg, logger)
}

// runHTTPServer starts the server in standard HTTP mode with graceful shutdown.
func runHTTPServer(srv *core.Server, cfg *config.Config, logger *slog.Logger) error {
	addr := ":" + cfg.Server.Port

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-shutdown:
		logger.Info("shutdown signal received", "signal", sig.String())
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	logger.Info("initiating graceful shutdown")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("server stopped cleanly")
	return nil
}

// newLogger creates a structured slog.Logger for the given environment and
// level. Local development gets a text handler; everything else emits JSON.
func newLogger(environment, level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if environment == "local" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
