package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/catalog"
	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/config"
	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/metrics"
	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/scheduler"
	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/scoreboard"
	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/server"
	"github.com/dlawocjf0837-debug/Sports-day---Joongwon/internal/sheet"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logger
	setupLogger()

	log.Info().Msg("Starting sports day scoreboard")

	// Load configuration
	cfg := config.MustLoad()
	log.Info().
		Str("env", cfg.AppEnv).
		Str("log_level", cfg.LogLevel).
		Dur("poll_interval", cfg.PollInterval).
		Msg("Configuration loaded")

	// Create context that listens for cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info().Msg("Received shutdown signal, gracefully shutting down...")
		cancel()
	}()

	// Load the fixed program and the in-memory board
	events := catalog.Events()
	store := scoreboard.NewStore()
	log.Info().
		Int("events", len(events)).
		Int("classes", len(catalog.Classes())).
		Msg("Program catalog loaded")

	// Initialize sheet client
	client := sheet.NewClient(cfg.HTTPTimeout)
	log.Info().Msg("Sheet client initialized")

	// The API server reports poller health, and the poller pushes fresh
	// state to the server's websocket clients. The sched variable is
	// assigned before either side starts serving.
	var sched *scheduler.Scheduler
	srv := server.New(cfg, store, events, func() scheduler.Status {
		return sched.Status()
	})
	sched = scheduler.NewScheduler(cfg, client, store, srv.BroadcastState)

	// Start metrics HTTP server
	if cfg.EnableMetrics {
		go startMetricsServer(cfg.MetricsAddr())
	}

	// Update system uptime metric
	startTime := time.Now()
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				metrics.SystemUptime.Set(time.Since(startTime).Seconds())
			case <-ctx.Done():
				return
			}
		}
	}()

	// Start polling the sheet
	log.Info().Msg("Starting sheet poller...")
	if err := sched.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start sheet poller")
	}

	// Start the API server
	srv.Start()

	// Keep running until context is cancelled
	<-ctx.Done()

	// Graceful shutdown: stop producing new state first, then stop serving
	log.Info().Msg("Shutting down poller...")
	sched.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}

	log.Info().Msg("Scoreboard shutdown complete")
}

// setupLogger configures the zerolog logger
func setupLogger() {
	// Pretty console logging in development
	if os.Getenv("APP_ENV") == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}

	// Set log level
	level := zerolog.InfoLevel
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		parsedLevel, err := zerolog.ParseLevel(lvl)
		if err == nil {
			level = parsedLevel
		}
	}
	zerolog.SetGlobalLevel(level)

	log.Info().
		Str("level", level.String()).
		Msg("Logger initialized")
}

// startMetricsServer starts the Prometheus metrics HTTP server
func startMetricsServer(addr string) {
	http.Handle("/metrics", promhttp.Handler())

	// Health check endpoint
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	log.Info().Str("addr", addr).Msg("Starting metrics server")

	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Error().Err(err).Msg("Metrics server failed")
	}
}
