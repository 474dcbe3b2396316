package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/morrisrob/mke-flavors/internal/alexa"
	"github.com/morrisrob/mke-flavors/internal/config"
	"github.com/morrisrob/mke-flavors/internal/directory"
	"github.com/morrisrob/mke-flavors/internal/geocoding"
	"github.com/morrisrob/mke-flavors/internal/metrics"
	"github.com/morrisrob/mke-flavors/internal/resolver"
	"github.com/morrisrob/mke-flavors/internal/skill"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	// Create a context that will be canceled when an interrupt signal is received.
	// This allows for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load application configuration.
	cfg := config.MustLoad()

	// Set up the logger based on the environment.
	logger := setupLogger(cfg.Env)

	// Create a separate registry for metrics with exemplar
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	// Create geocoding provider using factory pattern based on configuration
	// This allows runtime selection between different providers (HERE, Google, Nominatim)
	providerConfig := geocoding.ProviderConfig{
		Type:      geocoding.ProviderType(cfg.ProviderType),
		AppID:     cfg.GeocoderAppID,
		AppCode:   cfg.GeocoderAppCode,
		APIKey:    cfg.GeocoderAPIKey,
		RateLimit: cfg.GeocoderRateLimit,
		Timeout:   cfg.UpstreamTimeout,
		Logger:    logger,
	}

	geoProvider, err := geocoding.NewProvider(providerConfig)
	if err != nil {
		log.Fatalf("Failed to create geocoding provider: %v", err)
	}

	logger.InfoContext(ctx, "Geocoding provider initialized", "type", cfg.ProviderType)

	// Wire the upstream clients and the skill.
	dirClient := directory.NewClient(cfg.DirectoryBaseURL, cfg.UpstreamTimeout, logger)
	addressClient := alexa.NewAddressClient(cfg.UpstreamTimeout, logger)
	proximity := resolver.NewResolver(logger, geoProvider, cfg.ProviderType, dirClient, appMetrics)
	flavorsSkill := skill.New(logger, dirClient, addressClient, proximity, appMetrics)

	server := newServer(logger, reg, flavorsSkill, cfg.Port)

	// Log that the application has started.
	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

	go func() {
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "Skill server failed", "error", serveErr)
			stop()
		}
	}()

	// Wait for the context to be canceled (e.g., by Ctrl+C).
	<-ctx.Done()

	// Log that a shutdown signal has been received.
	logger.InfoContext(ctx, "Shutdown signal received. Stopping application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = server.Shutdown(shutdownCtx); err != nil {
		logger.ErrorContext(ctx, "Failed to shut the skill server down cleanly", "error", err)
	}

	// Log graceful shutdown completion.
	logger.InfoContext(ctx, "Application stopped gracefully.")
}

// newServer builds the HTTP server carrying the skill endpoint alongside the
// health check and metrics routes.
func newServer(
	logger *slog.Logger,
	reg *prometheus.Registry,
	flavorsSkill *skill.Skill,
	port int,
) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /alexa", handleSkillRequest(logger, flavorsSkill))
	mux.HandleFunc("GET /healthz", func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
		if _, err := writer.Write([]byte("OK")); err != nil {
			logger.Error("failed to write reply", "error", err)
		}
	})
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	readTimeout := 5
	writeTimeout := 15
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  time.Duration(readTimeout) * time.Second,
		WriteTimeout: time.Duration(writeTimeout) * time.Second,
	}
}

// handleSkillRequest decodes the platform envelope, dispatches it, and
// encodes the spoken response.
func handleSkillRequest(logger *slog.Logger, flavorsSkill *skill.Skill) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		var envelope alexa.RequestEnvelope
		if err := json.NewDecoder(request.Body).Decode(&envelope); err != nil {
			logger.ErrorContext(request.Context(), "Failed to decode request envelope", "error", err)
			http.Error(writer, "malformed request envelope", http.StatusBadRequest)
			return
		}

		response := flavorsSkill.Dispatch(request.Context(), &envelope)

		writer.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(writer).Encode(response); err != nil {
			logger.ErrorContext(request.Context(), "Failed to encode response envelope", "error", err)
		}
	}
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var logger *slog.Logger

	switch env {
	case envLocal:
		logger = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case envProd:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelWarn,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)
	default:
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelError,
			}),
		)

		logger.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return logger
}
