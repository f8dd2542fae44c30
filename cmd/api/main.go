package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"example.com/mergington/internal/api"
	"example.com/mergington/internal/config"
	"example.com/mergington/internal/domain"
	"example.com/mergington/internal/events"
	"example.com/mergington/internal/logging"
	"example.com/mergington/internal/observability"
	"example.com/mergington/internal/registry"
	httptransport "example.com/mergington/internal/transport/http"
)

const serviceName = "activities-api"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New("info", "json").Fatal("config load failed", zap.Error(err))
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	defer logger.Sync()

	tracerProvider, err := observability.NewTraceProvider(observability.TracingConfig{
		Enabled:      cfg.Tracing.Enabled,
		Exporter:     cfg.Tracing.Exporter,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRate:   cfg.Tracing.SampleRate,
		ServiceName:  serviceName,
	})
	if err != nil {
		logger.Fatal("tracing init failed", zap.Error(err))
	}

	seed := registry.DefaultActivities()
	if cfg.SeedFile != "" {
		seed, err = registry.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			logger.Fatal("seed load failed", zap.String("path", cfg.SeedFile), zap.Error(err))
		}
	}
	store := registry.NewInMemoryStore(seed)

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.EventsEnabled() {
		kafkaPublisher := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.RosterTopic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		logger.Info("roster events enabled",
			zap.Strings("brokers", cfg.KafkaBrokers),
			zap.String("topic", cfg.RosterTopic))
	}

	service := domain.NewService(store, publisher, logger)

	handler := api.NewHandler(service)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Recover sits innermost so the logging, metrics, and tracing wrappers
	// all observe the 500 it writes.
	wrapped := httptransport.Chain(mux,
		httptransport.RequestID(),
		httptransport.Logging(logger),
		httptransport.Metrics(mux),
		httptransport.Tracing(tracerProvider.Tracer()),
		httptransport.Recover(logger),
	)

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:      cfg.HTTPAddress,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}, wrapped)

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("activities service listening",
			zap.String("address", cfg.HTTPAddress),
			zap.Int("activities", len(seed)))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-shutdownCh
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		logger.Error("tracer shutdown failed", zap.Error(err))
	}
}
