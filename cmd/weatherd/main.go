package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/skg97072-hub/weather-dashboard-backend/internal/adapter/httpapi"
	kafkaadapter "github.com/skg97072-hub/weather-dashboard-backend/internal/adapter/kafka"
	"github.com/skg97072-hub/weather-dashboard-backend/internal/adapter/power"
	"github.com/skg97072-hub/weather-dashboard-backend/internal/config"
	"github.com/skg97072-hub/weather-dashboard-backend/internal/observability"
	"github.com/skg97072-hub/weather-dashboard-backend/internal/probability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	client := power.NewClient(cfg, metrics, logger)
	source := power.NewCachedSource(client, cfg.PowerCacheSize, metrics)
	logger.Info("nasa power source ready",
		"base_url", cfg.PowerBaseURL, "cache_size", cfg.PowerCacheSize, "timeout", cfg.PowerTimeout)

	// Results publishing is feature-flagged via KAFKA_ENABLED / KAFKA_BROKERS.
	var publisher probability.ResultPublisher
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		publisher = writer
		logger.Info("kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaResultsTopic)
	} else {
		logger.Info("kafka publishing disabled")
	}

	svc := probability.New(source, publisher, logger, metrics)

	srv := httpapi.NewServer(cfg, svc, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("http server listening", "addr", cfg.HTTPAddr)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
