// Package kafka publishes computed weather responses for downstream
// analytics consumers.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/skg97072-hub/weather-dashboard-backend/internal/config"
	"github.com/skg97072-hub/weather-dashboard-backend/internal/domain"
)

// Writer produces computed responses to the results topic.
// It implements probability.ResultPublisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured results topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaResultsTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// Publish serializes and produces one computed response. The message key is
// the response's deterministic ID, so consumers can deduplicate replays of
// the same query.
func (w *Writer) Publish(ctx context.Context, resp domain.WeatherResponse) error {
	msg, err := serializeToMessage(resp)
	if err != nil {
		return err
	}
	return w.writer.WriteMessages(ctx, msg)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a WeatherResponse into a Kafka message.
func serializeToMessage(resp domain.WeatherResponse) (kafkago.Message, error) {
	data, err := json.Marshal(resp)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize weather response: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(resp.ID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "query_date", Value: []byte(resp.Date)},
			{Key: "computed_at", Value: []byte(time.Now().UTC().Format(time.RFC3339))},
		},
	}, nil
}
