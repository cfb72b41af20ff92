// Package probability orchestrates the scoring pipeline for one query:
// resolve conditions, fetch upstream data, score, synthesize the trend, and
// assemble the response.
package probability

import (
	"context"
	"log/slog"

	"github.com/skg97072-hub/weather-dashboard-backend/internal/domain"
	"github.com/skg97072-hub/weather-dashboard-backend/internal/observability"
)

// ResultPublisher delivers computed responses to downstream consumers.
type ResultPublisher interface {
	Publish(ctx context.Context, resp domain.WeatherResponse) error
}

// Service evaluates weather probability queries. It is stateless; the only
// shared mutable resource is whatever cache the parameter source carries.
type Service struct {
	source    domain.ParameterSource
	publisher ResultPublisher
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a Service. Pass a nil publisher to disable result publishing.
func New(source domain.ParameterSource, publisher ResultPublisher, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		source:    source,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
	}
}

// Evaluate runs the pipeline for a validated query. Upstream failures degrade
// to synthetic scores and are never surfaced to the caller: identical queries
// always produce a complete response.
func (s *Service) Evaluate(ctx context.Context, q domain.WeatherQuery) domain.WeatherResponse {
	s.metrics.EvaluationsTotal.Inc()

	params := domain.ResolveConditions(q.Conditions)

	values, err := s.source.Fetch(ctx, q.Latitude, q.Longitude, q.Date, params)
	if err != nil {
		s.logger.Warn("upstream fetch failed, scoring synthetically",
			"lat", q.Latitude,
			"lng", q.Longitude,
			"date", q.Date,
			"error", err,
		)
		values = nil
	}

	probabilities := domain.ScoreAll(q, params, values)
	for _, p := range probabilities {
		if p.Raw == nil {
			s.metrics.FallbackScores.Inc()
		}
	}

	trend := domain.BuildTrend(q.Latitude, q.Longitude, params)
	resp := domain.BuildResponse(q, params, probabilities, trend)

	s.publish(ctx, resp)
	return resp
}

// publish is best-effort: a publishing failure never fails the request.
func (s *Service) publish(ctx context.Context, resp domain.WeatherResponse) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, resp); err != nil {
		s.logger.Warn("result publish failed", "id", resp.ID, "error", err)
		return
	}
	s.metrics.ResultsPublished.Inc()
}
