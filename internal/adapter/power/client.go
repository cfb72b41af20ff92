// Package power fetches daily point measurements from the NASA POWER API.
package power

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/skg97072-hub/weather-dashboard-backend/internal/config"
	"github.com/skg97072-hub/weather-dashboard-backend/internal/domain"
	"github.com/skg97072-hub/weather-dashboard-backend/internal/observability"
)

// fillValue marks missing measurements in POWER responses. Anything at or
// below it is treated as absent so the fallback generator applies.
const fillValue = -999.0

// Client implements domain.ParameterSource against the NASA POWER daily
// point endpoint. A circuit breaker keeps a dead upstream from being hammered;
// callers already degrade to synthetic data on any error.
type Client struct {
	baseURL    string
	community  string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a POWER client from config.
func NewClient(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		baseURL:   cfg.PowerBaseURL,
		community: cfg.PowerCommunity,
		httpClient: &http.Client{
			Timeout: cfg.PowerTimeout,
		},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "nasa-power",
			MaxRequests: 5,
			Interval:    1 * time.Minute,
			Timeout:     2 * time.Minute,
		}),
		metrics: metrics,
		logger:  logger,
	}
}

// Fetch retrieves the requested parameters for a single day. Only the exact
// requested date's value is extracted; fill values are dropped. Parameters
// missing from the returned map simply had no data.
func (c *Client) Fetch(ctx context.Context, lat, lng float64, date string, params []domain.ParameterCode) (domain.ParameterValues, error) {
	codes := make([]string, len(params))
	for i, p := range params {
		codes[i] = string(p)
	}
	compactDate := strings.ReplaceAll(date, "-", "")

	query := url.Values{
		"parameters": {strings.Join(codes, ",")},
		"community":  {c.community},
		"longitude":  {formatCoord(lng)},
		"latitude":   {formatCoord(lat)},
		"start":      {compactDate},
		"end":        {compactDate},
		"format":     {"JSON"},
	}

	start := time.Now()
	decoded, err := c.doRequest(ctx, c.baseURL+"?"+query.Encode())
	c.metrics.UpstreamDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.UpstreamRequests.WithLabelValues("error").Inc()
		return nil, err
	}

	values := make(domain.ParameterValues, len(params))
	for _, p := range params {
		series, ok := decoded.Properties.Parameter[string(p)]
		if !ok {
			continue
		}
		v, ok := series[compactDate]
		if !ok || v <= fillValue {
			continue
		}
		values[p] = v
	}

	outcome := "success"
	if len(values) == 0 {
		outcome = "empty"
	}
	c.metrics.UpstreamRequests.WithLabelValues(outcome).Inc()
	return values, nil
}

func (c *Client) doRequest(ctx context.Context, fullURL string) (*response, error) {
	result, err := c.breaker.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("power request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			return nil, fmt.Errorf("power API error: status %d: %s", resp.StatusCode, body)
		}

		var decoded response
		if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		return &decoded, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*response), nil
}

// formatCoord renders a coordinate with the shortest exact decimal form.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// POWER API response types. Parameter maps code -> compact date ("20240115")
// -> scalar.

type response struct {
	Properties struct {
		Parameter map[string]map[string]float64 `json:"parameter"`
	} `json:"properties"`
}
