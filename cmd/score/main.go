// Command score evaluates weather condition probabilities for a single
// location and date from the command line, without running the HTTP server.
// By default it queries the NASA POWER API; with -offline it skips the
// upstream fetch and reports deterministic fallback scores only.
//
// Usage:
//
//	go run ./cmd/score -lat 30.5 -lng 50.1 -date 2024-01-15 \
//	  -conditions rain,hot -format json
package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/skg97072-hub/weather-dashboard-backend/internal/adapter/power"
	"github.com/skg97072-hub/weather-dashboard-backend/internal/config"
	"github.com/skg97072-hub/weather-dashboard-backend/internal/domain"
	"github.com/skg97072-hub/weather-dashboard-backend/internal/observability"
	"github.com/skg97072-hub/weather-dashboard-backend/internal/probability"
)

// offlineSource reports no upstream data so every parameter scores
// through the deterministic fallback path.
type offlineSource struct{}

func (offlineSource) Fetch(context.Context, float64, float64, string, []domain.ParameterCode) (domain.ParameterValues, error) {
	return nil, nil
}

func main() {
	lat := flag.Float64("lat", 0, "latitude in decimal degrees")
	lng := flag.Float64("lng", 0, "longitude in decimal degrees")
	date := flag.String("date", "", "query date (YYYY-MM-DD)")
	conditions := flag.String("conditions", "", "comma-separated condition keywords (default: temperature, precipitation, cloud cover)")
	threshold := flag.Int("threshold", 50, "probability threshold (0-100)")
	format := flag.String("format", "json", "output format: json or csv")
	offline := flag.Bool("offline", false, "skip the NASA POWER fetch and use fallback scores")
	flag.Parse()

	if err := run(*lat, *lng, *date, *conditions, *threshold, *format, *offline, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(lat, lng float64, date, conditions string, threshold int, format string, offline bool, out io.Writer) error {
	if format != "json" && format != "csv" {
		return fmt.Errorf("unsupported format %q", format)
	}

	q := domain.WeatherQuery{
		Latitude:  lat,
		Longitude: lng,
		Date:      date,
		Threshold: threshold,
	}
	if conditions != "" {
		q.Conditions = strings.Split(conditions, ",")
	}
	if err := q.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	metrics := observability.NewMetrics()

	var source domain.ParameterSource
	if offline {
		source = offlineSource{}
	} else {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		client := power.NewClient(cfg, metrics, logger)
		source = power.NewCachedSource(client, cfg.PowerCacheSize, metrics)
	}

	resp := probability.New(source, nil, logger, metrics).Evaluate(context.Background(), q)

	if format == "csv" {
		return writeCSV(out, resp)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func writeCSV(out io.Writer, resp domain.WeatherResponse) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"parameter", "condition", "value", "raw"}); err != nil {
		return err
	}
	for _, p := range resp.Probabilities {
		raw := ""
		if p.Raw != nil {
			raw = strconv.FormatFloat(*p.Raw, 'f', -1, 64)
		}
		if err := w.Write([]string{string(p.Parameter), string(p.Condition), strconv.Itoa(p.Value), raw}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
