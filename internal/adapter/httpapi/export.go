package httpapi

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/skg97072-hub/weather-dashboard-backend/internal/domain"
)

// parseExportQuery builds a query from export query-string parameters.
// Threshold is fixed at the default; conditions arrive as one comma-separated
// value.
func parseExportQuery(r *http.Request) (domain.WeatherQuery, error) {
	qs := r.URL.Query()

	lat, err := strconv.ParseFloat(qs.Get("lat"), 64)
	if err != nil {
		return domain.WeatherQuery{}, &domain.ValidationError{Message: "lat must be a number"}
	}
	lng, err := strconv.ParseFloat(qs.Get("lng"), 64)
	if err != nil {
		return domain.WeatherQuery{}, &domain.ValidationError{Message: "lng must be a number"}
	}

	var conditions []string
	for _, c := range strings.Split(qs.Get("conditions"), ",") {
		if c != "" {
			conditions = append(conditions, c)
		}
	}

	q := domain.WeatherQuery{
		Latitude:   lat,
		Longitude:  lng,
		Date:       qs.Get("date"),
		Threshold:  defaultThreshold,
		Conditions: conditions,
	}
	return q, q.Validate()
}

func (s *Server) handleExportJSON(w http.ResponseWriter, r *http.Request) {
	q, err := parseExportQuery(r)
	if err != nil {
		s.metrics.ValidationFailures.Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := s.evaluator.Evaluate(r.Context(), q)
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to serialize response")
		return
	}

	s.metrics.ExportsTotal.WithLabelValues("json").Inc()
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="weather_data.json"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.logger.Warn("json export write failed", "error", err)
	}
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	q, err := parseExportQuery(r)
	if err != nil {
		s.metrics.ValidationFailures.Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := s.evaluator.Evaluate(r.Context(), q)

	s.metrics.ExportsTotal.WithLabelValues("csv").Inc()
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="weather_data.csv"`)
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"parameter", "condition", "value", "raw"})
	for _, p := range resp.Probabilities {
		raw := ""
		if p.Raw != nil {
			raw = strconv.FormatFloat(*p.Raw, 'f', -1, 64)
		}
		_ = cw.Write([]string{string(p.Parameter), string(p.Condition), strconv.Itoa(p.Value), raw})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		s.logger.Warn("csv export write failed", "error", err)
	}
}
