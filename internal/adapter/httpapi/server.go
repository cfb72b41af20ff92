// Package httpapi exposes the weather probability API over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skg97072-hub/weather-dashboard-backend/internal/config"
	"github.com/skg97072-hub/weather-dashboard-backend/internal/domain"
	"github.com/skg97072-hub/weather-dashboard-backend/internal/observability"
)

// Evaluator runs the scoring pipeline for a validated query.
type Evaluator interface {
	Evaluate(ctx context.Context, q domain.WeatherQuery) domain.WeatherResponse
}

// Server wires the router, CORS, panic recovery, and access logging around
// the probability endpoints.
type Server struct {
	httpServer *http.Server
	evaluator  Evaluator
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewServer creates the HTTP server with all routes registered.
func NewServer(cfg *config.Config, evaluator Evaluator, logger *slog.Logger, metrics *observability.Metrics) *Server {
	s := &Server{
		evaluator: evaluator,
		logger:    logger,
		metrics:   metrics,
	}

	r := mux.NewRouter()
	r.MethodNotAllowedHandler = http.HandlerFunc(handleMethodNotAllowed)
	r.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.MethodNotAllowedHandler = http.HandlerFunc(handleMethodNotAllowed)
	api.HandleFunc("/weather", s.handleWeather).Methods(http.MethodPost)
	api.HandleFunc("/export/json", s.handleExportJSON).Methods(http.MethodGet)
	api.HandleFunc("/export/csv", s.handleExportCSV).Methods(http.MethodGet)

	var h http.Handler = r
	h = handlers.RecoveryHandler()(h)
	h = handlers.CORS(
		handlers.AllowedOrigins(cfg.CORSAllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
		handlers.AllowCredentials(),
	)(h)
	h = handlers.LoggingHandler(os.Stdout, h)

	s.httpServer = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      h,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second, // must outlast the upstream fetch
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Weather Probability API running",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

// weatherRequest is the wire form of a scoring request.
type weatherRequest struct {
	Lat        float64  `json:"lat"`
	Lng        float64  `json:"lng"`
	Date       string   `json:"date"`
	Threshold  *int     `json:"threshold"`
	Conditions []string `json:"conditions"`
}

// defaultThreshold applies when the request omits the field.
const defaultThreshold = 50

func (r weatherRequest) toQuery() domain.WeatherQuery {
	threshold := defaultThreshold
	if r.Threshold != nil {
		threshold = *r.Threshold
	}
	return domain.WeatherQuery{
		Latitude:   r.Lat,
		Longitude:  r.Lng,
		Date:       r.Date,
		Threshold:  threshold,
		Conditions: r.Conditions,
	}
}

func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	var req weatherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.metrics.ValidationFailures.Inc()
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	q := req.toQuery()
	if err := q.Validate(); err != nil {
		s.metrics.ValidationFailures.Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, s.evaluator.Evaluate(r.Context(), q))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response write
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
