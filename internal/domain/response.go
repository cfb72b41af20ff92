package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// WeatherResponse is the canonical response shape consumed by the transport
// and export layers. It is fully derived from the query that produced it.
// ID is internal metadata (message key for result publishing) and is not
// serialized to clients.
type WeatherResponse struct {
	ID            string             `json:"-"`
	LocationName  string             `json:"location_name"`
	Date          string             `json:"date"`
	Probabilities []ProbabilityEntry `json:"probabilities"`
	Trend         TrendSeries        `json:"trend"`
}

// BuildResponse composes the validated query, scores, and trend into the
// response shape. Pure assembly: parameter order is preserved from
// resolution through probabilities and trend.
func BuildResponse(q WeatherQuery, params []ParameterCode, probabilities []ProbabilityEntry, trend TrendSeries) WeatherResponse {
	return WeatherResponse{
		ID:            responseID(q.Latitude, q.Longitude, q.Date, params),
		LocationName:  fmt.Sprintf("%.4f, %.4f", q.Latitude, q.Longitude),
		Date:          q.Date,
		Probabilities: probabilities,
		Trend:         trend,
	}
}

// responseID produces a deterministic ID from the query's key fields.
// Re-evaluating the same query yields the same ID, so downstream consumers of
// published results can deduplicate replays.
func responseID(lat, lng float64, date string, params []ParameterCode) string {
	codes := make([]string, len(params))
	for i, p := range params {
		codes[i] = string(p)
	}
	input := fmt.Sprintf("%.4f|%.4f|%s|%s", lat, lng, date, strings.Join(codes, ","))
	hash := sha256.Sum256([]byte(input))
	return "wx-" + hex.EncodeToString(hash[:8])
}
