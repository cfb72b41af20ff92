package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skg97072-hub/weather-dashboard-backend/internal/domain"
)

func TestSerializeToMessage(t *testing.T) {
	raw := 3.2
	resp := domain.WeatherResponse{
		ID:           "wx-0123456789abcdef",
		LocationName: "30.5000, 50.1000",
		Date:         "2024-01-15",
		Probabilities: []domain.ProbabilityEntry{
			{
				Parameter: domain.ParamPrecipitation,
				Condition: domain.ParamPrecipitation,
				Value:     64,
				Raw:       &raw,
				Color:     "#3B82FF",
			},
		},
	}

	msg, err := serializeToMessage(resp)
	require.NoError(t, err)

	assert.Equal(t, []byte("wx-0123456789abcdef"), msg.Key)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "30.5000, 50.1000", decoded["location_name"])
	assert.Equal(t, "2024-01-15", decoded["date"])
	assert.NotContains(t, decoded, "ID", "internal ID must not be serialized")

	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "query_date", msg.Headers[0].Key)
	assert.Equal(t, []byte("2024-01-15"), msg.Headers[0].Value)
	assert.Equal(t, "computed_at", msg.Headers[1].Key)
	_, err = time.Parse(time.RFC3339, string(msg.Headers[1].Value))
	assert.NoError(t, err, "computed_at should be valid RFC3339")
}

func TestSerializeToMessage_RawNullForFallbackEntries(t *testing.T) {
	resp := domain.WeatherResponse{
		ID:   "wx-ffffffffffffffff",
		Date: "2024-01-15",
		Probabilities: []domain.ProbabilityEntry{
			{Parameter: domain.ParamTemperature, Condition: domain.ParamTemperature, Value: 67, Color: "#FF6B3A"},
		},
	}

	msg, err := serializeToMessage(resp)
	require.NoError(t, err)
	assert.Contains(t, string(msg.Value), `"raw":null`)
}
