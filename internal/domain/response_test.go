package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildResponse_LocationFormatting(t *testing.T) {
	frozenAt(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))

	q := WeatherQuery{Latitude: 30.5, Longitude: 50.1, Date: "2024-01-15"}
	params := DefaultParameters()
	probs := ScoreAll(q, params, nil)
	trend := BuildTrend(q.Latitude, q.Longitude, params)

	resp := BuildResponse(q, params, probs, trend)

	assert.Equal(t, "30.5000, 50.1000", resp.LocationName)
	assert.Equal(t, "2024-01-15", resp.Date)
	assert.Equal(t, probs, resp.Probabilities)
	assert.Equal(t, trend, resp.Trend)
}

func TestResponseID_Deterministic(t *testing.T) {
	params := []ParameterCode{ParamPrecipitation, ParamTemperature}

	first := responseID(30.5, 50.1, "2024-01-15", params)
	second := responseID(30.5, 50.1, "2024-01-15", params)
	require.Equal(t, first, second)
	assert.Regexp(t, `^wx-[0-9a-f]{16}$`, first)

	otherDate := responseID(30.5, 50.1, "2024-01-16", params)
	assert.NotEqual(t, first, otherDate)

	otherParams := responseID(30.5, 50.1, "2024-01-15", []ParameterCode{ParamTemperature})
	assert.NotEqual(t, first, otherParams)
}
