package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuery() WeatherQuery {
	return WeatherQuery{
		Latitude:   30.5,
		Longitude:  50.1,
		Date:       "2024-01-15",
		Threshold:  50,
		Conditions: []string{"rain", "hot"},
	}
}

func TestValidate_ValidQuery(t *testing.T) {
	require.NoError(t, validQuery().Validate())
}

func TestValidate_Boundaries(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*WeatherQuery)
		message string // empty means the query must pass
	}{
		{"lat at north pole", func(q *WeatherQuery) { q.Latitude = 90 }, ""},
		{"lat at south pole", func(q *WeatherQuery) { q.Latitude = -90 }, ""},
		{"lat just out of range", func(q *WeatherQuery) { q.Latitude = 90.0001 }, "latitude must be between -90 and 90"},
		{"lng at antimeridian", func(q *WeatherQuery) { q.Longitude = 180 }, ""},
		{"lng out of range", func(q *WeatherQuery) { q.Longitude = -180.5 }, "longitude must be between -180 and 180"},
		{"threshold at max", func(q *WeatherQuery) { q.Threshold = 100 }, ""},
		{"threshold at min", func(q *WeatherQuery) { q.Threshold = 0 }, ""},
		{"threshold over max", func(q *WeatherQuery) { q.Threshold = 101 }, "threshold must be between 0 and 100"},
		{"nonexistent calendar date", func(q *WeatherQuery) { q.Date = "2024-02-30" }, "date must be a valid YYYY-MM-DD calendar date"},
		{"month out of range", func(q *WeatherQuery) { q.Date = "2024-13-01" }, "date must be a valid YYYY-MM-DD calendar date"},
		{"wrong date layout", func(q *WeatherQuery) { q.Date = "15-01-2024" }, "date must be a valid YYYY-MM-DD calendar date"},
		{"empty date", func(q *WeatherQuery) { q.Date = "" }, "date must be a valid YYYY-MM-DD calendar date"},
		{"leap day passes", func(q *WeatherQuery) { q.Date = "2024-02-29" }, ""},
		{"unknown condition", func(q *WeatherQuery) { q.Conditions = []string{"bogus"} }, "invalid condition: bogus"},
		{"mixed-case condition passes", func(q *WeatherQuery) { q.Conditions = []string{"RAIN", "Cloudy"} }, ""},
		{"no conditions passes", func(q *WeatherQuery) { q.Conditions = nil }, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := validQuery()
			tc.mutate(&q)
			err := q.Validate()
			if tc.message == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.message, verr.Message)
		})
	}
}

// Checks short-circuit order: with several invalid fields the reported
// failure is the earliest one.
func TestValidate_ReportsFirstFailure(t *testing.T) {
	q := validQuery()
	q.Latitude = 200
	q.Date = "garbage"
	q.Conditions = []string{"bogus"}

	err := q.Validate()
	require.Error(t, err)
	assert.Equal(t, "latitude must be between -90 and 90", err.Error())
}
