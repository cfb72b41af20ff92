package domain

import "strconv"

// trendYears is the length of the synthetic historical window.
const trendYears = 20

// TrendCondition is one parameter's synthetic year-by-year series.
type TrendCondition struct {
	Name   ParameterCode `json:"name"`
	Values []int         `json:"values"`
	Color  string        `json:"color"`
}

// TrendSeries is a 20-year synthetic history for a coordinate, one series per
// requested parameter. Years are chronological, ending at the current year.
type TrendSeries struct {
	Years      []string         `json:"years"`
	Conditions []TrendCondition `json:"conditions"`
}

// BuildTrend synthesizes the per-parameter trend for the 20 years ending at
// the current UTC year. It never consults upstream data: every value is a
// stable pseudo-random function of (lat, lng, parameter, year), so the same
// coordinate always charts the same history.
func BuildTrend(lat, lng float64, params []ParameterCode) TrendSeries {
	currentYear := clock.Now().UTC().Year()
	years := make([]string, 0, trendYears)
	for i := trendYears - 1; i >= 0; i-- {
		years = append(years, strconv.Itoa(currentYear-i))
	}

	conditions := make([]TrendCondition, 0, len(params))
	for _, param := range params {
		values := make([]int, 0, trendYears)
		for _, year := range years {
			values = append(values, SeedNumber(scoreModulo, lat, lng, string(param), year))
		}
		conditions = append(conditions, TrendCondition{
			Name:   param,
			Values: values,
			Color:  param.Color(),
		})
	}

	return TrendSeries{Years: years, Conditions: conditions}
}
