package domain

import "math"

// scoreModulo bounds fallback and trend values to [0, 100].
const scoreModulo = 101

// ProbabilityEntry is one scored parameter. Value is always populated; Raw is
// nil when the score came from the deterministic fallback rather than an
// upstream measurement.
type ProbabilityEntry struct {
	Parameter ParameterCode `json:"parameter"`
	Condition ParameterCode `json:"condition"`
	Value     int           `json:"value"`
	Raw       *float64      `json:"raw"`
	Color     string        `json:"color"`
}

// ScoreParameter produces the probability entry for one parameter. Pass a nil
// raw when the upstream had no usable value; the entry then gets a
// deterministic synthetic score and keeps Raw nil as display metadata.
func ScoreParameter(lat, lng float64, date string, param ParameterCode, raw *float64) ProbabilityEntry {
	entry := ProbabilityEntry{
		Parameter: param,
		Condition: param,
		Raw:       raw,
		Color:     param.Color(),
	}
	if raw != nil {
		if value, ok := scoreRaw(param, *raw); ok {
			entry.Value = value
			return entry
		}
	}
	entry.Value = FallbackScore(lat, lng, param, date)
	return entry
}

// scoreRaw applies the per-parameter formula to a raw measurement. The second
// return is false for codes without a formula.
//
// Rounding: precipitation, cloud cover, and wind round half away from zero;
// temperature truncates toward zero after clamping. The mixed rule is part of
// the served contract and is pinned by tests — keep the asymmetry.
func scoreRaw(param ParameterCode, raw float64) (int, bool) {
	switch param {
	case ParamPrecipitation:
		return clampScore(int(math.Round(raw * 20))), true
	case ParamCloudCover:
		// Cloud cover arrives on a 0-100 scale already.
		return clampScore(int(math.Round(raw))), true
	case ParamTemperature:
		// Centered at 10°C, scaled ×3, clamped, fraction discarded.
		return int(math.Max(0, math.Min(100, (raw-10)*3))), true
	case ParamWindSpeed:
		return clampScore(int(math.Round(raw * 10))), true
	}
	return 0, false
}

// clampScore keeps every score in [0, 100]. Sources hand over whatever the
// upstream reported, so negative or out-of-scale measurements must not leak
// through.
func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// FallbackScore is the deterministic synthetic score used when no raw value
// exists for a parameter. Always in [0, 100].
func FallbackScore(lat, lng float64, param ParameterCode, date string) int {
	return SeedNumber(scoreModulo, lat, lng, string(param), date)
}

// ScoreAll scores every parameter in resolution order, falling back to
// synthetic values for parameters absent from values.
func ScoreAll(q WeatherQuery, params []ParameterCode, values ParameterValues) []ProbabilityEntry {
	entries := make([]ProbabilityEntry, 0, len(params))
	for _, param := range params {
		var raw *float64
		if v, ok := values[param]; ok {
			v := v
			raw = &v
		}
		entries = append(entries, ScoreParameter(q.Latitude, q.Longitude, q.Date, param, raw))
	}
	return entries
}
