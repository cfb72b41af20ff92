package domain

import "strings"

// ParameterCode identifies a NASA POWER weather variable.
type ParameterCode string

const (
	ParamTemperature   ParameterCode = "T2M"
	ParamPrecipitation ParameterCode = "PRECTOT"
	ParamCloudCover    ParameterCode = "CLDTT"
	ParamWindSpeed     ParameterCode = "WS2M"
)

// defaultColor is used for any code missing from the color table.
const defaultColor = "#0b3d91"

var colorByParam = map[ParameterCode]string{
	ParamTemperature:   "#FF6B3A",
	ParamPrecipitation: "#3B82FF",
	ParamCloudCover:    "#9CA3FF",
	ParamWindSpeed:     "#7CE06A",
}

// Color returns the display color chart clients render this parameter with.
func (p ParameterCode) Color() string {
	if c, ok := colorByParam[p]; ok {
		return c
	}
	return defaultColor
}

// paramByCondition maps lower-cased user-facing condition keywords to
// parameter codes. Many keywords are synonyms for the same code.
var paramByCondition = map[string]ParameterCode{
	"temperature": ParamTemperature,
	"temp":        ParamTemperature,
	"hot":         ParamTemperature,
	"cold":        ParamTemperature,

	"precipitation": ParamPrecipitation,
	"rain":          ParamPrecipitation,
	"wet":           ParamPrecipitation,

	"cloud":  ParamCloudCover,
	"clouds": ParamCloudCover,
	"cloudy": ParamCloudCover,

	"wind":  ParamWindSpeed,
	"windy": ParamWindSpeed,
}

// KnownCondition reports whether a condition keyword (case-insensitive) maps
// to a parameter code.
func KnownCondition(keyword string) bool {
	_, ok := paramByCondition[strings.ToLower(keyword)]
	return ok
}

// DefaultParameters is the parameter set scored when a request names no
// usable conditions.
func DefaultParameters() []ParameterCode {
	return []ParameterCode{ParamTemperature, ParamPrecipitation, ParamCloudCover}
}

// ResolveConditions maps condition keywords to parameter codes,
// case-insensitively, dropping duplicates while preserving first-occurrence
// order. Unknown keywords are skipped (the validator rejects them before this
// stage). An input that resolves to nothing yields DefaultParameters.
func ResolveConditions(conditions []string) []ParameterCode {
	params := make([]ParameterCode, 0, len(conditions))
	seen := make(map[ParameterCode]bool, len(conditions))
	for _, cond := range conditions {
		param, ok := paramByCondition[strings.ToLower(cond)]
		if !ok || seen[param] {
			continue
		}
		seen[param] = true
		params = append(params, param)
	}
	if len(params) == 0 {
		return DefaultParameters()
	}
	return params
}
