package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveConditions_SynonymsCollapse(t *testing.T) {
	params := ResolveConditions([]string{"RAIN", "rain", "Wet"})
	assert.Equal(t, []ParameterCode{ParamPrecipitation}, params)
}

func TestResolveConditions_EmptyUsesDefaults(t *testing.T) {
	assert.Equal(t,
		[]ParameterCode{ParamTemperature, ParamPrecipitation, ParamCloudCover},
		ResolveConditions(nil))
	assert.Equal(t,
		[]ParameterCode{ParamTemperature, ParamPrecipitation, ParamCloudCover},
		ResolveConditions([]string{}))
}

func TestResolveConditions_PreservesFirstOccurrenceOrder(t *testing.T) {
	params := ResolveConditions([]string{"windy", "hot", "rain", "wind", "cold"})
	assert.Equal(t, []ParameterCode{ParamWindSpeed, ParamTemperature, ParamPrecipitation}, params)
}

func TestResolveConditions_UnknownKeywordsSkipped(t *testing.T) {
	// Unknown keywords never reach this stage in production (the validator
	// rejects them), but resolution must still degrade to the defaults.
	assert.Equal(t, DefaultParameters(), ResolveConditions([]string{"bogus"}))
}

func TestKnownCondition(t *testing.T) {
	assert.True(t, KnownCondition("rain"))
	assert.True(t, KnownCondition("RAIN"))
	assert.True(t, KnownCondition("Cloudy"))
	assert.False(t, KnownCondition("bogus"))
	assert.False(t, KnownCondition(""))
}

func TestParameterColor(t *testing.T) {
	assert.Equal(t, "#FF6B3A", ParamTemperature.Color())
	assert.Equal(t, "#3B82FF", ParamPrecipitation.Color())
	assert.Equal(t, "#9CA3FF", ParamCloudCover.Color())
	assert.Equal(t, "#7CE06A", ParamWindSpeed.Color())
	assert.Equal(t, "#0b3d91", ParameterCode("UNKNOWN").Color())
}
