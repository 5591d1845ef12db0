package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"strollcast/internal/types"
)

func TestCompareSignificantTemperature(t *testing.T) {
	forecast := snapshot(60, types.ConditionPartlyCloudy, 10, 5)
	actual := snapshot(68, types.ConditionPartlyCloudy, 10, 5)

	result := Compare(forecast, actual, types.UnitImperial)

	assert.True(t, result.Temperature.Significant)
	assert.InDelta(t, 8.0, result.Temperature.Difference, 1e-9)
	assert.True(t, result.HasSignificantChanges)
	assert.Equal(t, "8° warmer than predicted (68° vs 60°)", result.Summary)
}

func TestCompareCloseToForecast(t *testing.T) {
	forecast := snapshot(60, types.ConditionPartlyCloudy, 10, 5)
	actual := snapshot(62, types.ConditionPartlyCloudy, 12, 7)

	result := Compare(forecast, actual, types.UnitImperial)

	assert.False(t, result.HasSignificantChanges)
	assert.Equal(t, "Temperature close to forecast", result.Summary)
}

// TestCompareAntisymmetry verifies that swapping forecast and actual flips
// the direction words while the absolute difference is invariant.
func TestCompareAntisymmetry(t *testing.T) {
	a := snapshot(60, types.ConditionPartlyCloudy, 10, 5)
	b := snapshot(70, types.ConditionPartlyCloudy, 10, 15)

	fwd := Compare(a, b, types.UnitImperial)
	rev := Compare(b, a, types.UnitImperial)

	assert.InDelta(t, math.Abs(fwd.Temperature.Difference), math.Abs(rev.Temperature.Difference), 1e-9)
	assert.InDelta(t, math.Abs(fwd.WindSpeed.Difference), math.Abs(rev.WindSpeed.Difference), 1e-9)

	assert.Contains(t, fwd.Summary, "warmer")
	assert.Contains(t, rev.Summary, "cooler")
	assert.Contains(t, fwd.Summary, "windier")
	assert.Contains(t, rev.Summary, "calmer")
}

func TestCompareWindAndPrecipClauses(t *testing.T) {
	forecast := snapshot(20, types.ConditionPartlyCloudy, 10, 10)
	actual := snapshot(21, types.ConditionPartlyCloudy, 45, 22)

	result := Compare(forecast, actual, types.UnitMetric)

	assert.False(t, result.Temperature.Significant)
	assert.True(t, result.WindSpeed.Significant)
	assert.True(t, result.Precipitation.Significant)
	assert.Equal(t,
		"Temperature close to forecast. 12 km/h windier than predicted. Rain chance 35% higher than predicted",
		result.Summary)
}

func TestCompareConditionChange(t *testing.T) {
	forecast := snapshot(60, types.ConditionPartlyCloudy, 10, 5)
	actual := snapshot(61, types.ConditionRainy, 12, 6)

	result := Compare(forecast, actual, types.UnitImperial)

	assert.True(t, result.Condition.Changed)
	assert.True(t, result.HasSignificantChanges)
	assert.Equal(t,
		"Temperature close to forecast. Conditions changed from Partly cloudy to Rainy",
		result.Summary)
}

// Condition comparison is case-insensitive: identical labels never flag a
// change regardless of casing quirks in stored snapshots.
func TestCompareConditionCaseInsensitive(t *testing.T) {
	forecast := snapshot(60, "rainy", 10, 5)
	actual := snapshot(60, "Rainy", 10, 5)

	result := Compare(forecast, actual, types.UnitImperial)
	assert.False(t, result.Condition.Changed)
}
