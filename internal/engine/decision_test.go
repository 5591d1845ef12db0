package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strollcast/internal/types"
)

func TestDecideNoUpdate(t *testing.T) {
	original := snapshot(60, types.ConditionPartlyCloudy, 20, 10)
	current := snapshot(63, types.ConditionPartlyCloudy, 30, 13)

	decision := Decide(original, current, types.UnitImperial)

	assert.False(t, decision.ShouldUpdate)
	assert.Empty(t, decision.Reasons)
	assert.Empty(t, decision.Severity)
}

func TestDecideModerateUpdate(t *testing.T) {
	original := snapshot(60, types.ConditionPartlyCloudy, 20, 10)
	current := snapshot(68, types.ConditionPartlyCloudy, 20, 10)

	decision := Decide(original, current, types.UnitImperial)

	assert.True(t, decision.ShouldUpdate)
	require.Len(t, decision.Reasons, 1)
	assert.Equal(t, "Temperature is 8° different from forecast", decision.Reasons[0])
	assert.Equal(t, types.SeverityModerate, decision.Severity)
}

func TestDecideHighSeverity(t *testing.T) {
	original := snapshot(60, types.ConditionPartlyCloudy, 10, 10)
	current := snapshot(48, types.ConditionPartlyCloudy, 55, 22)

	decision := Decide(original, current, types.UnitImperial)

	assert.True(t, decision.ShouldUpdate)
	assert.Equal(t, types.SeverityHigh, decision.Severity)
	require.Len(t, decision.Reasons, 3)
	assert.Equal(t, "Temperature is 12° different from forecast", decision.Reasons[0])
	assert.Equal(t, "Wind speed is 12 mph different from forecast", decision.Reasons[1])
	assert.Equal(t, "Rain chance is 45% different from forecast", decision.Reasons[2])
}

func TestGenerateMessageColdWindChill(t *testing.T) {
	current := snapshot(30, types.ConditionPartlyCloudy, 10, 15)
	factors := types.GranularFactors{FeelsLike: 22, Humidity: 50}
	cmp := Compare(snapshot(35, types.ConditionPartlyCloudy, 10, 10), current, types.UnitImperial)

	msg := GenerateMessage(cmp, current, factors, types.UnitImperial)

	assert.Contains(t, msg, "Feels like 22° with the wind chill")
}

func TestGenerateMessageWindChillSuppressedWhenWarm(t *testing.T) {
	current := snapshot(55, types.ConditionPartlyCloudy, 10, 15)
	factors := types.GranularFactors{FeelsLike: 48, Humidity: 50}
	cmp := Compare(current, current, types.UnitImperial)

	msg := GenerateMessage(cmp, current, factors, types.UnitImperial)

	assert.NotContains(t, msg, "wind chill")
}

func TestGenerateMessageWindChillSuppressedForSmallGap(t *testing.T) {
	current := snapshot(30, types.ConditionPartlyCloudy, 10, 5)
	factors := types.GranularFactors{FeelsLike: 28, Humidity: 50}
	cmp := Compare(current, current, types.UnitImperial)

	msg := GenerateMessage(cmp, current, factors, types.UnitImperial)

	assert.NotContains(t, msg, "wind chill")
}

func TestGenerateMessageHumidity(t *testing.T) {
	current := snapshot(85, types.ConditionClearSky, 0, 5)
	cmp := Compare(current, current, types.UnitImperial)

	t.Run("muggy above 70 percent", func(t *testing.T) {
		msg := GenerateMessage(cmp, current, types.GranularFactors{FeelsLike: 90, Humidity: 75}, types.UnitImperial)
		assert.Contains(t, msg, "It's muggy out there (75% humidity)")
	})

	t.Run("very muggy above 80 percent", func(t *testing.T) {
		msg := GenerateMessage(cmp, current, types.GranularFactors{FeelsLike: 95, Humidity: 85}, types.UnitImperial)
		assert.Contains(t, msg, "It's very muggy out there (85% humidity)")
	})

	t.Run("suppressed below threshold", func(t *testing.T) {
		msg := GenerateMessage(cmp, current, types.GranularFactors{FeelsLike: 88, Humidity: 60}, types.UnitImperial)
		assert.NotContains(t, msg, "muggy")
	})
}

// The messaging gates compare in Fahrenheit-equivalent terms: a 30C reading
// in metric units is past the 75F heat floor, and a 2C reading is below the
// 40F cold floor.
func TestGenerateMessageGatesAreFahrenheitEquivalent(t *testing.T) {
	hot := snapshot(30, types.ConditionClearSky, 0, 5)
	cmpHot := Compare(hot, hot, types.UnitMetric)
	msg := GenerateMessage(cmpHot, hot, types.GranularFactors{FeelsLike: 33, Humidity: 78}, types.UnitMetric)
	assert.Contains(t, msg, "muggy")

	cold := snapshot(2, types.ConditionPartlyCloudy, 0, 20)
	cmpCold := Compare(cold, cold, types.UnitMetric)
	msg = GenerateMessage(cmpCold, cold, types.GranularFactors{FeelsLike: -3, Humidity: 50}, types.UnitMetric)
	assert.Contains(t, msg, "wind chill")
}
