package engine

import (
	"fmt"
	"math"
	"strings"

	"strollcast/internal/types"
)

// Messaging gates. The floors are fixed Fahrenheit values; metric inputs are
// converted internally before comparison regardless of the display unit.
const (
	coldMessageFloorF = 40.0
	heatMessageFloorF = 75.0

	// feelsLikeGap is the minimum apparent-vs-actual gap worth mentioning.
	feelsLikeGap = 3.0

	// Humidity percentages above which the muggy wording applies, escalating
	// to "very muggy" past the upper bound.
	muggyHumidity     = 70.0
	veryMuggyHumidity = 80.0
)

// Decide determines whether a previously issued recommendation should be
// revised. ShouldUpdate is true iff any significance threshold trips between
// the original and current snapshots; each tripped threshold contributes one
// reason string with the literal delta embedded. Severity is only set when
// an update is recommended.
func Decide(original, current types.WeatherSnapshot, u types.UnitSystem) types.UpdateDecision {
	tempDiff := current.Temperature - original.Temperature
	windDiff := current.WindSpeed - original.WindSpeed
	precipDiff := current.Precipitation - original.Precipitation

	var reasons []string
	if IsSignificantTempDiff(tempDiff) {
		reasons = append(reasons, fmt.Sprintf("Temperature is %s° different from forecast",
			formatNumber(math.Abs(tempDiff))))
	}
	if IsSignificantWindDiff(windDiff) {
		reasons = append(reasons, fmt.Sprintf("Wind speed is %s %s different from forecast",
			formatNumber(math.Abs(windDiff)), displaySpeedUnit(u)))
	}
	if IsSignificantPrecipDiff(precipDiff) {
		reasons = append(reasons, fmt.Sprintf("Rain chance is %s%% different from forecast",
			formatNumber(math.Abs(precipDiff))))
	}

	decision := types.UpdateDecision{
		ShouldUpdate: len(reasons) > 0,
		Reasons:      reasons,
	}
	if decision.ShouldUpdate {
		decision.Severity = ClassifySeverity(tempDiff, windDiff, precipDiff)
	}
	return decision
}

// GenerateMessage composes the final human-readable explanation for a
// current-conditions check: the comparator summary, then a wind-chill clause
// when it is cold enough for the apparent temperature to matter, then a
// humidity clause when it is hot enough for mugginess to matter.
func GenerateMessage(cmp types.ComparisonResult, current types.WeatherSnapshot, factors types.GranularFactors, u types.UnitSystem) string {
	fragments := []string{cmp.Summary}

	tempF := toFahrenheit(current.Temperature, u)

	if tempF < coldMessageFloorF && math.Abs(factors.FeelsLike-current.Temperature) >= feelsLikeGap {
		fragments = append(fragments, fmt.Sprintf("Feels like %s° with the wind chill",
			formatNumber(factors.FeelsLike)))
	}

	if tempF >= heatMessageFloorF && factors.Humidity > muggyHumidity {
		wording := "muggy"
		if factors.Humidity > veryMuggyHumidity {
			wording = "very muggy"
		}
		fragments = append(fragments, fmt.Sprintf("It's %s out there (%s%% humidity)",
			wording, formatNumber(factors.Humidity)))
	}

	return strings.Join(fragments, ". ")
}
