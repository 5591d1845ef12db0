package engine

import (
	"math"

	"strollcast/internal/types"
)

// Wind chill applicability floors. Above the temperature floor, or below the
// wind floor, the formula does not apply and the input temperature is
// returned unchanged.
const (
	windChillMaxTempF  = 50.0 // Fahrenheit
	windChillMinWindMph = 3.0 // mph
	windChillMaxTempC  = 10.0 // Celsius
	windChillMinWindKmh = 4.8 // km/h
)

// Significance thresholds for forecast-vs-actual comparison. These are fixed
// absolute values in whichever unit is active; they are deliberately not
// converted between unit systems.
const (
	SignificantTempDiff   = 5.0
	SignificantWindDiff   = 5.0
	SignificantPrecipDiff = 20.0
)

// Severity escalation thresholds for the update decision.
const (
	severeTempDiff   = 10.0
	severeWindDiff   = 10.0
	severePrecipDiff = 40.0
)

// WindChill computes the perceived temperature from air temperature and wind
// speed using the standard NWS regression, with the constant set matching
// the active unit system. When the reading is outside the applicability
// window (too warm, or wind too light), the input temperature is returned
// unchanged.
func WindChill(temp, windSpeed float64, u types.UnitSystem) float64 {
	if u == types.UnitImperial {
		if temp >= windChillMaxTempF || windSpeed < windChillMinWindMph {
			return temp
		}
		w := math.Pow(windSpeed, 0.16)
		return 35.74 + 0.6215*temp - 35.75*w + 0.4275*temp*w
	}

	if temp >= windChillMaxTempC || windSpeed < windChillMinWindKmh {
		return temp
	}
	w := math.Pow(windSpeed, 0.16)
	return 13.12 + 0.6215*temp - 11.37*w + 0.3965*temp*w
}

// IsSignificantTempDiff reports whether a temperature delta is large enough
// to mention in the comparison summary or to trigger an update.
func IsSignificantTempDiff(diff float64) bool {
	return math.Abs(diff) > SignificantTempDiff
}

// IsSignificantWindDiff reports whether a wind-speed delta is significant.
func IsSignificantWindDiff(diff float64) bool {
	return math.Abs(diff) > SignificantWindDiff
}

// IsSignificantPrecipDiff reports whether a precipitation-percentage delta
// is significant.
func IsSignificantPrecipDiff(diff float64) bool {
	return math.Abs(diff) > SignificantPrecipDiff
}

// ClassifySeverity grades an update decision: high when any factor has
// drifted far past its significance threshold, moderate otherwise. Callers
// only attach a severity when ShouldUpdate is true.
func ClassifySeverity(tempDiff, windDiff, precipDiff float64) types.Severity {
	if math.Abs(tempDiff) > severeTempDiff ||
		math.Abs(windDiff) > severeWindDiff ||
		math.Abs(precipDiff) > severePrecipDiff {
		return types.SeverityHigh
	}
	return types.SeverityModerate
}
