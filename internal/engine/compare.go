package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"strollcast/internal/types"
)

// Compare diffs a forecast snapshot against an actual (live) snapshot.
// Differences are signed, actual minus forecast. Significance uses the fixed
// absolute thresholds from factors.go, and the prose summary is assembled as
// ordered sentence fragments joined with ". ".
func Compare(forecast, actual types.WeatherSnapshot, u types.UnitSystem) types.ComparisonResult {
	result := types.ComparisonResult{
		Temperature: types.FactorComparison{
			Forecast:    forecast.Temperature,
			Actual:      actual.Temperature,
			Difference:  actual.Temperature - forecast.Temperature,
			Significant: IsSignificantTempDiff(actual.Temperature - forecast.Temperature),
		},
		WindSpeed: types.FactorComparison{
			Forecast:    forecast.WindSpeed,
			Actual:      actual.WindSpeed,
			Difference:  actual.WindSpeed - forecast.WindSpeed,
			Significant: IsSignificantWindDiff(actual.WindSpeed - forecast.WindSpeed),
		},
		Precipitation: types.FactorComparison{
			Forecast:    forecast.Precipitation,
			Actual:      actual.Precipitation,
			Difference:  actual.Precipitation - forecast.Precipitation,
			Significant: IsSignificantPrecipDiff(actual.Precipitation - forecast.Precipitation),
		},
		Condition: types.ConditionComparison{
			Forecast: forecast.Condition,
			Actual:   actual.Condition,
			Changed:  !strings.EqualFold(string(forecast.Condition), string(actual.Condition)),
		},
	}

	result.HasSignificantChanges = result.Temperature.Significant ||
		result.WindSpeed.Significant ||
		result.Precipitation.Significant ||
		result.Condition.Changed

	result.Summary = buildSummary(result, u)
	return result
}

// buildSummary composes the human-readable comparison summary. The
// temperature clause is always present; the wind, precipitation, and
// condition clauses appear only when their factor is significant or changed.
func buildSummary(r types.ComparisonResult, u types.UnitSystem) string {
	var fragments []string

	if r.Temperature.Significant {
		word := "warmer"
		if r.Temperature.Difference < 0 {
			word = "cooler"
		}
		fragments = append(fragments, fmt.Sprintf("%s° %s than predicted (%s° vs %s°)",
			formatNumber(math.Abs(r.Temperature.Difference)),
			word,
			formatNumber(r.Temperature.Actual),
			formatNumber(r.Temperature.Forecast),
		))
	} else {
		fragments = append(fragments, "Temperature close to forecast")
	}

	if r.WindSpeed.Significant {
		word := "windier"
		if r.WindSpeed.Difference < 0 {
			word = "calmer"
		}
		fragments = append(fragments, fmt.Sprintf("%s %s %s than predicted",
			formatNumber(math.Abs(r.WindSpeed.Difference)),
			displaySpeedUnit(u),
			word,
		))
	}

	if r.Precipitation.Significant {
		word := "higher"
		if r.Precipitation.Difference < 0 {
			word = "lower"
		}
		fragments = append(fragments, fmt.Sprintf("Rain chance %s%% %s than predicted",
			formatNumber(math.Abs(r.Precipitation.Difference)),
			word,
		))
	}

	if r.Condition.Changed {
		fragments = append(fragments, fmt.Sprintf("Conditions changed from %s to %s",
			r.Condition.Forecast,
			r.Condition.Actual,
		))
	}

	return strings.Join(fragments, ". ")
}

// displaySpeedUnit returns the human-facing speed unit for a unit system.
// This differs from LocaleUnits, whose strings are provider parameters.
func displaySpeedUnit(u types.UnitSystem) string {
	if u == types.UnitImperial {
		return "mph"
	}
	return "km/h"
}

// formatNumber renders a float without trailing zeros ("8", "8.5").
// Intermediate math is never rounded; only the displayed number is trimmed.
func formatNumber(v float64) string {
	rounded := math.Round(v*10) / 10
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
