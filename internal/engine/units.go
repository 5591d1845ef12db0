// Package engine implements the weather-to-outfit decision engine: unit and
// locale classification, condition-code bucketing, derived-factor math,
// outfit synthesis, forecast-vs-actual comparison, and the update decision
// with its conditional messaging.
//
// Every function in this package is pure: no I/O, no shared mutable state,
// and no retained references to inputs. Callers construct snapshots from
// upstream data and discard all results after the response is produced.
package engine

import (
	"strings"

	"strollcast/internal/types"
)

// mphPerKmh is the exact conversion factor between the two speed units.
// Intermediate values are never rounded; only displayed numbers are.
const mphPerKmh = 1.60934

// imperialCountries is the substring allow-list for imperial locales: the
// United States and its common variants, Liberia, and Myanmar/Burma.
// Matching is substring-based, not exact-equality, so "United States of
// America" and "USA" both classify as imperial.
var imperialCountries = []string{
	"united states",
	"usa",
	"u.s.",
	"liberia",
	"myanmar",
	"burma",
}

// ClassifyUnitSystem derives the unit system from a country string. The
// result is held for the lifetime of a planning session and never re-derived
// mid-session.
func ClassifyUnitSystem(country string) types.UnitSystem {
	lower := strings.ToLower(country)
	for _, c := range imperialCountries {
		if strings.Contains(lower, c) {
			return types.UnitImperial
		}
	}
	return types.UnitMetric
}

// LocaleUnits returns the provider-facing unit parameter names for a unit
// system: "fahrenheit"/"mph" for imperial, "celsius"/"kmh" for metric.
func LocaleUnits(u types.UnitSystem) (temperatureUnit, speedUnit string) {
	if u == types.UnitImperial {
		return "fahrenheit", "mph"
	}
	return "celsius", "kmh"
}

// CelsiusToFahrenheit converts a temperature from Celsius to Fahrenheit.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9.0/5.0 + 32.0
}

// FahrenheitToCelsius converts a temperature from Fahrenheit to Celsius.
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32.0) * 5.0 / 9.0
}

// MphToKmh converts a speed from miles per hour to kilometers per hour.
func MphToKmh(mph float64) float64 {
	return mph * mphPerKmh
}

// KmhToMph converts a speed from kilometers per hour to miles per hour.
func KmhToMph(kmh float64) float64 {
	return kmh / mphPerKmh
}

// toFahrenheit returns the temperature in Fahrenheit terms regardless of the
// active unit system. Messaging gates compare against fixed Fahrenheit
// floors, so metric inputs are converted internally before the comparison.
func toFahrenheit(temp float64, u types.UnitSystem) float64 {
	if u == types.UnitMetric {
		return CelsiusToFahrenheit(temp)
	}
	return temp
}
