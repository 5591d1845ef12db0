package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"strollcast/internal/types"
)

func TestClassifyUnitSystem(t *testing.T) {
	tests := []struct {
		country string
		want    types.UnitSystem
	}{
		{"United States", types.UnitImperial},
		{"United States of America", types.UnitImperial},
		{"USA", types.UnitImperial},
		{"usa", types.UnitImperial},
		{"U.S. Virgin Islands", types.UnitImperial},
		{"Liberia", types.UnitImperial},
		{"Myanmar", types.UnitImperial},
		{"Burma", types.UnitImperial},
		{"Canada", types.UnitMetric},
		{"United Kingdom", types.UnitMetric},
		{"Germany", types.UnitMetric},
		{"", types.UnitMetric},
	}

	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyUnitSystem(tt.country))
		})
	}
}

func TestLocaleUnits(t *testing.T) {
	tempUnit, speedUnit := LocaleUnits(types.UnitImperial)
	assert.Equal(t, "fahrenheit", tempUnit)
	assert.Equal(t, "mph", speedUnit)

	tempUnit, speedUnit = LocaleUnits(types.UnitMetric)
	assert.Equal(t, "celsius", tempUnit)
	assert.Equal(t, "kmh", speedUnit)
}

func TestTemperatureConversion(t *testing.T) {
	assert.InDelta(t, 32.0, CelsiusToFahrenheit(0), 1e-9)
	assert.InDelta(t, 212.0, CelsiusToFahrenheit(100), 1e-9)
	assert.InDelta(t, 98.6, CelsiusToFahrenheit(37), 1e-9)
	assert.InDelta(t, 0.0, FahrenheitToCelsius(32), 1e-9)
	assert.InDelta(t, -40.0, FahrenheitToCelsius(-40), 1e-9)
}

// TestSpeedConversionRoundTrip verifies the exact factor is used with no
// intermediate rounding: converting there and back recovers the input.
func TestSpeedConversionRoundTrip(t *testing.T) {
	assert.InDelta(t, 16.0934, MphToKmh(10), 1e-9)
	assert.InDelta(t, 10.0, KmhToMph(MphToKmh(10)), 1e-9)
	assert.InDelta(t, 24.0, MphToKmh(KmhToMph(24)), 1e-9)
}
