package types

// UnitSystem is the paired choice of temperature scale and speed unit,
// derived once from the location's country at the start of a planning
// session and never re-derived mid-session.
type UnitSystem string

const (
	UnitMetric   UnitSystem = "metric"   // Celsius, km/h
	UnitImperial UnitSystem = "imperial" // Fahrenheit, mph
)

// Valid reports whether the unit system is one of the known values.
func (u UnitSystem) Valid() bool {
	return u == UnitMetric || u == UnitImperial
}

// ConditionLabel is the coarse weather-type bucket derived from a numeric
// weather code. The label set is fixed and ordered; outfit rules match on
// the trait methods below rather than on label substrings.
type ConditionLabel string

const (
	ConditionClearSky     ConditionLabel = "Clear sky"
	ConditionPartlyCloudy ConditionLabel = "Partly cloudy"
	ConditionFoggy        ConditionLabel = "Foggy"
	ConditionRainy        ConditionLabel = "Rainy"
	ConditionSnowy        ConditionLabel = "Snowy"
	ConditionRainShowers  ConditionLabel = "Rain showers"
	ConditionSnowShowers  ConditionLabel = "Snow showers"
	ConditionThunderstorm ConditionLabel = "Thunderstorm"
)

// IsRain reports whether the label describes rainfall. Thunderstorm is
// deliberately excluded: it matches neither the rain nor the snow trait.
func (c ConditionLabel) IsRain() bool {
	return c == ConditionRainy || c == ConditionRainShowers
}

// IsSnow reports whether the label describes snowfall.
func (c ConditionLabel) IsSnow() bool {
	return c == ConditionSnowy || c == ConditionSnowShowers
}

// IsClear reports whether the label describes a clear sky.
func (c ConditionLabel) IsClear() bool {
	return c == ConditionClearSky
}

// Severity classifies how strongly an outfit update is recommended.
type Severity string

const (
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
)
