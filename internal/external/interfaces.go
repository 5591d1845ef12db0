package external

import (
	"context"
	"time"

	"strollcast/internal/types"
)

// Geocoder resolves a sanitized city name to zero-or-more location
// candidates. The caller disambiguates when more than one is returned.
type Geocoder interface {
	Search(ctx context.Context, city string) ([]types.Location, error)
}

// ForecastProvider returns an hourly forecast series for a coordinate in the
// requested unit system.
type ForecastProvider interface {
	HourlyForecast(ctx context.Context, lat, lon float64, u types.UnitSystem) (*HourlySeries, error)
}

// LiveProvider returns the current reading and the hourly UV/precipitation
// series for a coordinate. The two lookups are independent so callers can
// issue them concurrently.
type LiveProvider interface {
	Current(ctx context.Context, lat, lon float64, u types.UnitSystem) (*CurrentReading, error)
	HourlyIndices(ctx context.Context, lat, lon float64) (*IndexSeries, error)
}

// SunsetProvider returns the sunset instant and IANA zone for a coordinate
// on a given date.
type SunsetProvider interface {
	Sunset(ctx context.Context, lat, lon float64, date time.Time) (*SunsetInfo, error)
}

// HourlyPoint is one forecast hour.
type HourlyPoint struct {
	Time                     time.Time
	Temperature              float64
	PrecipitationProbability float64
	WindSpeed                float64
	WeatherCode              int
}

// HourlySeries is the hourly forecast for one location, with the zone the
// timestamps are expressed in.
type HourlySeries struct {
	Timezone string
	Points   []HourlyPoint
}

// At returns the first hourly point at or after the given instant, or false
// when the series ends before it.
func (s *HourlySeries) At(t time.Time) (HourlyPoint, bool) {
	for _, p := range s.Points {
		if !p.Time.Before(t) {
			return p, true
		}
	}
	return HourlyPoint{}, false
}

// CurrentReading is a single instantaneous observation from the live
// provider. ApparentTemperature is the provider's feels-like field and is
// reported as-is, never recomputed.
type CurrentReading struct {
	Time                time.Time
	Timezone            string
	Temperature         float64
	ApparentTemperature float64
	Humidity            float64
	Precipitation       float64
	WeatherCode         int
	CloudCover          float64
	WindSpeed           float64
	WindDirection       float64
	WindGusts           float64
}

// IndexPoint is one hour of the auxiliary index series.
type IndexPoint struct {
	Time                     time.Time
	UVIndex                  float64
	PrecipitationProbability float64
}

// IndexSeries is the hourly UV-index and precipitation-probability series.
type IndexSeries struct {
	Timezone string
	Points   []IndexPoint
}

// AtHour returns the entry covering the given instant's local hour, or false
// when the series has no entry for it. Entries sit on local hour boundaries,
// which are not UTC hour boundaries in half-hour-offset zones, so the match
// compares calendar fields in the entry's zone rather than truncating the
// instant.
func (s *IndexSeries) AtHour(t time.Time) (IndexPoint, bool) {
	for _, p := range s.Points {
		lt := t.In(p.Time.Location())
		if p.Time.Year() == lt.Year() && p.Time.YearDay() == lt.YearDay() && p.Time.Hour() == lt.Hour() {
			return p, true
		}
	}
	return IndexPoint{}, false
}

// SunsetInfo is the sunset instant for a date, plus the location's IANA
// zone identifier.
type SunsetInfo struct {
	SunsetUTC time.Time
	Timezone  string
}
