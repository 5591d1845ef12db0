package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"strollcast/internal/engine"
	"strollcast/internal/types"
)

// hourlyTimeLayout is the provider's local-time timestamp format.
const hourlyTimeLayout = "2006-01-02T15:04"

// WeatherClient implements ForecastProvider and LiveProvider against an
// Open-Meteo style forecast endpoint.
type WeatherClient struct {
	base    *BaseClient
	baseURL string
}

// NewWeatherClient creates a weather client rooted at baseURL.
func NewWeatherClient(base *BaseClient, baseURL string) *WeatherClient {
	return &WeatherClient{base: base, baseURL: baseURL}
}

// forecastResponse mirrors the provider's hourly forecast payload: parallel
// arrays indexed by timestamp.
type forecastResponse struct {
	Timezone string `json:"timezone"`
	Hourly   struct {
		Time                     []string  `json:"time"`
		Temperature              []float64 `json:"temperature_2m"`
		PrecipitationProbability []float64 `json:"precipitation_probability"`
		WindSpeed                []float64 `json:"wind_speed_10m"`
		WeatherCode              []int     `json:"weather_code"`
	} `json:"hourly"`
}

// currentResponse mirrors the provider's current-conditions payload.
type currentResponse struct {
	Timezone string `json:"timezone"`
	Current  struct {
		Time                string  `json:"time"`
		Temperature         float64 `json:"temperature_2m"`
		ApparentTemperature float64 `json:"apparent_temperature"`
		Humidity            float64 `json:"relative_humidity_2m"`
		Precipitation       float64 `json:"precipitation"`
		WeatherCode         int     `json:"weather_code"`
		CloudCover          float64 `json:"cloud_cover"`
		WindSpeed           float64 `json:"wind_speed_10m"`
		WindDirection       float64 `json:"wind_direction_10m"`
		WindGusts           float64 `json:"wind_gusts_10m"`
	} `json:"current"`
}

// indexResponse mirrors the provider's auxiliary hourly series payload.
type indexResponse struct {
	Timezone string `json:"timezone"`
	Hourly   struct {
		Time                     []string  `json:"time"`
		UVIndex                  []float64 `json:"uv_index"`
		PrecipitationProbability []float64 `json:"precipitation_probability"`
	} `json:"hourly"`
}

// HourlyForecast fetches the hourly forecast series for a coordinate in the
// requested unit system. Timestamps are parsed in the zone the provider
// names for the location.
func (c *WeatherClient) HourlyForecast(ctx context.Context, lat, lon float64, u types.UnitSystem) (*HourlySeries, error) {
	q := c.coordQuery(lat, lon, u)
	q.Set("hourly", "temperature_2m,precipitation_probability,wind_speed_10m,weather_code")
	q.Set("forecast_days", "3")

	var payload forecastResponse
	if err := c.get(ctx, q, &payload); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(payload.Timezone)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeUpstreamWeather,
			fmt.Sprintf("forecast provider returned unknown timezone %q", payload.Timezone), err)
	}

	h := payload.Hourly
	if len(h.Time) == 0 ||
		len(h.Temperature) != len(h.Time) ||
		len(h.PrecipitationProbability) != len(h.Time) ||
		len(h.WindSpeed) != len(h.Time) ||
		len(h.WeatherCode) != len(h.Time) {
		return nil, types.NewAppError(types.ErrCodeUpstreamWeather,
			"forecast provider returned a malformed hourly series", nil)
	}

	series := &HourlySeries{Timezone: payload.Timezone, Points: make([]HourlyPoint, 0, len(h.Time))}
	for i, ts := range h.Time {
		t, err := time.ParseInLocation(hourlyTimeLayout, ts, loc)
		if err != nil {
			return nil, types.NewAppError(types.ErrCodeUpstreamWeather,
				fmt.Sprintf("forecast provider returned malformed timestamp %q", ts), err)
		}
		series.Points = append(series.Points, HourlyPoint{
			Time:                     t,
			Temperature:              h.Temperature[i],
			PrecipitationProbability: h.PrecipitationProbability[i],
			WindSpeed:                h.WindSpeed[i],
			WeatherCode:              h.WeatherCode[i],
		})
	}
	return series, nil
}

// Current fetches the instantaneous reading for a coordinate.
func (c *WeatherClient) Current(ctx context.Context, lat, lon float64, u types.UnitSystem) (*CurrentReading, error) {
	q := c.coordQuery(lat, lon, u)
	q.Set("current", "temperature_2m,apparent_temperature,relative_humidity_2m,precipitation,weather_code,cloud_cover,wind_speed_10m,wind_direction_10m,wind_gusts_10m")

	var payload currentResponse
	if err := c.get(ctx, q, &payload); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(payload.Timezone)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeUpstreamWeather,
			fmt.Sprintf("weather provider returned unknown timezone %q", payload.Timezone), err)
	}
	observedAt, err := time.ParseInLocation(hourlyTimeLayout, payload.Current.Time, loc)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeUpstreamWeather,
			fmt.Sprintf("weather provider returned malformed observation time %q", payload.Current.Time), err)
	}

	cur := payload.Current
	return &CurrentReading{
		Time:                observedAt,
		Timezone:            payload.Timezone,
		Temperature:         cur.Temperature,
		ApparentTemperature: cur.ApparentTemperature,
		Humidity:            cur.Humidity,
		Precipitation:       cur.Precipitation,
		WeatherCode:         cur.WeatherCode,
		CloudCover:          cur.CloudCover,
		WindSpeed:           cur.WindSpeed,
		WindDirection:       cur.WindDirection,
		WindGusts:           cur.WindGusts,
	}, nil
}

// HourlyIndices fetches the hourly UV-index and precipitation-probability
// series for a coordinate. These are unit-independent, so no unit parameters
// are sent.
func (c *WeatherClient) HourlyIndices(ctx context.Context, lat, lon float64) (*IndexSeries, error) {
	q := url.Values{}
	q.Set("latitude", formatCoord(lat))
	q.Set("longitude", formatCoord(lon))
	q.Set("timezone", "auto")
	q.Set("hourly", "uv_index,precipitation_probability")
	q.Set("forecast_days", "1")

	var payload indexResponse
	if err := c.get(ctx, q, &payload); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(payload.Timezone)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeUpstreamWeather,
			fmt.Sprintf("weather provider returned unknown timezone %q", payload.Timezone), err)
	}

	h := payload.Hourly
	if len(h.UVIndex) != len(h.Time) || len(h.PrecipitationProbability) != len(h.Time) {
		return nil, types.NewAppError(types.ErrCodeUpstreamWeather,
			"weather provider returned a malformed index series", nil)
	}

	series := &IndexSeries{Timezone: payload.Timezone, Points: make([]IndexPoint, 0, len(h.Time))}
	for i, ts := range h.Time {
		t, err := time.ParseInLocation(hourlyTimeLayout, ts, loc)
		if err != nil {
			return nil, types.NewAppError(types.ErrCodeUpstreamWeather,
				fmt.Sprintf("weather provider returned malformed timestamp %q", ts), err)
		}
		series.Points = append(series.Points, IndexPoint{
			Time:                     t,
			UVIndex:                  h.UVIndex[i],
			PrecipitationProbability: h.PrecipitationProbability[i],
		})
	}
	return series, nil
}

// coordQuery builds the shared coordinate and unit query parameters.
func (c *WeatherClient) coordQuery(lat, lon float64, u types.UnitSystem) url.Values {
	tempUnit, speedUnit := engine.LocaleUnits(u)

	q := url.Values{}
	q.Set("latitude", formatCoord(lat))
	q.Set("longitude", formatCoord(lon))
	q.Set("temperature_unit", tempUnit)
	q.Set("wind_speed_unit", speedUnit)
	q.Set("timezone", "auto")
	return q
}

// get executes a GET against the forecast endpoint and decodes the payload.
func (c *WeatherClient) get(ctx context.Context, q url.Values, dst interface{}) error {
	endpoint := fmt.Sprintf("%s/v1/forecast?%s", c.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return types.NewAppError(types.ErrCodeInternalUnexpected,
			"failed to build weather request", err)
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return types.NewAppError(types.ErrCodeUpstreamWeather,
			"weather provider unavailable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.NewAppError(types.ErrCodeUpstreamWeather,
			fmt.Sprintf("weather provider returned status %d", resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return types.NewAppError(types.ErrCodeUpstreamWeather,
			"failed to decode weather response", err)
	}
	return nil
}

// formatCoord renders a coordinate with enough precision for the provider.
func formatCoord(v float64) string {
	return fmt.Sprintf("%.4f", v)
}
