// Package planner orchestrates the upstream providers and the decision
// engine into the two user-facing flows: planning a walk that ends at
// sunset, and checking live conditions against the planned forecast.
package planner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"strollcast/internal/engine"
	"strollcast/internal/external"
	"strollcast/internal/types"
)

// Service composes the upstream providers. It is stateless: every call
// recomputes from its inputs, so checks can be repeated with the same
// forecast snapshot.
type Service struct {
	geocoder external.Geocoder
	forecast external.ForecastProvider
	live     external.LiveProvider
	sunset   external.SunsetProvider
	logger   *slog.Logger
}

// NewService creates a planner service over the given providers.
func NewService(
	geocoder external.Geocoder,
	forecast external.ForecastProvider,
	live external.LiveProvider,
	sunset external.SunsetProvider,
	logger *slog.Logger,
) *Service {
	return &Service{
		geocoder: geocoder,
		forecast: forecast,
		live:     live,
		sunset:   sunset,
		logger:   logger,
	}
}

// PlanWalk resolves a location, looks up sunset for the requested date, and
// recommends an outfit for the forecast hour covering the walk's start
// (sunset minus duration). With an ambiguous city and no explicit
// coordinates it returns the candidate list instead of a plan.
func (s *Service) PlanWalk(ctx context.Context, req PlanRequest) (*PlanResult, error) {
	loc, candidates, err := s.resolveLocation(ctx, req)
	if err != nil {
		return nil, err
	}
	if candidates != nil {
		return &PlanResult{Candidates: candidates}, nil
	}

	// Unit system is classified once per plan from the resolved country and
	// threaded through everything downstream.
	u := engine.ClassifyUnitSystem(loc.Country)

	sun, err := s.sunset.Sunset(ctx, loc.Lat, loc.Lon, req.Date)
	if err != nil {
		return nil, err
	}

	start := sun.SunsetUTC.Add(-time.Duration(req.DurationMinutes) * time.Minute)

	series, err := s.forecast.HourlyForecast(ctx, loc.Lat, loc.Lon, u)
	if err != nil {
		return nil, err
	}

	point, ok := series.At(start)
	if !ok {
		return nil, types.NewAppError(types.ErrCodeNotFoundForecastWindow,
			fmt.Sprintf("forecast series ends before walk start %s", start.Format(time.RFC3339)), nil)
	}

	snapshot := types.WeatherSnapshot{
		Temperature:   point.Temperature,
		Condition:     engine.ClassifyCondition(point.WeatherCode),
		Precipitation: point.PrecipitationProbability,
		WindSpeed:     point.WindSpeed,
	}

	zone := sun.Timezone
	tz, err := time.LoadLocation(zone)
	if err != nil {
		s.logger.WarnContext(ctx, "falling back to UTC for unknown zone",
			slog.String("timezone", zone))
		tz = time.UTC
		zone = "UTC"
	}

	return &PlanResult{
		PlanID:     uuid.NewString(),
		Location:   loc,
		UnitSystem: u,
		Timezone:   zone,
		Sunset:     sun.SunsetUTC.In(tz),
		Start:      start.In(tz),
		Snapshot:   snapshot,
		Outfit:     engine.SynthesizeOutfit(snapshot, u, engine.ForecastRules()),
	}, nil
}

// CheckCurrent fetches live conditions and the hourly index series
// concurrently, compares them against the planned forecast snapshot, and
// decides whether the outfit should be revised.
func (s *Service) CheckCurrent(ctx context.Context, req CheckRequest) (*CheckResult, error) {
	var (
		reading *external.CurrentReading
		indices *external.IndexSeries
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reading, err = s.live.Current(gctx, req.Lat, req.Lon, req.UnitSystem)
		return err
	})
	g.Go(func() error {
		var err error
		indices, err = s.live.HourlyIndices(gctx, req.Lat, req.Lon)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// The index series carries the rain chance and UV for the current hour.
	// A missing entry degrades to zeros rather than failing the check.
	var uvIndex, precipProb float64
	if point, ok := indices.AtHour(reading.Time); ok {
		uvIndex = point.UVIndex
		precipProb = point.PrecipitationProbability
	} else {
		s.logger.WarnContext(ctx, "no index entry for current hour",
			slog.Time("observed_at", reading.Time))
	}

	snapshot := types.WeatherSnapshot{
		Temperature:   reading.Temperature,
		Condition:     engine.ClassifyCondition(reading.WeatherCode),
		Precipitation: precipProb,
		WindSpeed:     reading.WindSpeed,
	}

	factors := types.GranularFactors{
		WindChill:     engine.WindChill(reading.Temperature, reading.WindSpeed, req.UnitSystem),
		Humidity:      reading.Humidity,
		UVIndex:       uvIndex,
		CloudCover:    reading.CloudCover,
		WindDirection: reading.WindDirection,
		WindGusts:     reading.WindGusts,
		FeelsLike:     reading.ApparentTemperature,
	}

	comparison := engine.Compare(req.Forecast, snapshot, req.UnitSystem)
	decision := engine.Decide(req.Forecast, snapshot, req.UnitSystem)
	outfit := engine.SynthesizeOutfit(snapshot, req.UnitSystem, engine.LiveCheckRules())
	message := engine.GenerateMessage(comparison, snapshot, factors, req.UnitSystem)

	return &CheckResult{
		ObservedAt: reading.Time,
		Snapshot:   snapshot,
		Factors:    factors,
		Comparison: comparison,
		Decision:   decision,
		Outfit:     outfit,
		Message:    message,
	}, nil
}

// resolveLocation turns a PlanRequest into a single location, or into a
// candidate list when the city is ambiguous and no coordinates were given.
func (s *Service) resolveLocation(ctx context.Context, req PlanRequest) (types.Location, []types.Location, error) {
	if req.Lat != nil && req.Lon != nil {
		return types.Location{
			Name:    req.City,
			Country: req.Country,
			Lat:     *req.Lat,
			Lon:     *req.Lon,
		}, nil, nil
	}

	candidates, err := s.geocoder.Search(ctx, req.City)
	if err != nil {
		return types.Location{}, nil, err
	}
	if len(candidates) > 1 {
		return types.Location{}, candidates, nil
	}
	return candidates[0], nil, nil
}
