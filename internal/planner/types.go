package planner

import (
	"time"

	"strollcast/internal/types"
)

// PlanRequest describes one evening-walk planning call. When Lat and Lon are
// set the geocoding step is skipped and Country drives unit classification;
// otherwise City is geocoded and, with more than one match, the candidates
// are returned for the caller to pick from.
type PlanRequest struct {
	City            string
	DurationMinutes int
	Date            time.Time
	Lat             *float64
	Lon             *float64
	Country         string
}

// PlanResult is the outcome of a planning call. Exactly one of Candidates or
// the plan fields is populated: a non-empty Candidates list means the caller
// must disambiguate and resubmit with explicit coordinates.
type PlanResult struct {
	PlanID     string                     `json:"plan_id,omitempty"`
	Location   types.Location             `json:"location"`
	UnitSystem types.UnitSystem           `json:"unit_system"`
	Timezone   string                     `json:"timezone,omitempty"`
	Sunset     time.Time                  `json:"sunset,omitempty"`
	Start      time.Time                  `json:"start,omitempty"`
	Snapshot   types.WeatherSnapshot      `json:"snapshot"`
	Outfit     types.OutfitRecommendation `json:"outfit"`
	Candidates []types.Location           `json:"candidates,omitempty"`
}

// CheckRequest describes one live conditions check against a previously
// planned forecast snapshot. The snapshot and unit system come back from the
// caller unchanged; the service holds no per-plan state.
type CheckRequest struct {
	Lat        float64
	Lon        float64
	UnitSystem types.UnitSystem
	Forecast   types.WeatherSnapshot
}

// CheckResult is the outcome of a live conditions check.
type CheckResult struct {
	ObservedAt time.Time                  `json:"observed_at"`
	Snapshot   types.WeatherSnapshot      `json:"snapshot"`
	Factors    types.GranularFactors      `json:"factors"`
	Comparison types.ComparisonResult     `json:"comparison"`
	Decision   types.UpdateDecision       `json:"decision"`
	Outfit     types.OutfitRecommendation `json:"outfit"`
	Message    string                     `json:"message"`
}
