package types

// Location represents a geocoded place returned by the geocoding provider.
type Location struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	State   string  `json:"state,omitempty"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// WeatherSnapshot is one point-in-time (or one forecast-hour) weather
// reading. Values are expressed in the unit system chosen for the planning
// session. Immutable once constructed.
type WeatherSnapshot struct {
	Temperature float64        `json:"temperature"`
	Condition   ConditionLabel `json:"condition"`
	// Precipitation is a 0-100 percent chance (forecast path) or an
	// intensity-derived percentage (live path).
	Precipitation float64 `json:"precipitation" validate:"gte=0,lte=100"`
	WindSpeed     float64 `json:"wind_speed" validate:"gte=0"`
}

// GranularFactors holds the derived and provider-reported factors available
// only on the live path. The forecast path never populates this.
type GranularFactors struct {
	WindChill     float64 `json:"wind_chill"`
	Humidity      float64 `json:"humidity"`
	UVIndex       float64 `json:"uv_index"`
	CloudCover    float64 `json:"cloud_cover"`
	WindDirection float64 `json:"wind_direction"`
	WindGusts     float64 `json:"wind_gusts"`
	// FeelsLike is reported directly from the live provider's apparent
	// temperature field, not recomputed.
	FeelsLike float64 `json:"feels_like"`
}

// OutfitRecommendation is a layered outfit produced by the rule engine.
// Order reflects rule-evaluation order (most specific/severe first).
// The slices are hard-capped at 3/2/4 entries respectively.
type OutfitRecommendation struct {
	Outerwear   []string `json:"outerwear"`
	Shoes       []string `json:"shoes"`
	Accessories []string `json:"accessories"`
}

// FactorComparison is the forecast-vs-actual diff for a single numeric factor.
// Difference is signed: actual minus forecast.
type FactorComparison struct {
	Forecast    float64 `json:"forecast"`
	Actual      float64 `json:"actual"`
	Difference  float64 `json:"difference"`
	Significant bool    `json:"significant"`
}

// ConditionComparison is the forecast-vs-actual diff for the condition label.
type ConditionComparison struct {
	Forecast ConditionLabel `json:"forecast"`
	Actual   ConditionLabel `json:"actual"`
	Changed  bool           `json:"changed"`
}

// ComparisonResult is the full forecast-vs-actual diff plus its prose summary.
type ComparisonResult struct {
	Temperature           FactorComparison    `json:"temperature"`
	WindSpeed             FactorComparison    `json:"wind_speed"`
	Precipitation         FactorComparison    `json:"precipitation"`
	Condition             ConditionComparison `json:"condition"`
	HasSignificantChanges bool                `json:"has_significant_changes"`
	Summary               string              `json:"summary"`
}

// UpdateDecision states whether a previously issued recommendation should be
// revised, with one human-readable reason per tripped threshold.
type UpdateDecision struct {
	ShouldUpdate bool     `json:"should_update"`
	Reasons      []string `json:"reasons"`
	Severity     Severity `json:"severity,omitempty"`
}
