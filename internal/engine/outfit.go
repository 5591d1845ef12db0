package engine

import "strollcast/internal/types"

// Output caps for a recommendation. More rules may fire than there is room
// for; truncation preserves insertion order, which follows rule-evaluation
// order (most specific first).
const (
	maxOuterwear   = 3
	maxShoes       = 2
	maxAccessories = 4
)

// Threshold is a single cutoff with an explicit literal per unit system.
// The two values are independent literals, not conversions of each other.
type Threshold struct {
	Imperial float64
	Metric   float64
}

// For returns the literal for the active unit system.
func (t Threshold) For(u types.UnitSystem) float64 {
	if u == types.UnitImperial {
		return t.Imperial
	}
	return t.Metric
}

// Thresholds holds every cutoff the outfit rules evaluate. It is passed into
// the synthesizer explicitly so tests can assert exact boundary values per
// unit system.
type Thresholds struct {
	// Temperature bands, evaluated top-down; first match wins.
	BandHot  Threshold
	BandMild Threshold
	BandCool Threshold
	BandCold Threshold

	// Precipitation percentages, unit-system independent.
	HeavyPrecip float64
	LightPrecip float64

	// Wind speed above which a windbreaker is added, and the comfort floor
	// below which windy weather also warrants ear protection.
	Wind        Threshold
	WindComfort Threshold

	// Chill floor for cold accessories and Heat floor for sun protection.
	Chill Threshold
	Heat  Threshold

	// Default footwear cutoffs, applied only when no earlier rule chose
	// footwear. FootwearMid differs between the rule-set variants.
	FootwearHot Threshold
	FootwearMid Threshold
}

// RuleSet names an outfit rule-set variant. The forecast-time and live-check
// call sites drifted apart organically in the product's rules (scarf
// handling and the mid footwear floor); both behaviors are preserved as
// distinct variants rather than silently unified.
type RuleSet struct {
	Name       string
	Thresholds Thresholds

	// ScarfBelowChill adds a scarf whenever the temperature is below the
	// chill floor. Only the live-check variant does this.
	ScarfBelowChill bool
}

// baseThresholds returns the cutoffs shared by both variants.
func baseThresholds() Thresholds {
	return Thresholds{
		BandHot:     Threshold{Imperial: 75, Metric: 24},
		BandMild:    Threshold{Imperial: 60, Metric: 15},
		BandCool:    Threshold{Imperial: 45, Metric: 7},
		BandCold:    Threshold{Imperial: 32, Metric: 0},
		HeavyPrecip: 50,
		LightPrecip: 20,
		Wind:        Threshold{Imperial: 15, Metric: 24},
		WindComfort: Threshold{Imperial: 50, Metric: 10},
		Chill:       Threshold{Imperial: 40, Metric: 4},
		Heat:        Threshold{Imperial: 70, Metric: 21},
		FootwearHot: Threshold{Imperial: 75, Metric: 24},
	}
}

// ForecastRules is the rule-set variant used when planning a walk from a
// forecast snapshot.
func ForecastRules() RuleSet {
	t := baseThresholds()
	t.FootwearMid = Threshold{Imperial: 45, Metric: 7}
	return RuleSet{
		Name:       "forecast",
		Thresholds: t,
	}
}

// LiveCheckRules is the rule-set variant used when re-checking an outfit
// against live conditions.
func LiveCheckRules() RuleSet {
	t := baseThresholds()
	t.FootwearMid = Threshold{Imperial: 50, Metric: 10}
	return RuleSet{
		Name:            "live_check",
		Thresholds:      t,
		ScarfBelowChill: true,
	}
}

// SynthesizeOutfit produces a layered outfit recommendation from a weather
// snapshot. Rules are evaluated in a fixed order; later rules check for and
// avoid duplicating items already added, and the final lists are truncated
// to the hard caps.
func SynthesizeOutfit(snap types.WeatherSnapshot, u types.UnitSystem, rules RuleSet) types.OutfitRecommendation {
	t := rules.Thresholds
	temp := snap.Temperature

	var outerwear, shoes, accessories []string

	// Base layer by temperature band. Bands are exhaustive and ordered
	// high-to-low; exactly one matches.
	switch {
	case temp >= t.BandHot.For(u):
		outerwear = append(outerwear, "Light breathable shirt", "Tank top or t-shirt")
	case temp >= t.BandMild.For(u):
		outerwear = append(outerwear, "Light jacket", "Long sleeve shirt")
	case temp >= t.BandCool.For(u):
		outerwear = append(outerwear, "Medium jacket", "Sweater")
	case temp >= t.BandCold.For(u):
		outerwear = append(outerwear, "Heavy coat", "Insulated jacket")
	default:
		outerwear = append(outerwear, "Winter coat", "Thermal layers")
	}

	// Precipitation. A high chance of rain (or a rain condition) gets the
	// full wet-weather kit; a marginal chance only a just-in-case layer.
	if snap.Precipitation > t.HeavyPrecip || snap.Condition.IsRain() {
		outerwear = append(outerwear, "Rain jacket")
		shoes = append(shoes, "Waterproof boots")
		accessories = append(accessories, "Umbrella")
	} else if snap.Precipitation > t.LightPrecip {
		accessories = append(accessories, "Light rain jacket (just in case)")
	}

	// Snow override: additive on top of whatever the earlier rules chose.
	if snap.Condition.IsSnow() {
		outerwear = append(outerwear, "Waterproof winter coat")
		shoes = append(shoes, "Insulated winter boots")
		accessories = append(accessories, "Winter hat", "Gloves", "Scarf")
	}

	// Wind.
	if snap.WindSpeed > t.Wind.For(u) {
		outerwear = append(outerwear, "Windbreaker")
		if temp < t.WindComfort.For(u) {
			accessories = append(accessories, "Ear warmers or hat")
		}
	}

	// Cold accessories below the chill floor.
	if temp < t.Chill.For(u) {
		if !containsItem(accessories, "Winter hat") {
			accessories = append(accessories, "Beanie or winter hat")
		}
		if !containsItem(accessories, "Gloves") {
			accessories = append(accessories, "Gloves")
		}
		if rules.ScarfBelowChill && !containsItem(accessories, "Scarf") {
			accessories = append(accessories, "Scarf")
		}
	}

	// Heat accessories: sun protection only under a clear sky.
	if temp > t.Heat.For(u) && snap.Condition.IsClear() {
		accessories = append(accessories, "Sunglasses", "Sun hat", "Sunscreen")
	}

	// Default footwear, only when no wet-weather or snow rule chose shoes.
	if len(shoes) == 0 {
		switch {
		case temp > t.FootwearHot.For(u):
			shoes = append(shoes, "Walking shoes", "Breathable sneakers")
		case temp > t.FootwearMid.For(u):
			shoes = append(shoes, "Walking shoes", "Athletic sneakers")
		default:
			shoes = append(shoes, "Closed-toe shoes", "Warm boots")
		}
	}

	return types.OutfitRecommendation{
		Outerwear:   truncateItems(outerwear, maxOuterwear),
		Shoes:       truncateItems(shoes, maxShoes),
		Accessories: truncateItems(accessories, maxAccessories),
	}
}

func containsItem(items []string, item string) bool {
	for _, it := range items {
		if it == item {
			return true
		}
	}
	return false
}

func truncateItems(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}
