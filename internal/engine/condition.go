package engine

import "strollcast/internal/types"

// ClassifyCondition maps a numeric weather code to its coarse condition
// label via ascending half-open bins. The mapping is total over all integer
// codes 0-99; codes outside that range (or otherwise malformed) fall back to
// "Partly cloudy".
//
// The bin structure governs both the outfit rules (via the label's trait
// methods) and the user-facing label, so reordering these ranges changes
// recommendations.
func ClassifyCondition(code int) types.ConditionLabel {
	switch {
	case code == 0:
		return types.ConditionClearSky
	case code >= 1 && code <= 3:
		return types.ConditionPartlyCloudy
	case code >= 4 && code <= 48:
		return types.ConditionFoggy
	case code >= 49 && code <= 67:
		return types.ConditionRainy
	case code >= 68 && code <= 77:
		return types.ConditionSnowy
	case code >= 78 && code <= 82:
		return types.ConditionRainShowers
	case code >= 83 && code <= 86:
		return types.ConditionSnowShowers
	case code >= 87 && code <= 99:
		return types.ConditionThunderstorm
	default:
		return types.ConditionPartlyCloudy
	}
}
