package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"strollcast/internal/types"
)

func TestClassifyConditionBins(t *testing.T) {
	tests := []struct {
		name string
		code int
		want types.ConditionLabel
	}{
		{"clear sky", 0, types.ConditionClearSky},
		{"partly cloudy low", 1, types.ConditionPartlyCloudy},
		{"partly cloudy high", 3, types.ConditionPartlyCloudy},
		{"foggy low", 4, types.ConditionFoggy},
		{"foggy high", 48, types.ConditionFoggy},
		{"rainy low", 49, types.ConditionRainy},
		{"rainy high", 67, types.ConditionRainy},
		{"snowy low", 68, types.ConditionSnowy},
		{"snowy high", 77, types.ConditionSnowy},
		{"rain showers low", 78, types.ConditionRainShowers},
		{"rain showers high", 82, types.ConditionRainShowers},
		{"snow showers low", 83, types.ConditionSnowShowers},
		{"snow showers high", 86, types.ConditionSnowShowers},
		{"thunderstorm low", 87, types.ConditionThunderstorm},
		{"thunderstorm high", 99, types.ConditionThunderstorm},
		{"above range", 150, types.ConditionPartlyCloudy},
		{"negative", -1, types.ConditionPartlyCloudy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyCondition(tt.code))
		})
	}
}

// TestClassifyConditionTotal verifies the mapping is total and bin-exhaustive
// for every integer code 0-99: each code yields a label from the fixed set.
func TestClassifyConditionTotal(t *testing.T) {
	known := map[types.ConditionLabel]bool{
		types.ConditionClearSky:     true,
		types.ConditionPartlyCloudy: true,
		types.ConditionFoggy:        true,
		types.ConditionRainy:        true,
		types.ConditionSnowy:        true,
		types.ConditionRainShowers:  true,
		types.ConditionSnowShowers:  true,
		types.ConditionThunderstorm: true,
	}
	for code := 0; code <= 99; code++ {
		label := ClassifyCondition(code)
		assert.True(t, known[label], "code %d produced unknown label %q", code, label)
	}
}

func TestConditionTraits(t *testing.T) {
	assert.True(t, types.ConditionRainy.IsRain())
	assert.True(t, types.ConditionRainShowers.IsRain())
	assert.True(t, types.ConditionSnowy.IsSnow())
	assert.True(t, types.ConditionSnowShowers.IsSnow())
	assert.True(t, types.ConditionClearSky.IsClear())

	// Thunderstorm matches neither the rain nor the snow trait, mirroring the
	// label-text matching it replaced.
	assert.False(t, types.ConditionThunderstorm.IsRain())
	assert.False(t, types.ConditionThunderstorm.IsSnow())
	assert.False(t, types.ConditionFoggy.IsRain())
	assert.False(t, types.ConditionPartlyCloudy.IsClear())
}
