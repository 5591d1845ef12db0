package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strollcast/internal/core"
	"strollcast/internal/types"
)

func newOutfitsRouter() http.Handler {
	h := NewOutfitsHandler(core.NewValidator(testLogger()), testLogger())
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func TestOutfitsEndpoint(t *testing.T) {
	router := newOutfitsRouter()

	rec := postJSON(t, router, "/outfits", map[string]any{
		"temperature":   30.0,
		"condition":     "Snowy",
		"precipitation": 30.0,
		"wind_speed":    5.0,
		"unit_system":   "imperial",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data types.OutfitRecommendation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Contains(t, resp.Data.Outerwear, "Waterproof winter coat")
	assert.Equal(t, []string{"Insulated winter boots"}, resp.Data.Shoes)
	assert.Contains(t, resp.Data.Accessories, "Gloves")
}

func TestOutfitsEndpointDefaultsToImperial(t *testing.T) {
	router := newOutfitsRouter()

	// 80 without a unit system must be read as 80°F, not 80°C.
	rec := postJSON(t, router, "/outfits", map[string]any{
		"temperature":   80.0,
		"condition":     "Clear sky",
		"precipitation": 0.0,
		"wind_speed":    3.0,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data types.OutfitRecommendation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, []string{"Light breathable shirt", "Tank top or t-shirt"}, resp.Data.Outerwear)
	assert.Contains(t, resp.Data.Accessories, "Sunglasses")
}

func TestOutfitsEndpointValidation(t *testing.T) {
	router := newOutfitsRouter()

	rec := postJSON(t, router, "/outfits", map[string]any{
		"temperature":   70.0,
		"condition":     "Clear sky",
		"precipitation": 10.0,
		"wind_speed":    5.0,
		"unit_system":   "kelvin",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_invalid_unit", decodeError(t, rec).Code)
}

func TestLocaleEndpoint(t *testing.T) {
	router := newOutfitsRouter()

	tests := []struct {
		country  string
		wantUnit types.UnitSystem
		wantTemp string
	}{
		{"United States", types.UnitImperial, "fahrenheit"},
		{"Liberia", types.UnitImperial, "fahrenheit"},
		{"Germany", types.UnitMetric, "celsius"},
	}

	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/locale?country="+url.QueryEscape(tt.country), nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code)

			var resp struct {
				Data localeResponse `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantUnit, resp.Data.UnitSystem)
			assert.Equal(t, tt.wantTemp, resp.Data.TemperatureUnit)
		})
	}
}

func TestLocaleEndpointRequiresCountry(t *testing.T) {
	router := newOutfitsRouter()

	req := httptest.NewRequest(http.MethodGet, "/locale", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_missing_required_field", decodeError(t, rec).Code)
}
