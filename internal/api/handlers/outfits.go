package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"strollcast/internal/core"
	"strollcast/internal/engine"
	"strollcast/internal/types"
)

// OutfitsHandler exposes the decision engine directly: outfit synthesis from
// an arbitrary snapshot, and locale classification from a country name. It
// has no upstream dependencies.
type OutfitsHandler struct {
	validator *core.Validator
	logger    *slog.Logger
}

// NewOutfitsHandler creates an outfits handler.
func NewOutfitsHandler(validator *core.Validator, logger *slog.Logger) *OutfitsHandler {
	return &OutfitsHandler{validator: validator, logger: logger}
}

// RegisterRoutes mounts the engine endpoints onto the /v1 group.
func (h *OutfitsHandler) RegisterRoutes(r chi.Router) {
	r.Post("/outfits", h.SynthesizeOutfit)
	r.Get("/locale", h.ClassifyLocale)
}

// outfitRequest is the wire DTO for POST /v1/outfits. The unit system
// defaults to imperial when omitted.
type outfitRequest struct {
	Temperature   *float64 `json:"temperature" validate:"required"`
	Condition     string   `json:"condition" validate:"required"`
	Precipitation *float64 `json:"precipitation" validate:"required,gte=0,lte=100"`
	WindSpeed     *float64 `json:"wind_speed" validate:"required,gte=0"`
	UnitSystem    string   `json:"unit_system" validate:"omitempty,oneof=metric imperial"`
}

// localeResponse is the wire shape for GET /v1/locale.
type localeResponse struct {
	UnitSystem      types.UnitSystem `json:"unit_system"`
	TemperatureUnit string           `json:"temperature_unit"`
	SpeedUnit       string           `json:"speed_unit"`
}

// SynthesizeOutfit handles POST /v1/outfits.
func (h *OutfitsHandler) SynthesizeOutfit(w http.ResponseWriter, r *http.Request) {
	var req outfitRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.Error(w, r, err)
		return
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		core.Error(w, r, err)
		return
	}

	u := types.UnitSystem(req.UnitSystem)
	if req.UnitSystem == "" {
		u = types.UnitImperial
	}

	snapshot := types.WeatherSnapshot{
		Temperature:   *req.Temperature,
		Condition:     types.ConditionLabel(req.Condition),
		Precipitation: *req.Precipitation,
		WindSpeed:     *req.WindSpeed,
	}

	core.JSON(w, r, http.StatusOK, engine.SynthesizeOutfit(snapshot, u, engine.ForecastRules()))
}

// ClassifyLocale handles GET /v1/locale?country=.
func (h *OutfitsHandler) ClassifyLocale(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country")
	if country == "" {
		core.Error(w, r, types.NewAppError(types.ErrCodeValidationMissingField,
			"country query parameter is required", nil))
		return
	}

	u := engine.ClassifyUnitSystem(country)
	tempUnit, speedUnit := engine.LocaleUnits(u)

	core.JSON(w, r, http.StatusOK, localeResponse{
		UnitSystem:      u,
		TemperatureUnit: tempUnit,
		SpeedUnit:       speedUnit,
	})
}
