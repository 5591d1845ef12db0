// Package handlers maps HTTP requests onto the planner service and the
// decision engine. Each handler owns its request DTOs and registers its own
// routes; cross-cutting concerns live in core.
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"strollcast/internal/core"
	"strollcast/internal/planner"
	"strollcast/internal/types"
)

// dateLayout is the wire format for the walk date.
const dateLayout = "2006-01-02"

// WalkService is the planner surface the walks handler depends on. Defined
// here so tests can substitute a mock without touching the planner package.
type WalkService interface {
	PlanWalk(ctx context.Context, req planner.PlanRequest) (*planner.PlanResult, error)
	CheckCurrent(ctx context.Context, req planner.CheckRequest) (*planner.CheckResult, error)
}

// WalksHandler serves the walk planning and live-check endpoints.
type WalksHandler struct {
	service   WalkService
	validator *core.Validator
	logger    *slog.Logger
}

// NewWalksHandler creates a walks handler.
func NewWalksHandler(service WalkService, validator *core.Validator, logger *slog.Logger) *WalksHandler {
	return &WalksHandler{service: service, validator: validator, logger: logger}
}

// RegisterRoutes mounts the walk endpoints onto the /v1 group.
func (h *WalksHandler) RegisterRoutes(r chi.Router) {
	r.Post("/walks/plan", h.PlanWalk)
	r.Post("/walks/check", h.CheckCurrent)
}

// planWalkRequest is the wire DTO for POST /v1/walks/plan. Lat/Lon/Country
// are the disambiguation resubmission fields: the caller copies them from a
// previously returned candidate.
type planWalkRequest struct {
	City            string   `json:"city" validate:"required"`
	DurationMinutes int      `json:"duration_minutes" validate:"required,gt=0,lte=1440"`
	Date            string   `json:"date" validate:"required"`
	Lat             *float64 `json:"lat" validate:"required_with=Lon,omitempty,latitude"`
	Lon             *float64 `json:"lon" validate:"required_with=Lat,omitempty,longitude"`
	Country         string   `json:"country"`
}

// snapshotDTO is the wire form of a forecast snapshot echoed back by the
// caller on the check endpoint. Numeric fields are pointers to distinguish
// an absent field from a legitimate zero.
type snapshotDTO struct {
	Temperature   *float64 `json:"temperature" validate:"required"`
	Condition     string   `json:"condition" validate:"required"`
	Precipitation *float64 `json:"precipitation" validate:"required,gte=0,lte=100"`
	WindSpeed     *float64 `json:"wind_speed" validate:"required,gte=0"`
}

func (d snapshotDTO) toDomain() types.WeatherSnapshot {
	return types.WeatherSnapshot{
		Temperature:   *d.Temperature,
		Condition:     types.ConditionLabel(d.Condition),
		Precipitation: *d.Precipitation,
		WindSpeed:     *d.WindSpeed,
	}
}

// checkRequest is the wire DTO for POST /v1/walks/check.
type checkRequest struct {
	Lat        *float64    `json:"lat" validate:"required,latitude"`
	Lon        *float64    `json:"lon" validate:"required,longitude"`
	UnitSystem string      `json:"unit_system" validate:"required,oneof=metric imperial"`
	Forecast   snapshotDTO `json:"forecast" validate:"required"`
}

// PlanWalk handles POST /v1/walks/plan.
func (h *WalksHandler) PlanWalk(w http.ResponseWriter, r *http.Request) {
	var req planWalkRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.Error(w, r, err)
		return
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		core.Error(w, r, err)
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		core.Error(w, r, types.NewAppError(types.ErrCodeValidationInvalidDate,
			"date must be formatted YYYY-MM-DD", err))
		return
	}

	result, err := h.service.PlanWalk(r.Context(), planner.PlanRequest{
		City:            req.City,
		DurationMinutes: req.DurationMinutes,
		Date:            date,
		Lat:             req.Lat,
		Lon:             req.Lon,
		Country:         req.Country,
	})
	if err != nil {
		core.Error(w, r, err)
		return
	}

	core.JSON(w, r, http.StatusOK, result)
}

// CheckCurrent handles POST /v1/walks/check.
func (h *WalksHandler) CheckCurrent(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.Error(w, r, err)
		return
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		core.Error(w, r, err)
		return
	}

	result, err := h.service.CheckCurrent(r.Context(), planner.CheckRequest{
		Lat:        *req.Lat,
		Lon:        *req.Lon,
		UnitSystem: types.UnitSystem(req.UnitSystem),
		Forecast:   req.Forecast.toDomain(),
	})
	if err != nil {
		core.Error(w, r, err)
		return
	}

	core.JSON(w, r, http.StatusOK, result)
}
