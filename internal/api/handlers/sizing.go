package handlers

import (
	"errors"
	"net/http"

	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/api/models"
	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/model"
	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/sizing"
	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/tracking"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const displayPlaces = 2

// SizingHandler serves the calculator endpoints.
type SizingHandler struct {
	engine  *sizing.Engine
	tracker tracking.Tracker
}

// NewSizingHandler creates a new sizing handler. A nil tracker discards events.
func NewSizingHandler(engine *sizing.Engine, tracker tracking.Tracker) *SizingHandler {
	if tracker == nil {
		tracker = tracking.Nop{}
	}
	return &SizingHandler{engine: engine, tracker: tracker}
}

// Size handles POST /api/v1/size
func (h *SizingHandler) Size(c *gin.Context) {
	var req models.SizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	oc, err := h.engine.Calculate(toSizingRequest(req))
	h.tracker.Track(c.Request.Context(), tracking.NewEvent(tracking.EventCalculatorSubmitted, requestProps(req)))
	if err != nil {
		detail := errorDetail(err)
		h.tracker.Track(c.Request.Context(), tracking.NewEvent(tracking.EventCalculatorError, map[string]any{
			"code":   detail.Code,
			"region": req.Region,
		}))
		c.JSON(statusFor(err), models.ErrorResponse{Error: detail})
		return
	}

	resp := toSizeResponse(oc)
	h.tracker.Track(c.Request.Context(), tracking.NewEvent(tracking.EventCalculatorResult, map[string]any{
		"region":         resp.Region,
		"preset_matched": resp.PresetMatched,
		"load_source":    resp.LoadSource,
		"daily_load_kwh": resp.Display.DailyLoadKwh,
		"nameplate_kwh":  resp.Display.NameplateCapacityKwh,
	}))
	c.JSON(http.StatusOK, resp)
}

// Compare handles POST /api/v1/size/compare
func (h *SizingHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	variations := make([]sizing.Variation, len(req.Variations))
	for i, v := range req.Variations {
		variations[i] = sizing.Variation{Name: v.Name, Region: v.Region, Overrides: v.Overrides}
	}

	results := h.engine.Compare(toSizingRequest(req.Base), variations)

	out := make([]models.ComparisonResult, 0, len(results))
	for _, r := range results {
		cr := models.ComparisonResult{Name: r.Name}
		if r.Err != nil {
			detail := errorDetail(r.Err)
			cr.Error = &detail
		} else {
			resp := toSizeResponse(r.Outcome)
			cr.Size = &resp
		}
		out = append(out, cr)
	}

	zerolog.Ctx(c.Request.Context()).Debug().Int("variations", len(out)).Msg("compared sizing variations")
	c.JSON(http.StatusOK, models.CompareResponse{Comparison: out})
}

// EstimateLoad handles POST /api/v1/estimate-load
func (h *SizingHandler) EstimateLoad(c *gin.Context) {
	var req models.EstimateLoadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	daily, ok := model.EstimateDailyKwh(req.Amount, req.RatePerKwh, req.BillingPeriodDays)
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: errorDetail(model.ErrInsufficientInput)})
		return
	}

	h.tracker.Track(c.Request.Context(), tracking.NewEvent(tracking.EventLoadEstimated, map[string]any{
		"billing_period_days": req.BillingPeriodDays,
		"daily_kwh":           model.Round(daily, displayPlaces),
	}))
	c.JSON(http.StatusOK, models.EstimateLoadResponse{
		DailyKwh:        daily,
		DailyKwhRounded: model.Round(daily, displayPlaces),
		MonthlyKwh:      model.Round(daily*30, displayPlaces),
	})
}

func toSizingRequest(req models.SizeRequest) sizing.Request {
	return sizing.Request{
		DailyKwh:  req.DailyKwh,
		DailyUnit: req.DailyUnit,
		Bill:      req.Bill.ToModel(),
		Region:    req.Region,
		Overrides: req.Overrides,
	}
}

func toSizeResponse(oc *sizing.Outcome) models.SizeResponse {
	res := *oc.Result
	rows := sizing.Breakdown(oc)
	steps := make([]models.BreakdownStep, len(rows))
	for i, r := range rows {
		steps[i] = models.BreakdownStep{Step: r.Step, Operator: r.Operator, Factor: r.Factor, Kwh: r.Kwh}
	}
	return models.SizeResponse{
		Result: res,
		Display: models.DisplayFigures{
			DailyLoadKwh:         model.Round(oc.DailyLoadKwh, displayPlaces),
			DailyEnergyTargetKwh: model.Round(res.DailyEnergyTargetKwh, displayPlaces),
			UsableCapacityKwh:    model.Round(res.UsableCapacityKwh, displayPlaces),
			NameplateCapacityKwh: model.Round(res.NameplateCapacityKwh, displayPlaces),
		},
		Assumptions:   oc.Assumptions,
		DailyLoadKwh:  oc.DailyLoadKwh,
		LoadSource:    string(oc.LoadSource),
		Region:        oc.Region,
		PresetMatched: oc.PresetMatched,
		Breakdown:     steps,
	}
}

func requestProps(req models.SizeRequest) map[string]any {
	props := map[string]any{
		"region":        req.Region,
		"has_daily_kwh": req.DailyKwh != nil,
		"has_bill":      req.Bill != nil,
		"overridden":    !req.Overrides.IsEmpty(),
	}
	return props
}

// errorDetail maps core errors onto API error codes.
func errorDetail(err error) models.ErrorDetail {
	var de *model.DomainError
	switch {
	case errors.As(err, &de):
		return models.ErrorDetail{
			Code:    "OUT_OF_DOMAIN_ASSUMPTION",
			Message: err.Error(),
			Details: map[string]interface{}{
				"field":  de.Field,
				"value":  de.Value,
				"reason": de.Reason,
			},
		}
	case errors.Is(err, model.ErrInsufficientInput):
		return models.ErrorDetail{
			Code:    "INSUFFICIENT_INPUT",
			Message: "Cannot compute: provide a daily usage figure or a complete bill (amount, rate and billing period, all greater than zero).",
		}
	default:
		return models.ErrorDetail{Code: "SIZING_ERROR", Message: err.Error()}
	}
}

func statusFor(err error) int {
	if errors.Is(err, model.ErrInsufficientInput) || errors.Is(err, model.ErrOutOfDomainAssumption) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		},
	})
}
