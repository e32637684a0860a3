package models

import "github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/model"

// SizeResponse carries raw figures for downstream use and rounded figures
// for display.
type SizeResponse struct {
	Result        model.SizingResult      `json:"result"`
	Display       DisplayFigures          `json:"display"`
	Assumptions   model.SizingAssumptions `json:"assumptions"`
	DailyLoadKwh  float64                 `json:"daily_load_kwh"`
	LoadSource    string                  `json:"load_source"` // "manual" or "bill"
	Region        string                  `json:"region"`
	PresetMatched bool                    `json:"preset_matched"`
	Breakdown     []BreakdownStep         `json:"breakdown"`
}

// DisplayFigures are rounded to two decimals.
type DisplayFigures struct {
	DailyLoadKwh         float64 `json:"daily_load_kwh"`
	DailyEnergyTargetKwh float64 `json:"daily_energy_target_kwh"`
	UsableCapacityKwh    float64 `json:"usable_capacity_kwh"`
	NameplateCapacityKwh float64 `json:"nameplate_capacity_kwh"`
}

// BreakdownStep is one step of the sizing chain.
type BreakdownStep struct {
	Step     string  `json:"step"`
	Operator string  `json:"operator"`
	Factor   float64 `json:"factor"`
	Kwh      float64 `json:"kwh"`
}

// CompareResponse keeps variation order. Failed variations carry Error.
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

type ComparisonResult struct {
	Name  string        `json:"name"`
	Size  *SizeResponse `json:"size,omitempty"`
	Error *ErrorDetail  `json:"error,omitempty"`
}

// EstimateLoadResponse is the bill-derived load.
type EstimateLoadResponse struct {
	DailyKwh        float64 `json:"daily_kwh"`
	DailyKwhRounded float64 `json:"daily_kwh_rounded"`
	MonthlyKwh      float64 `json:"monthly_kwh"`
}

// EventResponse acknowledges a tracked client event.
type EventResponse struct {
	Accepted string `json:"accepted"`
}

// PresetInfo is one region preset.
type PresetInfo struct {
	Code        string                  `json:"code"`
	Name        string                  `json:"name"`
	Aliases     []string                `json:"aliases,omitempty"`
	Assumptions model.SizingAssumptions `json:"assumptions"`
}

// PresetResponse is GET /api/v1/presets/:code. Matched is false when the
// global default was returned.
type PresetResponse struct {
	Requested string     `json:"requested"`
	Matched   bool       `json:"matched"`
	Preset    PresetInfo `json:"preset"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
