package model

import (
	"math"
)

// SizingAssumptions is the bundle of engineering assumptions that turns a
// daily energy figure into a battery capacity.
// Units:
// - DepthOfDischarge, InverterEfficiency: fraction (0, 1]
// - ReserveBufferPct, WinterBufferPct: fraction >= 0 (0.2 = 20%)
// - AutonomyDays: days > 0, may be fractional
type SizingAssumptions struct {
	DepthOfDischarge    float64 `json:"depth_of_discharge" yaml:"depth_of_discharge"`
	InverterEfficiency  float64 `json:"inverter_efficiency" yaml:"inverter_efficiency"`
	ReserveBufferPct    float64 `json:"reserve_buffer_pct" yaml:"reserve_buffer_pct"`
	WinterBufferEnabled bool    `json:"winter_buffer_enabled" yaml:"winter_buffer_enabled"`
	WinterBufferPct     float64 `json:"winter_buffer_pct" yaml:"winter_buffer_pct"`
	AutonomyDays        float64 `json:"autonomy_days" yaml:"autonomy_days"`
}

// Validate rejects any field outside its declared domain. Out-of-range values
// are never clamped.
func (a SizingAssumptions) Validate() error {
	if !isFinite(a.DepthOfDischarge) || a.DepthOfDischarge <= 0 || a.DepthOfDischarge > 1 {
		return &DomainError{Field: "depth_of_discharge", Value: a.DepthOfDischarge, Reason: "must be in (0, 1]"}
	}
	if !isFinite(a.InverterEfficiency) || a.InverterEfficiency <= 0 || a.InverterEfficiency > 1 {
		return &DomainError{Field: "inverter_efficiency", Value: a.InverterEfficiency, Reason: "must be in (0, 1]"}
	}
	if !isFinite(a.ReserveBufferPct) || a.ReserveBufferPct < 0 {
		return &DomainError{Field: "reserve_buffer_pct", Value: a.ReserveBufferPct, Reason: "must be >= 0"}
	}
	if !isFinite(a.WinterBufferPct) || a.WinterBufferPct < 0 {
		return &DomainError{Field: "winter_buffer_pct", Value: a.WinterBufferPct, Reason: "must be >= 0"}
	}
	if !isFinite(a.AutonomyDays) || a.AutonomyDays <= 0 {
		return &DomainError{Field: "autonomy_days", Value: a.AutonomyDays, Reason: "must be > 0"}
	}
	return nil
}

// AssumptionOverrides carries user-supplied values for individual fields.
// A nil field keeps whatever the preset supplied.
type AssumptionOverrides struct {
	DepthOfDischarge    *float64 `json:"depth_of_discharge,omitempty" yaml:"depth_of_discharge,omitempty"`
	InverterEfficiency  *float64 `json:"inverter_efficiency,omitempty" yaml:"inverter_efficiency,omitempty"`
	ReserveBufferPct    *float64 `json:"reserve_buffer_pct,omitempty" yaml:"reserve_buffer_pct,omitempty"`
	WinterBufferEnabled *bool    `json:"winter_buffer_enabled,omitempty" yaml:"winter_buffer_enabled,omitempty"`
	WinterBufferPct     *float64 `json:"winter_buffer_pct,omitempty" yaml:"winter_buffer_pct,omitempty"`
	AutonomyDays        *float64 `json:"autonomy_days,omitempty" yaml:"autonomy_days,omitempty"`
}

// Apply overlays the set fields onto base and returns the composed bundle.
// base is passed by value and is never modified.
func (o AssumptionOverrides) Apply(base SizingAssumptions) SizingAssumptions {
	out := base
	if o.DepthOfDischarge != nil {
		out.DepthOfDischarge = *o.DepthOfDischarge
	}
	if o.InverterEfficiency != nil {
		out.InverterEfficiency = *o.InverterEfficiency
	}
	if o.ReserveBufferPct != nil {
		out.ReserveBufferPct = *o.ReserveBufferPct
	}
	if o.WinterBufferEnabled != nil {
		out.WinterBufferEnabled = *o.WinterBufferEnabled
	}
	if o.WinterBufferPct != nil {
		out.WinterBufferPct = *o.WinterBufferPct
	}
	if o.AutonomyDays != nil {
		out.AutonomyDays = *o.AutonomyDays
	}
	return out
}

// Merge layers next on top of o: fields set in next win.
func (o AssumptionOverrides) Merge(next AssumptionOverrides) AssumptionOverrides {
	out := o
	if next.DepthOfDischarge != nil {
		out.DepthOfDischarge = next.DepthOfDischarge
	}
	if next.InverterEfficiency != nil {
		out.InverterEfficiency = next.InverterEfficiency
	}
	if next.ReserveBufferPct != nil {
		out.ReserveBufferPct = next.ReserveBufferPct
	}
	if next.WinterBufferEnabled != nil {
		out.WinterBufferEnabled = next.WinterBufferEnabled
	}
	if next.WinterBufferPct != nil {
		out.WinterBufferPct = next.WinterBufferPct
	}
	if next.AutonomyDays != nil {
		out.AutonomyDays = next.AutonomyDays
	}
	return out
}

// IsEmpty reports whether no field is overridden.
func (o AssumptionOverrides) IsEmpty() bool {
	return o == AssumptionOverrides{}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// LocationPreset is a named default assumption bundle for a region.
// Presets are read-only sources of values; callers compose overrides on top
// with AssumptionOverrides.Apply.
type LocationPreset struct {
	Code        string            `json:"code" yaml:"code"`
	Name        string            `json:"name" yaml:"name"`
	Aliases     []string          `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Assumptions SizingAssumptions `json:"assumptions" yaml:"assumptions"`
}
