package models

import "github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/model"

// SizeRequest is the body of POST /api/v1/size.
// Either daily_kwh or bill must be present. A non-zero daily_kwh wins when
// both are; daily_kwh 0 yields to a usable bill.
type SizeRequest struct {
	DailyKwh  *float64                  `json:"daily_kwh,omitempty"`
	DailyUnit string                    `json:"daily_unit,omitempty"` // "Wh", "kWh" (default), "MWh"
	Bill      *BillRequest              `json:"bill,omitempty"`
	Region    string                    `json:"region,omitempty"` // ISO country code, e.g. "GB"
	Overrides model.AssumptionOverrides `json:"overrides,omitempty"`
}

// BillRequest describes one utility bill. Amount and rate share a currency.
type BillRequest struct {
	Amount            float64 `json:"amount"`
	RatePerKwh        float64 `json:"rate_per_kwh"`
	BillingPeriodDays int     `json:"billing_period_days"`
}

func (b *BillRequest) ToModel() *model.BillInput {
	if b == nil {
		return nil
	}
	return &model.BillInput{
		BillAmount:        b.Amount,
		RatePerKwh:        b.RatePerKwh,
		BillingPeriodDays: b.BillingPeriodDays,
	}
}

// CompareRequest is the body of POST /api/v1/size/compare.
type CompareRequest struct {
	Base       SizeRequest        `json:"base"`
	Variations []VariationRequest `json:"variations" binding:"required,min=1,dive"`
}

// VariationRequest layers overrides (and optionally a region) on the base.
type VariationRequest struct {
	Name      string                    `json:"name" binding:"required"`
	Region    string                    `json:"region,omitempty"`
	Overrides model.AssumptionOverrides `json:"overrides,omitempty"`
}

// EstimateLoadRequest is the body of POST /api/v1/estimate-load.
type EstimateLoadRequest struct {
	BillRequest
}

// EventRequest is the body of POST /api/v1/events. Either name or the legacy
// category/action/label/value shape is set.
type EventRequest struct {
	Name       string         `json:"name,omitempty"`
	Path       string         `json:"path,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`

	Category string  `json:"category,omitempty"`
	Action   string  `json:"action,omitempty"`
	Label    string  `json:"label,omitempty"`
	Value    float64 `json:"value,omitempty"`
}
