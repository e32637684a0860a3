package sizing

import (
	"errors"
	"fmt"

	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/model"
)

// LoadSource records where the daily load came from.
type LoadSource string

const (
	LoadSourceManual LoadSource = "manual"
	LoadSourceBill   LoadSource = "bill"
)

// PresetSource supplies regional defaults. *presets.Resolver implements it.
type PresetSource interface {
	Resolve(code string) model.SizingAssumptions
	Lookup(code string) (model.LocationPreset, bool)
}

// Request is one calculator submission. Either DailyKwh or Bill must be set.
// When both are, a non-zero DailyKwh wins; a zero DailyKwh yields to a bill
// that estimates a load, and otherwise stands as a zero load.
type Request struct {
	DailyKwh  *float64
	DailyUnit string // Wh, kWh (default) or MWh
	Bill      *model.BillInput
	Region    string
	Overrides model.AssumptionOverrides
}

// Outcome is a SizingResult plus the inputs that produced it.
type Outcome struct {
	Result        *model.SizingResult     `json:"result"`
	Assumptions   model.SizingAssumptions `json:"assumptions"`
	DailyLoadKwh  float64                 `json:"daily_load_kwh"`
	LoadSource    LoadSource              `json:"load_source"`
	Region        string                  `json:"region"`
	PresetMatched bool                    `json:"preset_matched"`
}

type Engine struct {
	presets PresetSource
}

func New(presets PresetSource) *Engine {
	return &Engine{presets: presets}
}

// Calculate resolves the load and assumptions for req and sizes the battery.
func (e *Engine) Calculate(req Request) (*Outcome, error) {
	if e.presets == nil {
		return nil, errors.New("preset source is nil")
	}

	load, source, err := ResolveLoad(req)
	if err != nil {
		return nil, err
	}

	preset, matched := e.presets.Lookup(req.Region)
	assumptions := req.Overrides.Apply(preset.Assumptions)

	res, err := SizeCapacity(load, assumptions)
	if err != nil {
		return nil, err
	}

	return &Outcome{
		Result:        res,
		Assumptions:   assumptions,
		DailyLoadKwh:  load,
		LoadSource:    source,
		Region:        preset.Code,
		PresetMatched: matched,
	}, nil
}

// ResolveLoad picks the manual load when present, otherwise the bill estimate.
// A manual zero is treated as a blank field when the bill is usable.
func ResolveLoad(req Request) (float64, LoadSource, error) {
	if req.DailyKwh != nil && *req.DailyKwh == 0 && req.Bill != nil {
		if kwh, ok := req.Bill.DailyKwh(); ok {
			return kwh, LoadSourceBill, nil
		}
	}
	if req.DailyKwh != nil {
		kwh, err := model.ToKwh(*req.DailyKwh, req.DailyUnit)
		if err != nil {
			return 0, "", fmt.Errorf("%w: %v", model.ErrInsufficientInput, err)
		}
		return kwh, LoadSourceManual, nil
	}
	if req.Bill != nil {
		if kwh, ok := req.Bill.DailyKwh(); ok {
			return kwh, LoadSourceBill, nil
		}
	}
	return 0, "", model.ErrInsufficientInput
}
