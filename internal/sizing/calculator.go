// Package sizing turns a daily load and a set of assumptions into a battery
// capacity recommendation.
package sizing

import (
	"fmt"
	"math"

	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/model"
)

// SizeCapacity applies, in this order:
//
//	winter buffer (if enabled) -> reserve buffer -> autonomy days
//	-> inverter efficiency -> depth of discharge
//
// The order fixes both the number and the AppliedBuffers audit trail.
// A zero load is valid and sizes to zero. Invalid input returns
// model.ErrInsufficientInput or a *model.DomainError and no result. Inputs
// that are finite but overflow float64 also return model.ErrInsufficientInput.
func SizeCapacity(dailyLoadKwh float64, a model.SizingAssumptions) (*model.SizingResult, error) {
	if !finite(dailyLoadKwh) || dailyLoadKwh < 0 {
		return nil, model.ErrInsufficientInput
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	buffers := make([]model.AppliedBuffer, 0, 2)
	target := dailyLoadKwh

	if a.WinterBufferEnabled {
		target *= 1 + a.WinterBufferPct
		buffers = append(buffers, model.AppliedBuffer{Name: model.BufferWinter, Pct: a.WinterBufferPct})
	}

	target *= 1 + a.ReserveBufferPct
	buffers = append(buffers, model.AppliedBuffer{Name: model.BufferReserve, Pct: a.ReserveBufferPct})

	total := target * a.AutonomyDays

	// AC demand -> DC draw -> nameplate.
	usable := total / a.InverterEfficiency
	nameplate := usable / a.DepthOfDischarge

	if !finite(target) || !finite(usable) || !finite(nameplate) {
		return nil, fmt.Errorf("%w: capacity overflows", model.ErrInsufficientInput)
	}

	return &model.SizingResult{
		DailyEnergyTargetKwh: target,
		UsableCapacityKwh:    usable,
		NameplateCapacityKwh: nameplate,
		AppliedBuffers:       buffers,
	}, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
