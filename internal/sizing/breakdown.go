package sizing

import "github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/model"

// Step names in a breakdown. Keep these values stable; they are written to CSV.
const (
	StepDailyLoad = "daily_load"
	StepWinter    = "winter_buffer"
	StepReserve   = "reserve_buffer"
	StepAutonomy  = "autonomy"
	StepInverter  = "inverter_efficiency"
	StepDepth     = "depth_of_discharge"
)

// BreakdownRow is one step of the sizing chain: the running kWh after the
// step and the factor it applied.
type BreakdownRow struct {
	Index    int
	Step     string
	Operator string // "=", "x" or "/"
	Factor   float64
	Kwh      float64
}

// Breakdown replays an outcome as ordered steps so the UI and CSV export can
// show why the final number is what it is.
func Breakdown(oc *Outcome) []BreakdownRow {
	if oc == nil || oc.Result == nil {
		return nil
	}
	a := oc.Assumptions
	rows := make([]BreakdownRow, 0, 6)
	add := func(step, op string, factor, kwh float64) {
		rows = append(rows, BreakdownRow{Index: len(rows), Step: step, Operator: op, Factor: factor, Kwh: kwh})
	}

	kwh := oc.DailyLoadKwh
	add(StepDailyLoad, "=", 1, kwh)
	for _, b := range oc.Result.AppliedBuffers {
		kwh *= 1 + b.Pct
		switch b.Name {
		case model.BufferWinter:
			add(StepWinter, "x", 1+b.Pct, kwh)
		case model.BufferReserve:
			add(StepReserve, "x", 1+b.Pct, kwh)
		}
	}
	kwh *= a.AutonomyDays
	add(StepAutonomy, "x", a.AutonomyDays, kwh)
	add(StepInverter, "/", a.InverterEfficiency, oc.Result.UsableCapacityKwh)
	add(StepDepth, "/", a.DepthOfDischarge, oc.Result.NameplateCapacityKwh)
	return rows
}
