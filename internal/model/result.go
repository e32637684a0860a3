package model

// BufferName identifies a proportional margin in the sizing audit trail.
// Keep these values stable; they are shown in the UI and written to CSV.
type BufferName string

const (
	BufferWinter  BufferName = "winter"
	BufferReserve BufferName = "reserve"
)

// AppliedBuffer is one multiplicative margin, in the order it was applied.
type AppliedBuffer struct {
	Name BufferName `json:"name"`
	Pct  float64    `json:"pct"`
}

// SizingResult is the output of one sizing calculation.
// Units: kWh throughout.
type SizingResult struct {
	// DailyEnergyTargetKwh is the daily load after seasonal and reserve buffers.
	DailyEnergyTargetKwh float64 `json:"daily_energy_target_kwh"`
	// UsableCapacityKwh is the DC energy to draw from storage over the
	// autonomy window, after inverter losses.
	UsableCapacityKwh float64 `json:"usable_capacity_kwh"`
	// NameplateCapacityKwh is UsableCapacityKwh / DepthOfDischarge.
	NameplateCapacityKwh float64         `json:"nameplate_capacity_kwh"`
	AppliedBuffers       []AppliedBuffer `json:"applied_buffers"`
}

// HasBuffer reports whether name appears in the audit trail.
func (r SizingResult) HasBuffer(name BufferName) bool {
	for _, b := range r.AppliedBuffers {
		if b.Name == name {
			return true
		}
	}
	return false
}
