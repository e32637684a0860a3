package sizing

import (
	"errors"
	"math"
	"testing"

	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioAssumptions() model.SizingAssumptions {
	return model.SizingAssumptions{
		DepthOfDischarge:   0.8,
		InverterEfficiency: 0.9,
		ReserveBufferPct:   0.2,
		WinterBufferPct:    0.3,
		AutonomyDays:       1,
	}
}

func TestSizeCapacity_ReferenceScenario(t *testing.T) {
	res, err := SizeCapacity(10, scenarioAssumptions())
	require.NoError(t, err)

	assert.InDelta(t, 12.0, res.DailyEnergyTargetKwh, 1e-9)
	assert.InDelta(t, 13.33, res.UsableCapacityKwh, 0.005)
	assert.InDelta(t, 16.67, res.NameplateCapacityKwh, 0.005)
	assert.Equal(t, []model.AppliedBuffer{{Name: model.BufferReserve, Pct: 0.2}}, res.AppliedBuffers)
}

func TestSizeCapacity_WinterBeforeReserve(t *testing.T) {
	a := scenarioAssumptions()
	a.WinterBufferEnabled = true
	a.AutonomyDays = 2

	res, err := SizeCapacity(10, a)
	require.NoError(t, err)

	require.Len(t, res.AppliedBuffers, 2)
	assert.Equal(t, model.BufferWinter, res.AppliedBuffers[0].Name)
	assert.Equal(t, 0.3, res.AppliedBuffers[0].Pct)
	assert.Equal(t, model.BufferReserve, res.AppliedBuffers[1].Name)

	target := 10 * 1.3 * 1.2
	assert.InDelta(t, target, res.DailyEnergyTargetKwh, 1e-9)
	assert.InDelta(t, target*2/0.9, res.UsableCapacityKwh, 1e-9)
	assert.InDelta(t, target*2/0.9/0.8, res.NameplateCapacityKwh, 1e-9)
}

func TestSizeCapacity_WinterDisabledExcludesWinterEntry(t *testing.T) {
	for _, load := range []float64{0, 0.5, 10, 250} {
		a := scenarioAssumptions()
		a.WinterBufferEnabled = false
		a.WinterBufferPct = 0.5

		res, err := SizeCapacity(load, a)
		require.NoError(t, err)
		assert.False(t, res.HasBuffer(model.BufferWinter), "load=%v", load)
		assert.True(t, res.HasBuffer(model.BufferReserve))
	}
}

func TestSizeCapacity_ZeroLoadIsAResult(t *testing.T) {
	res, err := SizeCapacity(0, scenarioAssumptions())
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Zero(t, res.NameplateCapacityKwh)
	assert.Zero(t, res.UsableCapacityKwh)
}

func TestSizeCapacity_RejectsBadLoad(t *testing.T) {
	for _, load := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		res, err := SizeCapacity(load, scenarioAssumptions())
		assert.Nil(t, res)
		assert.True(t, errors.Is(err, model.ErrInsufficientInput), "load=%v", load)
	}
}

func TestSizeCapacity_RejectsOverflow(t *testing.T) {
	a := model.SizingAssumptions{
		DepthOfDischarge:   0.01,
		InverterEfficiency: 0.01,
		ReserveBufferPct:   1,
		AutonomyDays:       1e10,
	}
	require.NoError(t, a.Validate())

	res, err := SizeCapacity(1e308, a)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, model.ErrInsufficientInput)

	a = scenarioAssumptions()
	a.AutonomyDays = 1e6
	a.DepthOfDischarge = 0.5
	res, err = SizeCapacity(1e306, a)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, model.ErrInsufficientInput)
}

func TestSizeCapacity_RejectsOutOfDomainAssumptions(t *testing.T) {
	a := scenarioAssumptions()
	a.DepthOfDischarge = 1.2

	res, err := SizeCapacity(10, a)
	assert.Nil(t, res)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrOutOfDomainAssumption))

	var de *model.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "depth_of_discharge", de.Field)
}

func TestSizeCapacity_Idempotent(t *testing.T) {
	a := scenarioAssumptions()
	a.WinterBufferEnabled = true

	first, err := SizeCapacity(17.3, a)
	require.NoError(t, err)
	second, err := SizeCapacity(17.3, a)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, math.Float64bits(first.NameplateCapacityKwh), math.Float64bits(second.NameplateCapacityKwh))
}

func TestSizeCapacity_Monotonicity(t *testing.T) {
	base := scenarioAssumptions()
	base.WinterBufferEnabled = true

	nameplate := func(a model.SizingAssumptions) float64 {
		t.Helper()
		res, err := SizeCapacity(12.5, a)
		require.NoError(t, err)
		return res.NameplateCapacityKwh
	}
	ref := nameplate(base)

	increasing := map[string]func(a *model.SizingAssumptions){
		"autonomy up":   func(a *model.SizingAssumptions) { a.AutonomyDays = 2.5 },
		"reserve up":    func(a *model.SizingAssumptions) { a.ReserveBufferPct = 0.4 },
		"winter up":     func(a *model.SizingAssumptions) { a.WinterBufferPct = 0.6 },
		"DoD down":      func(a *model.SizingAssumptions) { a.DepthOfDischarge = 0.5 },
		"inverter down": func(a *model.SizingAssumptions) { a.InverterEfficiency = 0.7 },
	}
	for name, mutate := range increasing {
		t.Run(name, func(t *testing.T) {
			a := base
			mutate(&a)
			assert.GreaterOrEqual(t, nameplate(a), ref)
		})
	}

	// sweep autonomy in small steps
	prev := 0.0
	for d := 0.25; d <= 7; d += 0.25 {
		a := base
		a.AutonomyDays = d
		v := nameplate(a)
		assert.GreaterOrEqual(t, v, prev, "autonomy=%v", d)
		prev = v
	}
}

func TestSizeCapacity_NoBuffersAtPerfectEquipment(t *testing.T) {
	a := model.SizingAssumptions{DepthOfDischarge: 1, InverterEfficiency: 1, AutonomyDays: 1}
	res, err := SizeCapacity(8, a)
	require.NoError(t, err)
	assert.Equal(t, 8.0, res.NameplateCapacityKwh)
	assert.Equal(t, 8.0, res.UsableCapacityKwh)
	assert.Equal(t, []model.AppliedBuffer{{Name: model.BufferReserve, Pct: 0}}, res.AppliedBuffers)
}
