package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/model"
	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/presets"
	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/sizing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PRESETS_FILE", "")
	presetsFile = ""
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSizeCommand_JSON(t *testing.T) {
	out, err := run(t, "size", "--daily-kwh", "10", "--dod", "0.8", "--efficiency", "0.9",
		"--reserve", "0.2", "--winter=false", "--autonomy", "1", "--json")
	require.NoError(t, err)

	var oc sizing.Outcome
	require.NoError(t, json.Unmarshal([]byte(out), &oc))
	require.NotNil(t, oc.Result)
	assert.InDelta(t, 16.6667, oc.Result.NameplateCapacityKwh, 0.0001)
	assert.Equal(t, sizing.LoadSourceManual, oc.LoadSource)
	assert.False(t, oc.Result.HasBuffer(model.BufferWinter))
}

func TestSizeCommand_WinterToggle(t *testing.T) {
	var oc sizing.Outcome

	out, err := run(t, "size", "--daily-kwh", "10", "--region", "GB", "--no-winter", "--json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &oc))
	assert.False(t, oc.Assumptions.WinterBufferEnabled)
	assert.False(t, oc.Result.HasBuffer(model.BufferWinter))

	oc = sizing.Outcome{}
	out, err = run(t, "size", "--daily-kwh", "10", "--region", "US", "--winter", "--json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &oc))
	assert.True(t, oc.Result.HasBuffer(model.BufferWinter))

	_, err = run(t, "size", "--daily-kwh", "10", "--winter", "--no-winter")
	assert.Error(t, err)
}

func TestSizeCommand_TableAndCSV(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "out", "breakdown.csv")
	out, err := run(t, "size", "--bill", "100", "--rate", "0.25", "--region", "uk", "--csv", csvPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Region:            GB")
	assert.Contains(t, out, "Nameplate capacity:")

	raw, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	assert.Equal(t, "index,step,operator,factor,kwh", lines[0])
	assert.Len(t, lines, 7)
}

func TestSizeCommand_Errors(t *testing.T) {
	_, err := run(t, "size")
	assert.ErrorIs(t, err, model.ErrInsufficientInput)

	_, err = run(t, "size", "--daily-kwh", "10", "--dod", "0")
	assert.ErrorIs(t, err, model.ErrOutOfDomainAssumption)
}

func TestEstimateLoadCommand(t *testing.T) {
	out, err := run(t, "estimate-load", "--bill", "150", "--rate", "0.15", "--days", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "33.33 kWh")

	_, err = run(t, "estimate-load", "--bill", "150")
	assert.ErrorIs(t, err, model.ErrInsufficientInput)
}

func TestPresetsCommands(t *testing.T) {
	out, err := run(t, "presets", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "GB")
	assert.Contains(t, out, "United Kingdom")

	out, err = run(t, "presets", "show", "nowhere")
	require.NoError(t, err)
	var p model.LocationPreset
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, presets.GlobalDefaultCode, p.Code)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	_, err = run(t, "presets", "export", "--out", path)
	require.NoError(t, err)

	c, err := presets.LoadCatalogFile(path)
	require.NoError(t, err)
	require.NoError(t, c.Validate())
	assert.Len(t, c.Presets, len(presets.Default().List()))
}
